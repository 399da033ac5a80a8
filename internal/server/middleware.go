package server

import (
	"net/http"
	"time"

	"smart-deals-server/internal/auth"
	"smart-deals-server/services/market/helpers"
	"smart-deals-server/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAuth verifies the bearer credential and stores the caller email
// in the request context. A missing header, missing token segment, and
// failed verification all yield the same 401 so the cause stays
// undisclosed.
func RequireAuth(verifier auth.CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.JSONMessage(c, http.StatusUnauthorized, helpers.MsgUnauthorized)
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			utils.JSONMessage(c, http.StatusUnauthorized, helpers.MsgUnauthorized)
			utils.Warn("RequireAuth: credential rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(auth.IdentityContextKey, identity.Email)
		c.Next()
	}
}
