package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-deals-server/internal/auth"
	market "smart-deals-server/internal/marketService"
	"smart-deals-server/internal/repository"
	"smart-deals-server/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// SetupTestRouter initializes the router with the in-memory repository and
// the self-issued token strategy for integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := market.NewMarketService(repo)
	tokens := auth.NewTokenService(testSecret)
	router := server.SetupRouter(service, tokens, tokens)
	return router, repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TokenFor obtains a self-issued token for email through the API itself.
func TokenFor(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/get-token", map[string]any{"email": email}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

// DecodeList parses a JSON array response body.
func DecodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

// DecodeObject parses a JSON object response body.
func DecodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var obj map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obj))
	return obj
}
