package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONMessage sends a bare {"message": ...} body, the shape clients expect
// for every non-document response.
func JSONMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"message": message,
	})
}
