package api

import (
	"github.com/gin-gonic/gin"
)

func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func JSONErrorWithDetails(c *gin.Context, status int, message string, details any) {
	if details == nil {
		JSONError(c, status, message)
		return
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": details,
	})
}
