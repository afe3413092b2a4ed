package response

import "github.com/gin-gonic/gin"

func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func ValidationError(c *gin.Context, statusCode int, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"message": "Validation failed",
		"errors":  fields,
	})
}
