package response

import "github.com/gin-gonic/gin"

// Success writes {"success": true, ...payload}.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{}
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	c.JSON(statusCode, body)
}

// Failure writes {"success": false, ...payload} for soft failures that still
// carry data.
func Failure(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{}
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = false
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
