package response

import "github.com/gin-gonic/gin"

// Success writes the uniform result wrapper around an endpoint payload.
func Success(c *gin.Context, statusCode int, value any) {
	c.JSON(statusCode, gin.H{
		"value": value,
	})
}

// SuccessWithMessage additionally carries a stable human-readable message.
func SuccessWithMessage(c *gin.Context, statusCode int, value any, message string) {
	c.JSON(statusCode, gin.H{
		"value":   value,
		"message": message,
	})
}

// Failed writes the failure shape. Only the mapped status and message leave
// the process; raw errors stay in the server log.
func Failed(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  statusCode,
		"message": message,
	})
}

// FailedWithDetails carries field-level validation details alongside the message.
func FailedWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"status":  statusCode,
		"message": message,
		"details": details,
	})
}

// AbortFailed is Failed for middleware: it short-circuits the chain.
func AbortFailed(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"status":  statusCode,
		"message": message,
	})
}
