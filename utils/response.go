package utils

import "github.com/gin-gonic/gin"

// JSONError answers the uniform {message} error body.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONErrorDetail includes the raw fault detail outside release mode.
func JSONErrorDetail(c *gin.Context, code int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		body["details"] = err.Error()
	}
	c.JSON(code, body)
}
