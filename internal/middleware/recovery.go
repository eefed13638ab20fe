package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware provides panic recovery with detailed logging
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				log.Printf("PANIC RECOVERED: %v\nRequest: %s %s\nStack trace:\n%s",
					r, c.Request.Method, c.Request.URL.Path, stack)

				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"message": "The server encountered an unexpected condition that prevented it from fulfilling the request.",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
