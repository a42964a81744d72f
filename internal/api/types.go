package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Himanshur25/recipe-master/internal/apperr"
)

// Fail writes the uniform failure envelope. Internal errors are logged
// server-side and reach the client only as the generic message.
func Fail(c *gin.Context, err error) {
	failure := apperr.From(err)
	if failure.Code == http.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(failure.Code, gin.H{
		"statusCode": failure.Code,
		"data":       gin.H{},
		"message":    failure.Message,
	})
}
