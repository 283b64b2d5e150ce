package middleware

import (
	"log"
	"net/http"

	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into an enveloped 500 with no internal
// detail leaked to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				utils.AbortJSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
			}
		}()
		c.Next()
	}
}
