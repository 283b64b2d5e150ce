package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the single response shape every JSON body uses.
// The statusCode field mirrors the HTTP status.
type Envelope struct {
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
}

func JSONResponse(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		Data:       data,
		Message:    message,
		StatusCode: status,
	})
}

func AbortJSONResponse(c *gin.Context, status int, data interface{}, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Data:       data,
		Message:    message,
		StatusCode: status,
	})
}

// ValidationErrorResponse reports field-level violations under the
// canonical envelope with a 422 status.
func ValidationErrorResponse(c *gin.Context, errs map[string][]string) {
	JSONResponse(c, http.StatusUnprocessableEntity, gin.H{"errors": errs}, "validation failed")
}
