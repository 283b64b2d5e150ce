package middleware

import (
	"net/http"
	"strings"

	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextToken  = "token"
)

// AuthRequired gates a route group behind a valid, unrevoked bearer
// token. On success the authenticated user id and the raw token are
// stored on the context for the handlers.
func AuthRequired(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			utils.AbortJSONResponse(c, http.StatusUnauthorized, nil, "unauthenticated")
			return
		}

		userID, err := tokenService.ValidateToken(token)
		if err != nil {
			utils.AbortJSONResponse(c, http.StatusUnauthorized, nil, "unauthenticated")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, token)
		c.Next()
	}
}
