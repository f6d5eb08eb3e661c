package middleware

import (
	"net/http"
	"strings"

	"forumapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is where JWTAuth stores the authenticated user id.
const UserIDKey = "user_id"

const msgMissingAuthentication = "Missing authentication"

// AccessTokenDecoder is satisfied by *utils.TokenManager.
type AccessTokenDecoder interface {
	DecodeAccessToken(token string) (string, error)
}

var _ AccessTokenDecoder = (*utils.TokenManager)(nil)

func extractBearer(c *gin.Context) (string, bool) {
	authHeader := strings.Trim(c.GetHeader("Authorization"), "\"' ")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}

	token := strings.Trim(parts[1], "\"' ")
	return token, token != ""
}

// JWTAuth rejects requests without a valid access token
func JWTAuth(tokens AccessTokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.DecodeAccessToken(token)
		if err != nil {
			utils.Logger.WithField("request_id", c.GetString(RequestIDKey)).
				WithField("error", err.Error()).
				Debug("access token rejected")
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the id set by JWTAuth, or "" on public routes.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": msgMissingAuthentication,
	})
}
