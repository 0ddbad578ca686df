package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/user-registry/pkg/helpers"
	"github.com/oksasatya/user-registry/pkg/response"
)

const CtxSubjectKey = "subject"

// BearerAuth requires a valid "Authorization: Bearer <token>" header and
// stores the token subject in the Gin context.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		c.Set(CtxSubjectKey, claims.Subject)
		c.Next()
	}
}
