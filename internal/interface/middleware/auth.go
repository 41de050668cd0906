package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/helpers"
	"github.com/barangaylink/api/pkg/response"
)

// CtxCallerIDKey is the gin context key holding the authenticated caller id.
const CtxCallerIDKey = "callerID"

// Auth reads the bearer token from the Authorization header, validates it,
// and injects the caller id into the context. No valid token means 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortWith(c, apperrors.KindAuthentication, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortWith(c, apperrors.KindAuthentication, "invalid access token", nil)
			return
		}
		c.Set(CtxCallerIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
