package middleware

import (
	"net/http"
	"strings"

	"microblog/internal/pkg/response"
	"microblog/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// ContextAccountID is the gin context key carrying the account id
// resolved from the access token.
const ContextAccountID = "accountId"

// TokenFromHeader extracts the credential from the Authorization
// header. The scheme prefix is ignored: "Bearer <t>", "JWT <t>" and a
// bare token are all accepted.
func TokenFromHeader(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}
	parts := strings.Fields(header)
	return parts[len(parts)-1], true
}

// RequireAccessToken gates protected routes. A missing header is 401;
// a token that fails verification is 403.
func RequireAccessToken(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := TokenFromHeader(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := codec.Verify(raw)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Next()
	}
}
