package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"go-gin-result-starter/internal/core/auth"
	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
	KeyClaims = "claims"
)

// AuthJWT 校验 Bearer token；requireRole 非空时还要求角色匹配
func AuthJWT(w *response.Writer, j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			w.Abort(c, result.OutcomeTokenMissing)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			_ = c.Error(err)
			if errors.Is(err, auth.ErrTokenExpired) {
				w.Abort(c, result.OutcomeTokenExpired)
			} else {
				w.Abort(c, result.OutcomeTokenInvalid)
			}
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			w.Abort(c, result.OutcomePermissionDenied)
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
