package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// Recovery panic 记日志（带栈）并返回 SYSTEM_ERROR
func Recovery(w *response.Writer, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("rid", c.GetString(KeyRequestID)),
					zap.ByteString("stack", debug.Stack()),
				)
				if !c.Writer.Written() {
					w.Abort(c, result.OutcomeSystemError)
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
