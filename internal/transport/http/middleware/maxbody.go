package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// MaxBodyBytes 限制请求体大小。声明长度超限直接拒绝；
// 未声明长度的在读取时由 http.MaxBytesReader 截断，绑定层再映射成 BODY_TOO_LARGE。n<=0 不限
func MaxBodyBytes(w *response.Writer, n int64) gin.HandlerFunc {
	if n <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			w.Abort(c, result.OutcomeBodyTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
