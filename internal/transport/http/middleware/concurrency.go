package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// ConcurrencyLimit 限制同时在处理的请求数（保护 DB 下游）；等到请求超时仍拿不到名额则返回系统繁忙。max<=0 不限
func ConcurrencyLimit(w *response.Writer, max int64) gin.HandlerFunc {
	if max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			w.Abort(c, result.OutcomeSystemBusy)
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
