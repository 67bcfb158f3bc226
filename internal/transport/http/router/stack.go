package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-result-starter/internal/core/config"
	"go-gin-result-starter/internal/core/server"
	mdw "go-gin-result-starter/internal/transport/http/middleware"
	"go-gin-result-starter/internal/transport/http/response"
)

// newEngine 两端共用的中间件栈 + /health /metrics
// 日志、指标放在最外层，限流 / 超时拦下的请求也能看到结果码
func newEngine(l *zap.Logger, w *response.Writer, h config.HTTP) *gin.Engine {
	r := server.NewRouter(l, w)

	handlerTimeout := time.Duration(h.HandlerTimeoutSec) * time.Second
	if handlerTimeout <= 0 {
		handlerTimeout = 10 * time.Second
	}
	r.Use(
		mdw.RequestID(),
		mdw.AccessLog(l),
		mdw.Metrics(),
		mdw.Recovery(w, l),
		mdw.RateLimit(w, rate.Limit(h.RPS), h.Burst),
		mdw.RateLimitPerIP(w, rate.Limit(h.PerIPRPS), h.PerIPBurst),
		mdw.Timeout(w, handlerTimeout),
		mdw.ConcurrencyLimit(w, h.MaxInFlight),
		mdw.MaxBodyBytes(w, h.MaxBodyMB<<20),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { w.OK(c, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
