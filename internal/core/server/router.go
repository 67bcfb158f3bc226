package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-result-starter/internal/core/logger"
	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// NewRouter 基础引擎：CORS、兜底 panic 恢复，未匹配路由 / 方法也走统一响应
func NewRouter(l *zap.Logger, w *response.Writer) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{response.HeaderResultCode, "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.NoRoute(func(c *gin.Context) { w.Outcome(c, result.OutcomeRouteNotFound) })
	r.NoMethod(func(c *gin.Context) { w.Outcome(c, result.OutcomeMethodNotAllowed) })
	return r
}

func StartHTTP(srv *http.Server, l *zap.Logger) error {
	l.Info("http starting", zap.String("addr", srv.Addr))
	return srv.ListenAndServe()
}

// BuildServer net/http 自身的错误日志也转进 zap
func BuildServer(addr string, handler http.Handler, l *zap.Logger, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20, // 1MB
		ErrorLog:       logger.ToStdLogger(l, zap.ErrorLevel),
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
