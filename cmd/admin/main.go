package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"go-gin-result-starter/internal/core/auth"
	"go-gin-result-starter/internal/core/cache"
	"go-gin-result-starter/internal/core/config"
	"go-gin-result-starter/internal/core/database"
	"go-gin-result-starter/internal/core/logger"
	"go-gin-result-starter/internal/core/server"
	"go-gin-result-starter/internal/domain"
	"go-gin-result-starter/internal/repo"
	"go-gin-result-starter/internal/service"
	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/internal/transport/http/router"
	"go-gin-result-starter/pkg/result"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log)
	defer cleanup()
	// gin 自身的输出（debug 路由表、内部错误）也走 zap
	gin.DefaultWriter = logger.ToWriter(log, zapcore.InfoLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	factory, err := result.NewFactory(cfg.Result.SystemID, cfg.Result.ServiceID)
	if err != nil {
		log.Fatal("result factory", zap.Error(err))
	}

	// DB 连接（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 封禁时需要清掉用户端的资料缓存
	var profiles domain.ProfileCache
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		profiles = cache.NewProfiles(c, time.Duration(cfg.Redis.ProfileTTL)*time.Second)
	}

	// 依赖
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}
	userSvc := service.NewUserService(repo.NewUserRepo(db), profiles, jwter, log)

	// 路由（后台端），限流等沿用 app.http 的配置
	r := router.NewAdminEngine(log, response.NewWriter(factory), cfg.App.HTTP, userSvc, jwter)

	// HTTP Server
	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, log, 5*time.Second, 10*time.Second, 60*time.Second)

	// 启动前打印可点击地址
	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()

	// 关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("admin api shutdown", zap.Error(err))
	}
	log.Info("admin api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(cfg.DB, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
