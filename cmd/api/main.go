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

	// 结果码前缀不合法直接退出
	factory, err := result.NewFactory(cfg.Result.SystemID, cfg.Result.ServiceID)
	if err != nil {
		log.Fatal("result factory", zap.Error(err))
	}
	log.Info("result catalog loaded",
		zap.String("prefix", factory.Prefix()),
		zap.Int("outcomes", result.Builtin().Len()),
	)

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 资料缓存（未配置 redis 时直接回源）
	var profiles domain.ProfileCache
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.Ping(ctx); err != nil {
			log.Warn("redis unavailable, cache falls back to db", zap.Error(err))
		}
		cancel()
		profiles = cache.NewProfiles(c, time.Duration(cfg.Redis.ProfileTTL)*time.Second)
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}
	userSvc := service.NewUserService(repo.NewUserRepo(db), profiles, jwter, log)

	// 路由（用户端）
	r := router.NewAPIEngine(log, response.NewWriter(factory), cfg.App.HTTP, userSvc, jwter)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r, log,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("user api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("user api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("user api shutdown", zap.Error(err))
	}
	log.Info("user api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(cfg.DB, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
