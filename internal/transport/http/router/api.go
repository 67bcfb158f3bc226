package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-result-starter/internal/core/auth"
	"go-gin-result-starter/internal/core/config"
	"go-gin-result-starter/internal/domain"
	"go-gin-result-starter/internal/service"
	httpez "go-gin-result-starter/internal/transport/http/ez"
	mdw "go-gin-result-starter/internal/transport/http/middleware"
	"go-gin-result-starter/internal/transport/http/response"
)

func NewAPIEngine(l *zap.Logger, w *response.Writer, h config.HTTP, users *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := newEngine(l, w, h)

	// 前缀
	api := r.Group("/api/v1")
	mountOutcomes(httpez.New(api, w), w.Factory())

	// 鉴权分组（/me 必须挂这里，才能拿到 userId）
	authUser := api.Group("")
	authUser.Use(mdw.AuthJWT(w, jwter, ""))

	mountAuthActions(httpez.New(api, w), httpez.New(authUser, w), users)
	return r
}

// ---------- /auth/login + /me ----------

func mountAuthActions(public, authed httpez.EZ, users *service.UserService) {
	// 查不到就自动注册 + 发 JWT
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"` // 首次注册可用
	}
	httpez.RegisterAction(public, httpez.Action[loginIn, service.LoginResult]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (service.LoginResult, error) {
			return users.Login(c.Request.Context(), in.Email, in.Password, in.Name)
		},
	})

	httpez.RegisterAction(authed, httpez.Action[struct{}, domain.Profile]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Profile, error) {
			return users.Profile(c.Request.Context(), c.GetString(mdw.KeyUserID))
		},
	})
}
