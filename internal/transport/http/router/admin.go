package router

import (
	"net/http"
	"strings"

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

func NewAdminEngine(l *zap.Logger, w *response.Writer, h config.HTTP, users *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := newEngine(l, w, h)

	// 管理端 v1（统一要求 admin 角色）
	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(w, jwter, auth.RoleAdmin))

	mountAdminActions(httpez.New(admin, w), users)
	return r
}

func mountAdminActions(ez httpez.EZ, users *service.UserService) {
	// --- GET /admin/v1/users  用户列表 ---
	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // 按 email/name 模糊搜
		WithDeleted bool   `form:"with_deleted"` // 是否包含软删
	}
	httpez.RegisterAction(ez, httpez.Action[listQ, service.Page]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (service.Page, error) {
			return users.List(c.Request.Context(), domain.ListFilter{
				Offset:      in.Offset,
				Limit:       in.Limit,
				Keyword:     strings.TrimSpace(in.Q),
				WithDeleted: in.WithDeleted,
			})
		},
	})

	// --- POST /admin/v1/users/:id/ban  封禁（软删） ---
	type banIn struct {
		ID string `uri:"id" binding:"required"`
	}
	type banOut struct {
		ID string `json:"id"`
	}
	httpez.RegisterAction(ez, httpez.Action[banIn, banOut]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindURI,
		Handler: func(c *gin.Context, in *banIn) (banOut, error) {
			if err := users.Ban(c.Request.Context(), in.ID); err != nil {
				return banOut{}, err
			}
			return banOut{ID: in.ID}, nil
		},
	})
}
