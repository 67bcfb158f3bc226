package ez

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"go-gin-result-starter/internal/transport/http/middleware"
	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// EZ 路由分组 + 统一响应写出器
type EZ struct {
	g *gin.RouterGroup
	w *response.Writer
}

func New(g *gin.RouterGroup, w *response.Writer) EZ { return EZ{g: g, w: w} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 请求体 JSON
	BindQuery Binder = "query" // URL ?a=b
	BindURI   Binder = "uri"   // 路径参数 /:id
	BindNone  Binder = "none"  // 不绑定
)

// Action 非 CRUD 接口一行注册：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string   // GET / POST / PUT / DELETE
	Path    string   // 例："/auth/login"、"/users/:id/ban"
	Binder  Binder   // 绑定方式
	Auth    bool     // 要求已登录（AuthJWT 写入 userId）
	Roles   []string // 限定角色（可选）
	Handler func(c *gin.Context, in *I) (O, error)
}

// RegisterAction 绑定 → 鉴权 → 执行 → 统一响应；Handler 返回的 error 用 result.OutcomeOf 映射
func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		if a.Auth {
			if c.GetString(middleware.KeyUserID) == "" {
				e.w.Outcome(c, result.OutcomeUnauthorized)
				return
			}
			if len(a.Roles) > 0 && !slice.Contains(a.Roles, c.GetString(middleware.KeyRole)) {
				e.w.Outcome(c, result.OutcomePermissionDenied)
				return
			}
		}

		var in I
		if err := bind(c, a.Binder, &in); err != nil {
			e.w.Fail(c, err)
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.w.Fail(c, err)
			return
		}
		response.JSON(c, result.SuccessWith(e.w.Factory(), out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func bind(c *gin.Context, b Binder, in any) error {
	var err error
	switch b {
	case BindJSON:
		err = c.ShouldBindJSON(in)
	case BindQuery:
		err = c.ShouldBindQuery(in)
	case BindURI:
		err = c.ShouldBindUri(in)
	default:
		return nil
	}
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return result.Wrap(result.OutcomeBodyTooLarge, err)
	}
	return result.Wrap(result.OutcomeInvalidParam, err)
}
