package ez

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"go-gin-result-starter/internal/transport/http/middleware"
	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

func init() { gin.SetMode(gin.TestMode) }

type echoIn struct {
	Name string `json:"name" binding:"required"`
}

type echoOut struct {
	Hello string `json:"hello"`
}

func newEngine(role string, a Action[echoIn, echoOut]) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(middleware.KeyUserID, "u1")
			c.Set(middleware.KeyRole, role)
		}
	})
	RegisterAction(New(r.Group(""), response.NewWriter(result.MustFactory("0103", "00"))), a)
	return r
}

func TestRegisterAction(t *testing.T) {
	echo := func(c *gin.Context, in *echoIn) (echoOut, error) {
		if in.Name == "ghost" {
			return echoOut{}, result.NewError(result.OutcomeUserNotFound)
		}
		if in.Name == "crash" {
			return echoOut{}, errors.New("driver: bad connection")
		}
		return echoOut{Hello: in.Name}, nil
	}

	testCases := []struct {
		name     string
		role     string
		action   Action[echoIn, echoOut]
		body     string
		wantBody string
	}{
		{
			name:     "成功",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Handler: echo},
			body:     `{"name":"alice"}`,
			wantBody: `{"code":"0103000000","message":"operation succeeded","data":{"hello":"alice"}}`,
		},
		{
			name:     "参数校验失败",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Handler: echo},
			body:     `{}`,
			wantBody: `{"code":"0103000010","message":"invalid parameter","data":null}`,
		},
		{
			name:     "业务错误",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Handler: echo},
			body:     `{"name":"ghost"}`,
			wantBody: `{"code":"0103000030","message":"user not found","data":null}`,
		},
		{
			name:     "未知错误",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Handler: echo},
			body:     `{"name":"crash"}`,
			wantBody: `{"code":"0103000002","message":"internal system error","data":null}`,
		},
		{
			name:     "未登录",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Auth: true, Handler: echo},
			body:     `{"name":"alice"}`,
			wantBody: `{"code":"0103000020","message":"authentication required","data":null}`,
		},
		{
			name:     "角色不符",
			role:     "user",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Auth: true, Roles: []string{"admin"}, Handler: echo},
			body:     `{"name":"alice"}`,
			wantBody: `{"code":"0103000024","message":"permission denied","data":null}`,
		},
		{
			name:     "角色匹配",
			role:     "admin",
			action:   Action[echoIn, echoOut]{Method: http.MethodPost, Path: "/echo", Binder: BindJSON, Auth: true, Roles: []string{"admin"}, Handler: echo},
			body:     `{"name":"root"}`,
			wantBody: `{"code":"0103000000","message":"operation succeeded","data":{"hello":"root"}}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(tc.role, tc.action)
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestRegisterAction_BindURIAndMethods(t *testing.T) {
	type idIn struct {
		ID string `uri:"id" binding:"required"`
	}
	r := gin.New()
	e := New(r.Group(""), response.NewWriter(result.MustFactory("0103", "00")))
	RegisterAction(e, Action[idIn, string]{
		Method: http.MethodDelete,
		Path:   "/items/:id",
		Binder: BindURI,
		Handler: func(c *gin.Context, in *idIn) (string, error) {
			return in.ID, nil
		},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/items/42", nil))
	assert.JSONEq(t, `{"code":"0103000000","message":"operation succeeded","data":"42"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBind_BodyTooLarge(t *testing.T) {
	r := gin.New()
	w := response.NewWriter(result.MustFactory("0103", "00"))
	// 不声明 Content-Length，读取时才触发 MaxBytesReader
	r.Use(func(c *gin.Context) {
		c.Request.ContentLength = -1
		c.Next()
	}, middleware.MaxBodyBytes(w, 4))
	RegisterAction(New(r.Group(""), w), Action[echoIn, echoOut]{
		Method: http.MethodPost, Path: "/echo", Binder: BindJSON,
		Handler: func(c *gin.Context, in *echoIn) (echoOut, error) { return echoOut{}, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"much too long"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"code":"0103000007","message":"request body too large","data":null}`, rec.Body.String())
}
