package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpez "go-gin-result-starter/internal/transport/http/ez"
	"go-gin-result-starter/pkg/result"
)

// outcomeView 结果码目录的一行，code 已按当前服务前缀拼好
type outcomeView struct {
	Name    string `json:"name"`
	Suffix  string `json:"suffix"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func viewOf(f result.Factory, o result.Outcome) outcomeView {
	return outcomeView{Name: o.String(), Suffix: o.Suffix(), Code: f.Code(o), Message: o.Message()}
}

// mountOutcomes 结果码目录：列表、按后缀查、按完整码反查
func mountOutcomes(e httpez.EZ, f result.Factory) {
	httpez.RegisterAction(e, httpez.Action[struct{}, []outcomeView]{
		Method: http.MethodGet,
		Path:   "/outcomes",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]outcomeView, error) {
			all := result.Outcomes()
			out := make([]outcomeView, 0, len(all))
			for _, o := range all {
				out = append(out, viewOf(f, o))
			}
			return out, nil
		},
	})

	type suffixIn struct {
		Suffix string `uri:"suffix" binding:"required"`
	}
	httpez.RegisterAction(e, httpez.Action[suffixIn, outcomeView]{
		Method: http.MethodGet,
		Path:   "/outcomes/:suffix",
		Binder: httpez.BindURI,
		Handler: func(c *gin.Context, in *suffixIn) (outcomeView, error) {
			o, ok := result.Lookup(in.Suffix)
			if !ok {
				return outcomeView{}, result.NewError(result.OutcomeDataNotFound)
			}
			return viewOf(f, o), nil
		},
	})

	type codeIn struct {
		Code string `uri:"code" binding:"required"`
	}
	httpez.RegisterAction(e, httpez.Action[codeIn, outcomeView]{
		Method: http.MethodGet,
		Path:   "/codes/:code",
		Binder: httpez.BindURI,
		Handler: func(c *gin.Context, in *codeIn) (outcomeView, error) {
			o, ok := f.Resolve(in.Code)
			if !ok {
				return outcomeView{}, result.NewError(result.OutcomeDataNotFound)
			}
			return viewOf(f, o), nil
		},
	})
}
