package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-result-starter/pkg/result"
)

// HeaderResultCode 回写最终结果码，供 metrics / access log 使用
const HeaderResultCode = "X-Result-Code"

// Writer 把 result.Result 写成 HTTP 响应；业务结果一律 HTTP 200，语义看 code
type Writer struct {
	f result.Factory
}

func NewWriter(f result.Factory) *Writer { return &Writer{f: f} }

func (w *Writer) Factory() result.Factory { return w.f }

// JSON 写出任意载荷类型的统一响应
func JSON[T any](c *gin.Context, r result.Result[T]) {
	c.Header(HeaderResultCode, r.Code())
	c.JSON(http.StatusOK, r)
}

// OK 成功并携带载荷
func (w *Writer) OK(c *gin.Context, data any) {
	JSON(c, result.SuccessWith(w.f, data))
}

// Outcome 按结果写出，无载荷
func (w *Writer) Outcome(c *gin.Context, o result.Outcome) {
	JSON(c, w.f.FromOutcome(o))
}

// Abort 中间件拦截时使用：写出结果并终止后续 handler
func (w *Writer) Abort(c *gin.Context, o result.Outcome) {
	r := w.f.FromOutcome(o)
	c.Header(HeaderResultCode, r.Code())
	c.AbortWithStatusJSON(http.StatusOK, r)
}

// Fail 把 error 映射成结果；原始错误挂到 c.Errors，只进日志不进响应
func (w *Writer) Fail(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	w.Outcome(c, result.OutcomeOf(err))
}
