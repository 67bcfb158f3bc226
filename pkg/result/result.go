package result

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Result 统一响应体：code / message 总是成对来自同一个 Outcome，data 由调用方决定。
// 只能经 Factory 构造，构造后不可修改。
//
// 注意：SuccessWith(f, nil) 在进程内是“有值（nil）”，但 JSON 里与“无值”同为 null，
// 反序列化后一律得到无值；需要区分两者的调用方不要依赖 JSON 往返。
type Result[T any] struct {
	code    string
	message string
	data    Option[T]
}

func (r Result[T]) Code() string    { return r.code }
func (r Result[T]) Message() string { return r.message }

// Data 返回载荷及是否存在
func (r Result[T]) Data() (T, bool) { return r.data.Get() }

func (r Result[T]) Payload() Option[T] { return r.data }

// wire 对外字段名固定：code / message / data（data 无值时输出 null，不省略）
type wire[T any] struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    Option[T] `json:"data"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire[T]{Code: r.code, Message: r.message, Data: r.data})
}

func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var w wire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Result[T]{code: w.Code, message: w.Message, data: w.Data}
	return nil
}

// ErrInvalidPrefix system_id / service_id 配置非法
var ErrInvalidPrefix = errors.New("result: invalid code prefix")

// Factory 按 system_id + service_id + suffix 拼装最终结果码。
// 两个前缀是部署级常量，进程启动时确定一次。
type Factory struct {
	systemID  string
	serviceID string
}

func NewFactory(systemID, serviceID string) (Factory, error) {
	if strings.TrimSpace(systemID) == "" {
		return Factory{}, errors.Wrap(ErrInvalidPrefix, "empty system id")
	}
	if strings.TrimSpace(serviceID) == "" {
		return Factory{}, errors.Wrap(ErrInvalidPrefix, "empty service id")
	}
	return Factory{systemID: systemID, serviceID: serviceID}, nil
}

// MustFactory 同 NewFactory，失败 panic
func MustFactory(systemID, serviceID string) Factory {
	f, err := NewFactory(systemID, serviceID)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Factory) SystemID() string  { return f.systemID }
func (f Factory) ServiceID() string { return f.serviceID }

// Prefix = system_id ++ service_id
func (f Factory) Prefix() string { return f.systemID + f.serviceID }

// Code 最终结果码，无分隔符直接拼接
func (f Factory) Code(o Outcome) string { return f.systemID + f.serviceID + o.Suffix() }

// Success 成功，无载荷
func (f Factory) Success() Result[any] { return build[any](f, OutcomeSuccess, None[any]()) }

// FromOutcome 任意结果，无载荷
func (f Factory) FromOutcome(o Outcome) Result[any] { return build[any](f, o, None[any]()) }

// SuccessWith 成功并携带载荷（payload 为 nil 也视为“已设置”，序列化为 null，回读为无值）
func SuccessWith[T any](f Factory, payload T) Result[T] {
	return build(f, OutcomeSuccess, Some(payload))
}

// FromOutcomeWith 任意结果并携带载荷
func FromOutcomeWith[T any](f Factory, o Outcome, payload T) Result[T] {
	return build(f, o, Some(payload))
}

func build[T any](f Factory, o Outcome, data Option[T]) Result[T] {
	return Result[T]{code: f.Code(o), message: o.Message(), data: data}
}

// Resolve 把完整结果码还原成 Outcome：前缀必须与本工厂一致，后缀按值精确匹配
func (f Factory) Resolve(code string) (Outcome, bool) {
	p := f.Prefix()
	if p == "" || !strings.HasPrefix(code, p) {
		return 0, false
	}
	return Lookup(code[len(p):])
}

func (f Factory) IsSuccess(code string) bool { return code == f.Code(OutcomeSuccess) }
