package result

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error 携带 Outcome 的业务错误。对外只暴露 Outcome 的 code/message，cause 仅用于日志溯源。
type Error struct {
	outcome Outcome
	cause   error
}

func NewError(o Outcome) *Error { return &Error{outcome: o} }

// Wrap 给 cause 附上结果；cause 为 nil 时等价于 NewError
func Wrap(o Outcome, cause error) *Error {
	if cause == nil {
		return NewError(o)
	}
	return &Error{outcome: o, cause: errors.WithStack(cause)}
}

func Wrapf(o Outcome, cause error, format string, args ...any) *Error {
	if cause == nil {
		return &Error{outcome: o, cause: errors.Errorf(format, args...)}
	}
	return &Error{outcome: o, cause: errors.Wrapf(cause, format, args...)}
}

func (e *Error) Outcome() Outcome { return e.outcome }

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s(%s): %s", e.outcome, e.outcome.Suffix(), e.outcome.Message())
	}
	return fmt.Sprintf("%s(%s): %v", e.outcome, e.outcome.Suffix(), e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// Cause 兼容 pkg/errors.Cause
func (e *Error) Cause() error { return e.cause }

// Is 同一 Outcome 视为同一语义
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.outcome == e.outcome
}

// Format 支持 %+v 打印 cause 的调用栈
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.cause != nil {
		_, _ = fmt.Fprintf(s, "%s(%s): %+v", e.outcome, e.outcome.Suffix(), e.cause)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// OutcomeOf 从错误链里取出结果：nil → 成功；非 *Error → 系统错误
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.outcome
	}
	return OutcomeSystemError
}
