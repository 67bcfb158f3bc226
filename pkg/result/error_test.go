package result

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeOf(t *testing.T) {
	cause := errors.New("db down")
	testCases := []struct {
		name string
		err  error
		want Outcome
	}{
		{name: "nil", err: nil, want: OutcomeSuccess},
		{name: "普通错误", err: cause, want: OutcomeSystemError},
		{name: "业务错误", err: NewError(OutcomeUserNotFound), want: OutcomeUserNotFound},
		{name: "带 cause", err: Wrap(OutcomeDatabaseError, cause), want: OutcomeDatabaseError},
		{name: "外层再包一层", err: fmt.Errorf("service: %w", NewError(OutcomeFileTooLarge)), want: OutcomeFileTooLarge},
		{name: "pkg/errors 包装", err: errors.Wrap(NewError(OutcomeTokenExpired), "auth"), want: OutcomeTokenExpired},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OutcomeOf(tc.err))
		})
	}
}

func TestError_IsAndCause(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrapf(OutcomeUserNotFound, cause, "find user %s", "u1")

	assert.True(t, errors.Is(err, NewError(OutcomeUserNotFound)))
	assert.False(t, errors.Is(err, NewError(OutcomeDataNotFound)))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Cause(err))
	assert.Contains(t, err.Error(), "USER_NOT_FOUND(0030)")
	assert.Contains(t, err.Error(), "find user u1: record not found")
}

func TestWrap_NilCause(t *testing.T) {
	err := Wrap(OutcomeFailure, nil)
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "FAILURE(0001): operation failed", err.Error())

	err = Wrapf(OutcomeInvalidParam, nil, "limit %d", 0)
	assert.Equal(t, "INVALID_PARAM(0010): limit 0", err.Error())
}

func TestError_FormatPlusV(t *testing.T) {
	err := Wrap(OutcomeDatabaseError, errors.New("conn refused"))
	s := fmt.Sprintf("%+v", err)
	assert.Contains(t, s, "DATABASE_ERROR(0059): conn refused")
	// %+v 带上 pkg/errors 记录的调用栈
	assert.Contains(t, s, "error_test.go")
}
