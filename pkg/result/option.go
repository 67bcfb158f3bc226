package result

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Option 显式可选值。零值即“无值”，与任何合法载荷（包括空对象、空串）区分开。
type Option[T any] struct {
	val T
	ok  bool
}

func Some[T any](v T) Option[T] { return Option[T]{val: v, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

// Get 返回值及是否存在
func (o Option[T]) Get() (T, bool) { return o.val, o.ok }

func (o Option[T]) IsPresent() bool { return o.ok }

// OrElse 无值时返回 def
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// MarshalJSON 无值输出 null；有值按载荷本身序列化
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return jsonNull, nil
	}
	return json.Marshal(o.val)
}

// UnmarshalJSON null 视为无值
func (o *Option[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
