package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// GetOrLoadJSON GetOrLoad 的 JSON 版本；load 返回 nil 时缓存 "null" 并返回 nil。
// 缓存里的值解不开时删掉重新回源一次
func GetOrLoadJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	fetch := func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	}

	b, err := c.GetOrLoad(ctx, key, ttl, fetch)
	if err != nil {
		return nil, err
	}
	out, err := decodeJSON[T](b)
	if err == nil {
		return out, nil
	}

	_ = c.Delete(ctx, key)
	if b, err = c.GetOrLoad(ctx, key, ttl, fetch); err != nil {
		return nil, err
	}
	out, err = decodeJSON[T](b)
	return out, errors.Wrapf(err, "decode cached %s", key)
}

func decodeJSON[T any](b []byte) (*T, error) {
	if string(b) == "null" {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
