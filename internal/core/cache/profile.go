package cache

import (
	"context"
	"time"

	"go-gin-result-starter/internal/domain"
)

var _ domain.ProfileCache = (*Profiles)(nil)

// Profiles 用户资料缓存，key = profile:<uid>
type Profiles struct {
	c   *Cache
	ttl time.Duration
}

func NewProfiles(c *Cache, ttl time.Duration) *Profiles {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Profiles{c: c, ttl: ttl}
}

func profileKey(id string) string { return "profile:" + id }

func (p *Profiles) GetOrLoadProfile(ctx context.Context, id string, load func(ctx context.Context) (*domain.Profile, error)) (*domain.Profile, error) {
	return GetOrLoadJSON(ctx, p.c, profileKey(id), p.ttl, load)
}

func (p *Profiles) DeleteProfile(ctx context.Context, id string) error {
	return p.c.Delete(ctx, profileKey(id))
}
