package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-gin-result-starter/internal/transport/http/response"
	"go-gin-result-starter/pkg/result"
)

// RateLimit 全局令牌桶；rps<=0 表示不限
func RateLimit(w *response.Writer, rps rate.Limit, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !lim.Allow() {
			w.Abort(c, result.OutcomeTooManyRequests)
			return
		}
		c.Next()
	}
}

// maxIPBuckets 桶数量上限；超过后清掉已回满（空闲）的桶
const maxIPBuckets = 10000

// RateLimitPerIP 每个客户端 IP 一个令牌桶；rps<=0 表示不限
func RateLimitPerIP(w *response.Writer, rps rate.Limit, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	b := &ipBuckets{rps: rps, burst: burst, m: make(map[string]*rate.Limiter)}
	return func(c *gin.Context) {
		if !b.get(c.ClientIP()).Allow() {
			w.Abort(c, result.OutcomeTooManyRequests)
			return
		}
		c.Next()
	}
}

type ipBuckets struct {
	mu    sync.Mutex
	rps   rate.Limit
	burst int
	m     map[string]*rate.Limiter
}

func (b *ipBuckets) get(ip string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	if lim, ok := b.m[ip]; ok {
		return lim
	}
	if len(b.m) >= maxIPBuckets {
		b.sweep(time.Now())
	}
	lim := rate.NewLimiter(b.rps, b.burst)
	b.m[ip] = lim
	return lim
}

// sweep 令牌已回满的桶与新建的等价，可以直接丢弃
func (b *ipBuckets) sweep(now time.Time) {
	for ip, lim := range b.m {
		if lim.TokensAt(now) >= float64(b.burst) {
			delete(b.m, ip)
		}
	}
}

func (b *ipBuckets) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.m)
}
