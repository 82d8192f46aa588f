package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/narasux/chemreact/pkg/common/errcode"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// 超过该数量的客户端后清理长时间未访问的限流器
const (
	maxTrackedClients = 10000
	clientIdleTimeout = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	interval time.Duration
}

func (l *ipRateLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.clients) >= maxTrackedClients {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > clientIdleTimeout {
				delete(l.clients, key)
			}
		}
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimit 按客户端 IP 限制每分钟的请求次数，perMinute <= 0 时不限制
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	interval := time.Minute / time.Duration(perMinute)
	limiter := &ipRateLimiter{
		clients:  map[string]*clientLimiter{},
		limit:    rate.Every(interval),
		burst:    perMinute,
		interval: interval,
	}

	return func(c *gin.Context) {
		now := time.Now()
		if !limiter.get(ginx.GetClientIP(c), now).AllowN(now, 1) {
			c.Header("Retry-After", strconv.Itoa(max(int(limiter.interval/time.Second), 1)))
			ginx.SetErrResp(c, http.StatusTooManyRequests, errcode.TooManyRequests, "too many requests, please retry later")
			return
		}
		c.Next()
	}
}
