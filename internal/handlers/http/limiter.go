package http

import (
	"net"
	nethttp "net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterBurst = 3

	// maxTrackedClients bounds the limiter table; it is reset when exceeded
	maxTrackedClients = 10000
)

// clientLimiter hands out one token bucket per remote IP
type clientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

func newClientLimiter(perMinute int) *clientLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

func (l *clientLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= maxTrackedClients {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.limit, limiterBurst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// allow reports whether the request's client still has budget
func (l *clientLimiter) allow(r *nethttp.Request) bool {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return l.get(ip).Allow()
}
