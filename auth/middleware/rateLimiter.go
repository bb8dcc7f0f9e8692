package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Per-client-IP token buckets. Entries for idle clients are evicted so
// the map does not grow without bound.
type limiterRegistry struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterRegistry(limit rate.Limit, burst int) *limiterRegistry {
	return &limiterRegistry{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
	}
}

func (r *limiterRegistry) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	cl, exists := r.clients[ip]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (r *limiterRegistry) evictStale() {
	for {
		time.Sleep(time.Minute)
		r.mu.Lock()
		for ip, cl := range r.clients {
			if time.Since(cl.lastSeen) > 3*time.Minute {
				delete(r.clients, ip)
			}
		}
		r.mu.Unlock()
	}
}

func RateLimitMiddleware() gin.HandlerFunc {
	registry := newLimiterRegistry(rate.Every(time.Second), 5)
	go registry.evictStale()

	return func(c *gin.Context) {
		if !registry.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
