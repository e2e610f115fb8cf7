package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/vero/internal/utils"
)

// fixedWindowLimiter counts requests per key in fixed windows of length
// window. A key may make at most limit requests per window.
type fixedWindowLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*windowBucket
	now     func() time.Time

	// lastSweep is when expired buckets were last dropped.
	lastSweep time.Time
}

type windowBucket struct {
	start time.Time
	count int
}

func newFixedWindowLimiter(limit int, window time.Duration) *fixedWindowLimiter {
	return &fixedWindowLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*windowBucket),
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (l *fixedWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	bucket, ok := l.buckets[key]
	if !ok || now.Sub(bucket.start) >= l.window {
		l.buckets[key] = &windowBucket{start: now, count: 1}
		return true
	}

	if bucket.count >= l.limit {
		return false
	}
	bucket.count++

	return true
}

// sweep drops expired buckets at most once per window so the map does not
// grow with every address ever seen.
func (l *fixedWindowLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, bucket := range l.buckets {
		if now.Sub(bucket.start) >= l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// throttleLogin rejects login attempts above the configured rate per client
// address with 429.
func (h *Handler) throttleLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.loginLimiter != nil && !h.loginLimiter.Allow(utils.ClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(h.loginLimiter.window/time.Second))))
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
