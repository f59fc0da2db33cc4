package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
)

// limiterIdleTTL is how long an idle caller keeps its bucket.
const limiterIdleTTL = 10 * time.Minute

type callerLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter keeps one token bucket per caller. Authenticated callers are
// keyed by principal; anonymous calls share a bucket per remote host.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*callerLimiter
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	if burst < 1 {
		burst = max(1, int(math.Ceil(perSecond)))
	}
	return &rateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*callerLimiter),
		now:      time.Now,
	}
}

// allow reports whether key may make another call now.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for k, cl := range rl.limiters {
			if now.Sub(cl.lastAccess) > limiterIdleTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &callerLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = now
	return cl.limiter.AllowN(now, 1)
}

func (rl *rateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// retryAfter is the number of whole seconds until one token refills.
func (rl *rateLimiter) retryAfter() int {
	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := limiterKey(r)
		if !h.limiter.allow(key) {
			h.recorder.RecordRateLimited()
			logger.FromRequest(r).Warn().Str("caller", key).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func limiterKey(r *http.Request) string {
	if p, ok := utils.GetPrincipalFromContext(r.Context()); ok && !p.IsAnonymous() {
		return p.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "anonymous@" + host
}
