package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultRPS         = 5
	DefaultBurst       = 10
	DefaultIdleTimeout = 5 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. X-Forwarded-For is
// only honored when the direct peer is a trusted proxy.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	trusted   []netip.Prefix
	now       func() time.Time
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
	}
}

// RateLimiterFromEnv reads RATE_LIMIT_RPS, RATE_LIMIT_BURST and
// TRUSTED_PROXIES (comma-separated IPs or CIDRs of the load balancers).
func RateLimiterFromEnv() *IPRateLimiter {
	rps := float64(DefaultRPS)
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")), 64); err == nil && v > 0 {
		rps = v
	}
	burst := DefaultBurst
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST"))); err == nil && v > 0 {
		burst = v
	}
	l := NewIPRateLimiter(rps, burst)
	if raw := strings.TrimSpace(os.Getenv("TRUSTED_PROXIES")); raw != "" {
		if err := l.TrustProxies(strings.Split(raw, ",")...); err != nil {
			log.Printf("[ratelimit] ignoring TRUSTED_PROXIES: %v", err)
		}
	}
	return l
}

// TrustProxies sets the peers whose X-Forwarded-For header is believed.
func (l *IPRateLimiter) TrustProxies(entries ...string) error {
	var prefixes []netip.Prefix
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			return fmt.Errorf("invalid proxy %q", e)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	l.mu.Lock()
	l.trusted = prefixes
	l.mu.Unlock()
	return nil
}

// SetIdleTimeout controls how long an unused bucket is kept.
func (l *IPRateLimiter) SetIdleTimeout(d time.Duration) {
	l.mu.Lock()
	l.idle = d
	l.mu.Unlock()
}

// Len reports the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiter(ip).Allow()
}

// RateLimit answers 429 once a client exceeds its bucket.
func RateLimit(l *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(l.clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the peer address unless the peer is a trusted proxy; then it
// is the right-most X-Forwarded-For hop that is not itself a trusted proxy.
func (l *IPRateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer, err := netip.ParseAddr(host)
	if err != nil || !l.isTrusted(peer) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !l.isTrusted(hop) {
			return hop.Unmap().String()
		}
	}
	return host
}

func (l *IPRateLimiter) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
