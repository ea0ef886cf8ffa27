package middleware

import "time"

// SetClock replaces the limiter's time source.
func (l *IPRateLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}
