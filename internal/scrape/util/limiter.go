package util

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces requests per hostname so one run never hammers a single
// site, even when many (source, term) invocations target the same host. The
// zero value of a nil *Limiter disables pacing entirely, which tests use.
type Limiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	every rate.Limit
}

// NewLimiter returns a limiter allowing one request per pause per host. A
// pause of zero or less returns nil, i.e. no pacing.
func NewLimiter(pause time.Duration) *Limiter {
	if pause <= 0 {
		return nil
	}
	return &Limiter{
		hosts: make(map[string]*rate.Limiter),
		every: rate.Every(pause),
	}
}

// WaitURL blocks until the host of raw may be contacted again, or until ctx
// is done. Unparseable URLs share one bucket rather than escaping pacing.
func (l *Limiter) WaitURL(ctx context.Context, raw string) error {
	if l == nil {
		return nil
	}
	host := "_"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}
	return l.forHost(host).Wait(ctx)
}

func (l *Limiter) forHost(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.hosts[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.every, 1)
	l.hosts[host] = lim
	return lim
}
