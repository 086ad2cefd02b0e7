package scrape

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter spaces requests per target host so a scrape run stays polite
// to every board it hits, one token bucket per hostname.
type HostLimiter struct {
	rate  rate.Limit
	burst int

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		rate:  rate.Limit(reqPerSec),
		burst: burst,
		hosts: make(map[string]*rate.Limiter),
	}
}

// WaitURL blocks until the host of raw may be requested again, or the
// context expires. Unparseable URLs share a single bucket so they are
// still limited.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	host := "unknown"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}

	hl.mu.Lock()
	lim, ok := hl.hosts[host]
	if !ok {
		lim = rate.NewLimiter(hl.rate, hl.burst)
		hl.hosts[host] = lim
	}
	hl.mu.Unlock()

	return lim.Wait(ctx)
}
