package idempotency

import (
	"time"

	"github.com/cooperativa/facturabot/internal/config"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is how long a processed message ID is remembered.
// Messaging providers redeliver webhooks on slow acks, so a short
// window is enough.
const DefaultExpiration = 10 * time.Minute

// DefaultCleanupInterval is how often expired entries are removed
const DefaultCleanupInterval = 30 * time.Minute

// Checker deduplicates inbound webhook deliveries by message ID.
type Checker struct {
	cache   *goCache.Cache
	enabled bool
}

// NewChecker builds the in-memory dedupe cache.
func NewChecker(cfg *config.Configuration) *Checker {
	return &Checker{
		cache:   goCache.New(DefaultExpiration, DefaultCleanupInterval),
		enabled: cfg.Cache.Enabled,
	}
}

// Seen records the message ID and reports whether it was already
// processed within the expiration window. Add is atomic, so concurrent
// redeliveries of the same ID resolve to exactly one fresh delivery.
func (c *Checker) Seen(messageID string) bool {
	if !c.enabled || messageID == "" {
		return false
	}
	return c.cache.Add(messageID, struct{}{}, goCache.DefaultExpiration) != nil
}
