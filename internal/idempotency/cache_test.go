package idempotency

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cooperativa/facturabot/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestSeen(t *testing.T) {
	checker := NewChecker(config.GetDefaultConfig())

	assert.False(t, checker.Seen("wamid.1"))
	assert.True(t, checker.Seen("wamid.1"))
	assert.False(t, checker.Seen("wamid.2"))
}

func TestSeenConcurrentRedelivery(t *testing.T) {
	checker := NewChecker(config.GetDefaultConfig())

	// Concurrent redeliveries of one message ID must resolve to exactly
	// one fresh delivery
	var wg sync.WaitGroup
	var fresh int64
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !checker.Seen("wamid.race") {
				atomic.AddInt64(&fresh, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, fresh)
}

func TestSeenDisabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = false
	checker := NewChecker(cfg)

	assert.False(t, checker.Seen("wamid.1"))
	assert.False(t, checker.Seen("wamid.1"))
}

func TestSeenEmptyID(t *testing.T) {
	checker := NewChecker(config.GetDefaultConfig())

	assert.False(t, checker.Seen(""))
	assert.False(t, checker.Seen(""))
}
