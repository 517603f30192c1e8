package market

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"CryptoPulse/internal/domain"
	"CryptoPulse/internal/ports"
)

// Cache holds the latest snapshot from a PriceSource and refreshes it on a
// fixed interval. Feed outages keep the previous snapshot in place.
type Cache struct {
	source ports.PriceSource
	logger *slog.Logger

	mu     sync.RWMutex
	prices []domain.Price
}

// NewCache wraps a price source.
func NewCache(source ports.PriceSource, logger *slog.Logger) *Cache {
	return &Cache{source: source, logger: logger}
}

// Snapshot returns the cached quotes; empty until the first refresh lands.
func (c *Cache) Snapshot() []domain.Price {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Price, len(c.prices))
	copy(out, c.prices)
	return out
}

// Refresh fetches once and swaps the snapshot on success.
func (c *Cache) Refresh(ctx context.Context) {
	prices, err := c.source.Fetch(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("price refresh failed, keeping last snapshot", "error", err)
		}
		return
	}

	c.mu.Lock()
	c.prices = prices
	c.mu.Unlock()
}

// Run refreshes immediately and then on every tick until the context is
// cancelled.
func (c *Cache) Run(ctx context.Context, interval time.Duration) {
	c.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
