package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockroom/inventory-system/internal/core/ports"
)

const (
	statsKey = "dashboard:admin_stats"
	statsTTL = 30 * time.Second
)

// StatsCache is a short-lived Redis cache for the admin dashboard stats.
// Every operation is best-effort; the caller decides what a failure means.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache wraps the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a cache miss.
func (s *StatsCache) Get(ctx context.Context) (*ports.AdminStats, error) {
	raw, err := s.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for statsTTL.
func (s *StatsCache) Set(ctx context.Context, stats ports.AdminStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return s.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
