package extService

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"footballTipsBot/models/external"
)

const oddsCacheTTL = 10 * time.Minute

// cachedFeed wraps a FixtureFeed with a Redis cache over the odds endpoint.
// Pre-match prices barely move inside the TTL and the provider rate-limits
// aggressively, so one ingestion run for several plans should not hit the
// odds endpoint once per plan per fixture. Cache failures are invisible to
// the caller; the inner feed is always the source of truth.
type cachedFeed struct {
	inner FixtureFeed
	rdb   *redis.Client
	log   *zap.Logger
}

func NewCachedFeed(inner FixtureFeed, rdb *redis.Client, log *zap.Logger) FixtureFeed {
	return &cachedFeed{inner: inner, rdb: rdb, log: log}
}

func (c *cachedFeed) ListFixtures(fromDate, toDate string) ([]external.Football_Fixture, error) {
	// Fixtures carry live status and scores; caching them would delay
	// settlement, so this call passes straight through.
	return c.inner.ListFixtures(fromDate, toDate)
}

func (c *cachedFeed) ListOdds(matchID string) (external.Football_Odds, error) {
	ctx := context.Background()
	key := "odds:" + matchID

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var odds external.Football_Odds
		if jsonErr := json.Unmarshal(raw, &odds); jsonErr == nil {
			return odds, nil
		}
	}

	odds, err := c.inner.ListOdds(matchID)
	if err != nil {
		return odds, err
	}

	if buf, jsonErr := json.Marshal(odds); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, buf, oddsCacheTTL).Err(); setErr != nil {
			c.log.Debug("odds cache write failed", zap.String("match_id", matchID), zap.Error(setErr))
		}
	}

	return odds, nil
}
