package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Slot listings go stale the moment a booking lands, so entries are short
// lived and dropped eagerly on any write for the stylist's day. The create
// path never trusts this cache; it re-checks under lock.
const slotTTL = 30 * time.Second

type SlotCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewSlotCache(client *redis.Client, logger *zap.Logger) *SlotCache {
	return &SlotCache{client: client, logger: logger}
}

func slotKey(stylistID, serviceID uint, date string) string {
	return fmt.Sprintf("slots:%d:%d:%s", stylistID, serviceID, date)
}

// Get unmarshals cached slots into dst. Returns false on miss or any
// cache error; the cache is never allowed to fail a listing.
func (c *SlotCache) Get(ctx context.Context, stylistID, serviceID uint, date string, dst any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, slotKey(stylistID, serviceID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("slot cache read failed", zap.Error(err))
		}
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *SlotCache) Set(ctx context.Context, stylistID, serviceID uint, date string, v any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(stylistID, serviceID, date), raw, slotTTL).Err(); err != nil {
		c.logger.Warn("slot cache write failed", zap.Error(err))
	}
}

// InvalidateDay drops every cached listing for the stylist on the given
// date, across services.
func (c *SlotCache) InvalidateDay(ctx context.Context, stylistID uint, date string) {
	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:*:%s", stylistID, date)
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		c.logger.Warn("slot cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		c.client.Del(ctx, keys...)
	}
}
