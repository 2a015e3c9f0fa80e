package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/utils"
)

const courtCacheKeyPrefix = "court:cfg:"

// CourtCache is a short-lived Redis cache for court records used during
// slot classification. The TTL is kept short because classification must
// track the court's current configuration; court updates invalidate
// entries eagerly as well.
type CourtCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewCourtCache constructs a CourtCache with a conservative default TTL.
func NewCourtCache(client *redis.Client) *CourtCache {
	return &CourtCache{Client: client, TTL: 2 * time.Minute}
}

// GetMany returns cached courts for the given IDs plus the IDs that missed.
// Redis failures degrade to a full miss; the repository remains the source
// of truth.
func (c *CourtCache) GetMany(ctx context.Context, ids []string) (map[string]models.Court, []string) {
	found := make(map[string]models.Court, len(ids))
	if c == nil || c.Client == nil || len(ids) == 0 {
		return found, ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = courtCacheKeyPrefix + id
	}
	values, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		utils.GetLogger().Warn("court cache read failed", zap.Error(err))
		return found, ids
	}

	var missed []string
	for i, raw := range values {
		str, ok := raw.(string)
		if !ok {
			missed = append(missed, ids[i])
			continue
		}
		var court models.Court
		if err := json.Unmarshal([]byte(str), &court); err != nil {
			missed = append(missed, ids[i])
			continue
		}
		found[court.ID] = court
	}
	return found, missed
}

// SetMany caches the given courts.
func (c *CourtCache) SetMany(ctx context.Context, courts map[string]models.Court) {
	if c == nil || c.Client == nil {
		return
	}
	for _, court := range courts {
		data, err := json.Marshal(court)
		if err != nil {
			continue
		}
		if err := c.Client.Set(ctx, courtCacheKeyPrefix+court.ID, data, c.TTL).Err(); err != nil {
			utils.GetLogger().Warn("court cache write failed", zap.String("courtID", court.ID), zap.Error(err))
			return
		}
	}
}

// Invalidate drops a court's cache entry after a configuration change.
func (c *CourtCache) Invalidate(ctx context.Context, courtID string) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, courtCacheKeyPrefix+courtID).Err(); err != nil {
		utils.GetLogger().Warn("court cache invalidation failed", zap.String("courtID", courtID), zap.Error(err))
	}
}
