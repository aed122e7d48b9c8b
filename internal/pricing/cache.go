package pricing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wellport-health/patient-portal-api/internal/medcard"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

const productCacheKey = "medcard:subscription_products"

// ProductCache keeps the MedCard subscription product catalog in redis
// for a short TTL. Reference data only: every operation is best-effort
// and a redis failure is indistinguishable from a miss.
type ProductCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewProductCache creates a product cache. A nil redis client yields a
// nil cache, which all methods tolerate.
func NewProductCache(redisClient *redis.Client, ttl time.Duration, logger *logging.Logger) *ProductCache {
	if redisClient == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ProductCache{redis: redisClient, ttl: ttl, logger: logger}
}

// Get returns the cached catalog, or false on miss/failure.
func (c *ProductCache) Get(ctx context.Context) ([]medcard.SubscriptionProduct, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, productCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("product cache read failed", "error", err)
		}
		return nil, false
	}
	var products []medcard.SubscriptionProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn("product cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return products, true
}

// Set stores the catalog. Failures are logged and swallowed.
func (c *ProductCache) Set(ctx context.Context, products []medcard.SubscriptionProduct) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, productCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("product cache write failed", "error", err)
	}
}
