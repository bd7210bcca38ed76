package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "freebusy:busy:"

// Cache is the subset of *redis.Client the CachedResolver uses.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver answers from Redis, falling back to the wrapped resolver on
// a miss and caching what it returns for ttl.
type CachedResolver struct {
	cache Cache
	next  Resolver
	ttl   time.Duration
}

func NewCachedResolver(cache Cache, next Resolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		cache: cache,
		next:  next,
		ttl:   ttl,
	}
}

func (cr *CachedResolver) Resolve(ctx context.Context, party string) (Busy, error) {
	log := logrus.WithField("party", party)
	key := cacheKeyPrefix + party

	val, err := cr.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		var busy Busy
		if err := json.Unmarshal([]byte(val), &busy); err == nil && busy.Validate() == nil {
			return busy, nil
		}
		log.Warn("discarding malformed cached busy time")
	case err != redis.Nil:
		log.WithError(err).Warn("busy time cache unavailable")
	default:
		log.Debug("busy time cache miss")
	}

	busy, err := cr.next.Resolve(ctx, party)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(busy)
	if err != nil {
		return nil, errors.Wrapf(err, "encode busy time of %s", party)
	}
	if err := cr.cache.Set(ctx, key, data, cr.ttl).Err(); err != nil {
		log.WithError(err).Warn("failed to cache busy time")
	}
	return busy, nil
}
