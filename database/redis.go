package database

import (
	"sync"
	"time"

	"github.com/edustack/school-fees-api/config"
	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisCache  *cache.Cache
)

// StartRedis connects the cache layer. Redis is optional: without REDIS_URL
// the directory lookups simply go straight to Mongo every time.
func StartRedis() error {
	url := config.GetEnv("REDIS_URL")
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	redisOnce.Do(func() {
		redisClient = redis.NewClient(opts)
		redisCache = cache.New(&cache.Options{
			Redis:      redisClient,
			LocalCache: cache.NewTinyLFU(1000, time.Minute),
		})
	})
	return nil
}

// GetCache returns the shared cache instance, nil when redis is not
// configured.
func GetCache() *cache.Cache {
	return redisCache
}

func CloseRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
