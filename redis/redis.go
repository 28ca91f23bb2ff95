package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// CacheTTL bounds how stale the cached catalog responses may get.
const CacheTTL = 5 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// GetCached returns the cached payload for a key, or "" on miss/disconnect.
func GetCached(key string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetCached stores a payload with the catalog TTL; failures are ignored,
// the cache is strictly an optimization.
func SetCached(key, value string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, value, CacheTTL)
}

// Invalidate drops cached keys after a write.
func Invalidate(keys ...string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, keys...)
}
