package dish_cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client - подмножество команд go-redis, нужное кэшу.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}
