package dish_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"takeout/internal/entities"
	"takeout/internal/service/dish"
)

const scanBatch = 100

type Repository struct {
	client Client
	ttl    time.Duration
}

func New(client Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

// GetDishes возвращает (nil, false, nil) при промахе.
func (r *Repository) GetDishes(ctx context.Context, key string) ([]entities.Dish, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: get %s: %w", dish.ErrCache, key, err)
	}

	var cached []DishCached
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: decode %s: %w", dish.ErrCache, key, err)
	}
	return ToDomainList(cached), true, nil
}

func (r *Repository) SetDishes(ctx context.Context, key string, dishes []entities.Dish) error {
	raw, err := json.Marshal(FromDomainList(dishes))
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", dish.ErrCache, key, err)
	}

	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %w", dish.ErrCache, key, err)
	}
	return nil
}

func (r *Repository) Invalidate(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %w", dish.ErrCache, key, err)
	}
	return nil
}

// InvalidatePrefix удаляет все ключи с префиксом через SCAN.
func (r *Repository) InvalidatePrefix(ctx context.Context, prefix string) error {
	pattern := prefix + "*"

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("%w: scan %s: %w", dish.ErrCache, pattern, err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: del %s: %w", dish.ErrCache, pattern, err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}
