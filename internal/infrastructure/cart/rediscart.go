// Package cart implements the host cart-clearing capability against the
// shared redis cart store.
package cart

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wagate/internal/shared/config"
	"wagate/internal/shared/logger"
)

const cartKeyPrefix = "cart:"

type RedisCartService struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisCartService(cfg *config.RedisConfig, logger logger.Interface) *RedisCartService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisCartService{client: client, logger: logger}
}

func NewRedisCartServiceWithClient(client *redis.Client, logger logger.Interface) *RedisCartService {
	return &RedisCartService{client: client, logger: logger}
}

// Clear drops the cart key. Clearing an absent cart is not an error; the
// customer may have emptied it already.
func (s *RedisCartService) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return nil
	}

	deleted, err := s.client.Del(ctx, cartKeyPrefix+cartID).Result()
	if err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	if deleted == 0 {
		s.logger.Debugw("cart already empty", "cart_id", cartID)
	}

	return nil
}

func (s *RedisCartService) Close() error {
	return s.client.Close()
}
