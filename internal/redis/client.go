package redisdb

import (
	"github.com/redis/go-redis/v9"

	"tutorchat/internal/config"
)

// NewClient returns a redis client, or nil when no address is configured.
// A nil client disables caching without changing any handler behavior.
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
