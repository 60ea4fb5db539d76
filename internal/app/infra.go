package app

import (
	"github.com/navidmo/cloud-based-oidc/internal/config"
	"github.com/navidmo/cloud-based-oidc/internal/logger"
	"github.com/navidmo/cloud-based-oidc/internal/redis"
)

type Infra struct {
	Redis *redis.Client
}

// setupInfra brings up the external state this service touches. Redis
// holds durable token records and nothing else; there is no user
// database by design.
func setupInfra(cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Redis: redisClient,
	}, nil
}
