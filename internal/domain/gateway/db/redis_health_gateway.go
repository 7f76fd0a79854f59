package db

import (
	"context"
	"time"

	"abohawa-api/internal/domain/model"
	"abohawa-api/pkg/redis"
)

const cachePingTimeout = 2 * time.Second

type RedisHealthGateway struct {
	client *redis.Client
}

var _ CacheHealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), cachePingTimeout)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
