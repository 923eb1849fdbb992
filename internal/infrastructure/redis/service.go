package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Service struct {
	client *redis.Client
}

// NewService connects to addr and verifies the connection with a ping.
func NewService(ctx context.Context, addr, password string) (*Service, error) {
	if addr == "" {
		log.Warn().Msg("Redis URL not configured - service will be unavailable")
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().
			Err(err).
			Str("addr", addr).
			Msg("Failed to establish Redis connection")
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return newService(client), nil
}

func newService(client *redis.Client) *Service {
	return &Service{client: client}
}

// Ping checks if Redis is accessible
func (s *Service) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Service) Close(ctx context.Context) error {
	return s.client.Close()
}
