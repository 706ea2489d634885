package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisRevokedTokenKeyPrefix prefixes revoked access token IDs.
const RedisRevokedTokenKeyPrefix = "revoked_token:"

// TokenRevocationStore tracks access tokens that must no longer be accepted.
type TokenRevocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type redisTokenRevocationStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisTokenRevocationStore(redisClient *redis.Client, log *logrus.Logger) TokenRevocationStore {
	return &redisTokenRevocationStore{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *redisTokenRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, RedisRevokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		s.log.Warnf("Failed to check revocation for token %s: %+v", tokenID, err)
		return false, fmt.Errorf("check revocation for token %s: %w", tokenID, err)
	}
	return exists > 0, nil
}

// Revoke keeps the token blocked for ttl, which should cover its remaining lifetime.
func (s *redisTokenRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, RedisRevokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		s.log.Warnf("Failed to revoke token %s: %+v", tokenID, err)
		return fmt.Errorf("revoke token %s: %w", tokenID, err)
	}
	return nil
}
