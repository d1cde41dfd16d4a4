package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionStore tracks issued access tokens so they can be revoked before
// they expire.
type SessionStore interface {
	Register(ctx context.Context, accountID int64, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, accountID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, accountID int64, tokenID string) error
	RevokeAll(ctx context.Context, accountID int64) error
}

type redisSessionStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisSessionStore(client *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{client: client, log: log}
}

func sessionKey(accountID int64, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", accountID, tokenID)
}

func (s *redisSessionStore) Register(ctx context.Context, accountID int64, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(accountID, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) IsActive(ctx context.Context, accountID int64, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(accountID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check session in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, accountID int64, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(accountID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}
	return nil
}

// RevokeAll drops every session of the account, e.g. when the account is deleted.
func (s *redisSessionStore) RevokeAll(ctx context.Context, accountID int64) error {
	pattern := fmt.Sprintf("access_token:%d:*", accountID)
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Failed to scan sessions in Redis: %+v", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to delete sessions from Redis: %+v", err)
		return err
	}
	return nil
}
