package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sewakit/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "wizardSession:"

// SessionStore persists wizard sessions between steps.
type SessionStore interface {
	Save(session *models.WizardSession) error
	Get(sessionID string) (*models.WizardSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore stores sessions as JSON in Redis. Every save refreshes
// the TTL, so a session expires only after the user goes idle.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a session store with the given lifetime.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Save(session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
