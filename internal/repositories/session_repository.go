package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"worknestBack/internal/models"
)

// SessionRepository persists refresh-token sessions in Redis. Keys expire with
// the refresh TTL, so abandoned sessions clean themselves up.
type SessionRepository struct {
	Client *redis.Client
}

func sessionKey(refreshToken string) string {
	return "session:" + refreshToken
}

func (r *SessionRepository) SaveSession(ctx context.Context, refreshToken string, identity models.Identity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(refreshToken), data, ttl).Err()
}

// GetSession resolves a refresh token back to its identity. A missing or
// expired token reports models.ErrNoRecord.
func (r *SessionRepository) GetSession(ctx context.Context, refreshToken string) (models.Identity, error) {
	data, err := r.Client.Get(ctx, sessionKey(refreshToken)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Identity{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// DeleteSession drops the session unconditionally; deleting an absent session
// is not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	return r.Client.Del(ctx, sessionKey(refreshToken)).Err()
}
