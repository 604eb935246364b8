package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/protomem/clinic-api/internal/model"
	"github.com/redis/go-redis/v9"
)

const _redisKeyPrefix = "session:"

// RedisStore shares sessions between api-server instances. Expiry is left
// to Redis key TTLs.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Get(ctx context.Context, token string) (model.Session, error) {
	raw, err := s.client.Get(ctx, _redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}
		return model.Session{}, err
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}

	return s.client.Set(ctx, _redisKeyPrefix+sess.Token, raw, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, _redisKeyPrefix+token).Err()
}
