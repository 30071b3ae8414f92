package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nnema05/music-convertor-website/models"
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// RedisStore backs SessionStore with Redis: one hash per session under
// session:<token>, plus a per-user index so all of a user's concurrent
// sessions can be found.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, session models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "session:" + session.Token
	sessionMap := map[string]any{
		"username":   session.Username,
		"created_at": session.CreatedAt,
		"expires_at": session.ExpiresAt,
		"user_agent": session.UserAgent,
		"ip_address": session.IPAddress,
	}

	if err := s.client.HSet(ctx, key, sessionMap).Err(); err != nil {
		return err
	}
	if err := s.client.Expire(ctx, key, sessionTTL).Err(); err != nil {
		return err
	}

	// Add to the user's session index
	return s.client.SAdd(ctx, "user_sessions:"+session.Username, key).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := s.client.HGetAll(ctx, "session:"+token).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Redis expires the key on its own, but the stored timestamp is
	// still checked so both stores behave identically.
	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil || time.Now().After(expiresAt) {
		return nil, nil
	}

	return &models.Session{
		Token:     token,
		Username:  data["username"],
		CreatedAt: data["created_at"],
		ExpiresAt: data["expires_at"],
		UserAgent: data["user_agent"],
		IPAddress: data["ip_address"],
	}, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "session:" + token
	username, err := s.client.HGet(ctx, key, "username").Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.client.SRem(ctx, "user_sessions:"+username, key).Err(); err != nil {
		return err
	}
	return s.client.Del(ctx, key).Err()
}
