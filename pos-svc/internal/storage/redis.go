package storage

import (
	"context"
	"errors"

	"cafe-pos/pos-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSnapshotStore struct {
	Client *redis.Client
	Name   string
}

func NewRedisSnapshotStore(client *redis.Client, name string) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client, Name: name}
}

func (s *RedisSnapshotStore) SnapshotKey() string {
	return "pos:snapshot:" + s.Name
}

func (s *RedisSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.SnapshotKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, data []byte) error {
	return s.Client.Set(ctx, s.SnapshotKey(), data, 0).Err()
}
