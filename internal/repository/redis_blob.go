package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore хранит коллекции как строковые значения Redis
type RedisBlobStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisBlobStore(redisClient *redis.Client, prefix string) *RedisBlobStore {
	return &RedisBlobStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (r *RedisBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.redisClient.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return val, true, nil
}

// Put записывает значения в одной транзакции MULTI/EXEC
func (r *RedisBlobStore) Put(ctx context.Context, entries ...Blob) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.Set(ctx, r.prefix+e.Key, e.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put blobs to redis: %w", err)
	}
	return nil
}
