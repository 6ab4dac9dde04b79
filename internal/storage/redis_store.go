package storage

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
}

func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := r.client.B().Get().Key(key).Build()
	value, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}

	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	cmd := r.client.B().Set().Key(key).Value(rueidis.BinaryString(value)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	cmd := r.client.B().Del().Key(key).Build()
	return r.client.Do(ctx, cmd).Error()
}
