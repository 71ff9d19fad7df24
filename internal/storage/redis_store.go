package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitaipro/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// RedisStore keeps each record under the "<kind>:<key>" redis key, without expiration.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, kind RecordKind, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.get")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	data, err := s.redisClient.Get(ctx, recordKey(kind, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("redis get [%s]: %w", recordKey(kind, key), err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, kind RecordKind, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.set")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	if err := s.redisClient.Set(ctx, recordKey(kind, key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", recordKey(kind, key), err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, kind RecordKind, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.delete")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("kind", kind.String()))

	if err := s.redisClient.Del(ctx, recordKey(kind, key)).Err(); err != nil {
		return fmt.Errorf("redis del [%s]: %w", recordKey(kind, key), err)
	}
	return nil
}
