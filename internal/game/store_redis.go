package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoundPersistence — абстракция "положить/достать snapshot".
type RoundPersistence interface {
	Save(ctx context.Context, roundID string, snap RoundSnapshot) error
	Load(ctx context.Context, roundID string) (RoundSnapshot, bool, error)
}

type RedisRoundStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoundStore(rdb *redis.Client, ttl time.Duration) *RedisRoundStore {
	return &RedisRoundStore{rdb: rdb, ttl: ttl}
}

func (s *RedisRoundStore) key(roundID string) string {
	return fmt.Sprintf("round:%s:snapshot", roundID)
}

func (s *RedisRoundStore) Save(ctx context.Context, roundID string, snap RoundSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(roundID), b, s.ttl).Err()
}

func (s *RedisRoundStore) Load(ctx context.Context, roundID string) (RoundSnapshot, bool, error) {
	val, err := s.rdb.Get(ctx, s.key(roundID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return RoundSnapshot{}, false, nil
	}
	if err != nil {
		return RoundSnapshot{}, false, err
	}

	var snap RoundSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return RoundSnapshot{}, false, err
	}
	return snap, true, nil
}
