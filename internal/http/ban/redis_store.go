package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/vigilio-gateway/internal/redissvc"
)

const (
	DailyBanLogKey = "ratelimit:banlog:daily"
	strikePrefix   = "ratelimit:strikes:"
	banPrefix      = "ratelimit:ban:"
)

// RedisStore shares strikes and bans between gateway replicas.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rs *redissvc.RedisService) *RedisStore {
	return &RedisStore{rdb: rs.Rdb()}
}

func (s *RedisStore) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banPrefix+target).Result()
	if err != nil {
		return false, fmt.Errorf("checking ban: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Strike(ctx context.Context, target string, window time.Duration) (int, error) {
	key := strikePrefix + target
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("counting strike: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("setting strike window: %w", err)
		}
	}
	return int(n), nil
}

func (s *RedisStore) Ban(ctx context.Context, target string, d time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, banPrefix+target, time.Now().Add(d).Unix(), d)
		pipe.Del(ctx, strikePrefix+target)
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing ban: %w", err)
	}
	return nil
}

func (s *RedisStore) AppendLog(ctx context.Context, entry BanLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

func (s *RedisStore) DrainLog(ctx context.Context) ([]BanLogEntry, error) {
	var items *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, DailyBanLogKey, 0, -1)
		pipe.Del(ctx, DailyBanLogKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("draining ban log: %w", err)
	}

	var entries []BanLogEntry
	for _, item := range items.Val() {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			log.Printf("skipping malformed ban log entry: %v", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
