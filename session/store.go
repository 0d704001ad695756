// Package session 保存访客的临时数据（评估草稿、已提交的评估），按cookie中的会话ID隔离
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lawwork/config"
)

// ErrNotFound 会话或键不存在（包括已过期）
var ErrNotFound = errors.New("session value not found")

// Store 以 会话ID + 键 保存文本值
type Store interface {
	Get(ctx context.Context, sid, key string) (string, error)
	Set(ctx context.Context, sid, key, value string) error
	Delete(ctx context.Context, sid, key string) error
	Close() error
}

// Sweeper 需要主动清理过期会话的存储实现
type Sweeper interface {
	Sweep(now time.Time) int
}

// New 根据配置创建会话存储
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	ttl := time.Duration(cfg.Session.TTLMin) * time.Minute
	switch cfg.Session.Backend {
	case "memory":
		return NewMemoryStore(ttl), nil
	case "redis":
		store := NewRedisStore(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix, ttl)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
