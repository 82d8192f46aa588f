// Package cache 进程内缓存（ristretto），用于 AI 解释结果与 Provider 可用性
package cache

import (
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
)

// Cache 带统一过期时间的本地缓存，每个条目的开销计为 1
type Cache[V any] struct {
	store *ristretto.Cache[string, V]
	ttl   time.Duration
}

// New 创建缓存，maxItems 为最多保留的条目数
func New[V any](maxItems int64, ttl time.Duration) (*Cache[V], error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        maxItems * 10,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new ristretto cache")
	}
	return &Cache[V]{store: store, ttl: ttl}, nil
}

// Get ...
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.store.Get(key)
}

// Set 写入缓存并等待写缓冲落盘，保证之后的 Get 可见
func (c *Cache[V]) Set(key string, value V) bool {
	ok := c.store.SetWithTTL(key, value, 1, c.ttl)
	c.store.Wait()
	return ok
}

// Del ...
func (c *Cache[V]) Del(key string) {
	c.store.Del(key)
}

// Clear 清空缓存
func (c *Cache[V]) Clear() {
	c.store.Clear()
}

// Close 释放后台协程
func (c *Cache[V]) Close() {
	c.store.Close()
}

// Key 拼接缓存键
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
