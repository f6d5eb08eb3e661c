package utils

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem 包装缓存数据和过期时间
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache 本地 LRU 缓存，带 TTL
type Cache struct {
	lruCache *lru.Cache[string, CacheItem]
	ttl      time.Duration
}

// NewCache returns nil when size or ttl disables caching; a nil *Cache is a
// valid no-op cache.
func NewCache(size int, ttl time.Duration) (*Cache, error) {
	if size <= 0 || ttl <= 0 {
		return nil, nil
	}
	l, err := lru.New[string, CacheItem](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &Cache{lruCache: l, ttl: ttl}, nil
}

func (c *Cache) Set(key string, data interface{}) {
	if c == nil {
		return
	}
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(c.ttl),
	})
}

// Get 获取缓存，若不存在或已过期则返回 nil
func (c *Cache) Get(key string) interface{} {
	if c == nil {
		return nil
	}
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

func (c *Cache) Delete(key string) {
	if c == nil {
		return
	}
	c.lruCache.Remove(key)
}

// Purge 清空全部缓存
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.lruCache.Purge()
}
