package services

import (
	"sync"

	"forumapi/internal/entities"
	"forumapi/internal/utils"
)

// ThreadCache 缓存帖子详情。任何写操作都清空整个缓存，
// 请求路径里的 threadId 不一定是评论真正所属的帖子。
// 每次失效 generation 加一，读取前拿到的 generation 过期时 Set 不写入。
type ThreadCache struct {
	cache *utils.Cache

	mu         sync.Mutex
	generation uint64
}

func NewThreadCache(cache *utils.Cache) *ThreadCache {
	return &ThreadCache{cache: cache}
}

func threadCacheKey(threadID string) string {
	return "thread_detail:" + threadID
}

// Get returns the cached detail and the generation a following Set must present.
func (c *ThreadCache) Get(threadID string) (*entities.ThreadDetail, uint64) {
	if c == nil {
		return nil, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.cache.Get(threadCacheKey(threadID)).(*entities.ThreadDetail); ok {
		return v, c.generation
	}
	return nil, c.generation
}

// Set stores detail unless the cache was invalidated after generation was read.
func (c *ThreadCache) Set(detail *entities.ThreadDetail, generation uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}
	c.cache.Set(threadCacheKey(detail.ID), detail)
}

func (c *ThreadCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Purge()
}
