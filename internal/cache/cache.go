package cache

import (
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

var ErrNotFound = errors.New("not found in cache")

type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, expireSeconds int) error
	Del(key string) bool
	Clear()
}

var _ Cache = (*FreeCache)(nil)

type FreeCache struct {
	cache *freecache.Cache
}

// NewFreeCache creates a freecache backed cache. sizeMB below 1 falls back to 1MB.
func NewFreeCache(sizeMB int) *FreeCache {
	if sizeMB < 1 {
		sizeMB = 1
	}
	return &FreeCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (c *FreeCache) Get(key string) ([]byte, error) {
	val, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("freecache get [%s]: %w", key, err)
	}
	return val, nil
}

func (c *FreeCache) Set(key string, value []byte, expireSeconds int) error {
	if err := c.cache.Set([]byte(key), value, expireSeconds); err != nil {
		return fmt.Errorf("freecache set [%s]: %w", key, err)
	}
	return nil
}

func (c *FreeCache) Del(key string) bool {
	return c.cache.Del([]byte(key))
}

func (c *FreeCache) Clear() {
	c.cache.Clear()
}
