package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// Cache 定义接口 (Set, Get, Del)
//
// Same shape the backend services use for their session store, backed here by
// an in-process LRU since the management screens only need
// mutate-and-invalidate semantics, not cross-process sharing.
type Cache[T any] interface {
	Set(key string, value T)
	Get(key string) (T, bool)
	Del(key string)
	Purge()
}

type lruCache[T any] struct {
	l *lru.Cache
}

// NewLRU init LRU cache
func NewLRU[T any](size int) (Cache[T], error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &lruCache[T]{l: l}, nil
}

func (c *lruCache[T]) Set(key string, value T) {
	c.l.Add(key, value)
}

func (c *lruCache[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := c.l.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

func (c *lruCache[T]) Del(key string) {
	c.l.Remove(key)
}

func (c *lruCache[T]) Purge() {
	c.l.Purge()
}
