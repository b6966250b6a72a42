// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "container/list"

// objectCache is a capacity-bounded, least-recently-used cache of
// materialized objects, keyed by "num_gen" reference. It is the
// single-threaded counterpart of the upstream Reader's objCache/cacheList
// pair: same container/list-backed move-to-front/evict-oldest scheme, but
// without the mutex that pattern needed, since a session is never shared
// across goroutines.
type objectCache struct {
	entries map[string]*list.Element
	order   *list.List
	cap     int // 0 means unbounded
}

type cacheEntry struct {
	key   string
	value []RawValue
}

func newObjectCache(capacity int) *objectCache {
	return &objectCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		cap:     capacity,
	}
}

func (c *objectCache) get(key string) ([]RawValue, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(cacheEntry).value, true
}

func (c *objectCache) put(key string, value []RawValue) {
	if elem, ok := c.entries[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}
	elem := c.order.PushFront(cacheEntry{key: key, value: value})
	c.entries[key] = elem
	if c.cap > 0 && c.order.Len() > c.cap {
		c.evictOldest()
	}
}

func (c *objectCache) evictOldest() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	delete(c.entries, back.Value.(cacheEntry).key)
}

func (c *objectCache) len() int {
	return c.order.Len()
}
