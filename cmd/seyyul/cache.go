package main

import (
	"sync"

	"github.com/maraiyur/seyyul"
)

// resultCache is a bounded FIFO cache of analysis results keyed on the
// normalized query. Analysis is deterministic over an immutable corpus, so
// entries never go stale; the bound only limits memory.
type resultCache struct {
	mu      sync.Mutex
	max     int
	order   []string
	entries map[string]*seyyul.Result
}

func newResultCache(max int) *resultCache {
	return &resultCache{
		max:     max,
		entries: make(map[string]*seyyul.Result, max),
	}
}

func (c *resultCache) get(key string) (*seyyul.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *resultCache) put(key string, res *seyyul.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		return
	}
	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.order = append(c.order, key)
	c.entries[key] = res
}
