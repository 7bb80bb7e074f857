package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraiyur/seyyul"
)

func TestResultCacheBound(t *testing.T) {
	c := newResultCache(3)

	for i := 0; i < 5; i++ {
		c.put(fmt.Sprintf("key%d", i), &seyyul.Result{MatchScore: i})
	}

	assert.Len(t, c.entries, 3)

	// The two oldest entries were evicted.
	_, ok := c.get("key0")
	assert.False(t, ok)
	_, ok = c.get("key1")
	assert.False(t, ok)

	res, ok := c.get("key4")
	assert.True(t, ok)
	assert.Equal(t, 4, res.MatchScore)
}

func TestResultCacheDuplicatePut(t *testing.T) {
	c := newResultCache(3)

	first := &seyyul.Result{MatchScore: 1}
	c.put("key", first)
	c.put("key", &seyyul.Result{MatchScore: 2})

	res, ok := c.get("key")
	assert.True(t, ok)
	assert.Equal(t, 1, res.MatchScore)
	assert.Len(t, c.order, 1)
}
