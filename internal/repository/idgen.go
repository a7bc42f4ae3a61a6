package repository

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator issues record ids from a millisecond timestamp, bumped when two
// ids land on the same millisecond so ids stay unique and generation-ordered
// within a collection.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{}
}

func (g *idGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
