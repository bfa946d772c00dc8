package service

import (
	"hash/fnv"
	"sort"
	"sync"
)

const lockStripes = 64

// columnLocks serializes mutation per column so two concurrent moves into the
// same column cannot interleave their read-modify-write steps. Striped so the
// lock table stays bounded regardless of how many columns exist.
type columnLocks struct {
	stripes [lockStripes]sync.Mutex
}

func stripeFor(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % lockStripes)
}

// lock acquires the stripes for the given column keys in ascending stripe
// order, so a two-column move can never deadlock against another. The
// returned func releases them in reverse order.
func (l *columnLocks) lock(keys ...string) func() {
	seen := map[int]bool{}
	indexes := make([]int, 0, len(keys))
	for _, key := range keys {
		idx := stripeFor(key)
		if !seen[idx] {
			seen[idx] = true
			indexes = append(indexes, idx)
		}
	}
	sort.Ints(indexes)

	for _, idx := range indexes {
		l.stripes[idx].Lock()
	}
	return func() {
		for i := len(indexes) - 1; i >= 0; i-- {
			l.stripes[indexes[i]].Unlock()
		}
	}
}
