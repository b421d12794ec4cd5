package crack

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// seenShards is a power of two so shard selection is a mask.
const seenShards = 128

// ShardedSeen is a concurrent membership set sharded across independent
// mutexes to keep contention low when many workers deduplicate at once.
type ShardedSeen struct {
	shards [seenShards]struct {
		mu    sync.Mutex
		items map[string]struct{}
	}
}

// NewShardedSeen returns an empty sharded seen-set.
func NewShardedSeen() *ShardedSeen {
	s := &ShardedSeen{}
	for i := range s.shards {
		s.shards[i].items = make(map[string]struct{}, 256)
	}
	return s
}

// CheckAndSet records v and reports whether it was new.
func (s *ShardedSeen) CheckAndSet(v string) bool {
	shard := &s.shards[xxh3.HashString(v)&(seenShards-1)]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.items[v]; ok {
		return false
	}
	shard.items[v] = struct{}{}
	return true
}

// Len is the total number of distinct values recorded.
func (s *ShardedSeen) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		total += len(s.shards[i].items)
		s.shards[i].mu.Unlock()
	}
	return total
}
