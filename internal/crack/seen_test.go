package crack

import (
	"fmt"
	"sync"
	"testing"
)

func TestShardedSeenCheckAndSet(t *testing.T) {
	s := NewShardedSeen()

	if !s.CheckAndSet("cat") {
		t.Error("first CheckAndSet(cat) = false, want true")
	}
	if s.CheckAndSet("cat") {
		t.Error("second CheckAndSet(cat) = true, want false")
	}
	if !s.CheckAndSet("dog") {
		t.Error("CheckAndSet(dog) = false, want true")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestShardedSeenConcurrent(t *testing.T) {
	s := NewShardedSeen()
	const goroutines = 8
	const values = 1000

	// Every goroutine inserts the same values; each value must be claimed
	// exactly once in total.
	var mu sync.Mutex
	claims := make(map[string]int)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < values; i++ {
				v := fmt.Sprintf("value-%d", i)
				if s.CheckAndSet(v) {
					mu.Lock()
					claims[v]++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if len(claims) != values {
		t.Errorf("claimed %d distinct values, want %d", len(claims), values)
	}
	for v, n := range claims {
		if n != 1 {
			t.Errorf("value %s claimed %d times, want 1", v, n)
		}
	}
	if s.Len() != values {
		t.Errorf("Len() = %d, want %d", s.Len(), values)
	}
}
