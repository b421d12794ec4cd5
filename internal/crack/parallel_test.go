package crack

import (
	"context"
	"fmt"
	"testing"
)

func TestDrainParallelResolvesAll(t *testing.T) {
	alg, _ := LookupAlgorithm("sha1")
	engine := NewEngine(alg, targetsFor(t, "word42", "word911", "word2047"), nil)

	pool := make([]string, 3000)
	for i := range pool {
		pool[i] = fmt.Sprintf("word%d", i)
	}

	if err := drainParallel(context.Background(), engine, NewWords(pool), 4); err != nil {
		t.Fatalf("drainParallel() error = %v", err)
	}

	if !engine.Resolved() {
		t.Errorf("Resolved() = false, %d targets left", engine.Remaining())
	}

	found := engine.Found()
	for _, want := range []string{"word42", "word911", "word2047"} {
		if found[sha1Of(want)] != want {
			t.Errorf("plaintext %q not recovered", want)
		}
	}
}

func TestDrainParallelStopsEarly(t *testing.T) {
	alg, _ := LookupAlgorithm("sha1")
	engine := NewEngine(alg, targetsFor(t, "word100"), nil)

	pool := make([]string, 100_000)
	for i := range pool {
		pool[i] = fmt.Sprintf("word%d", i)
	}

	if err := drainParallel(context.Background(), engine, NewWords(pool), 4); err != nil {
		t.Fatalf("drainParallel() error = %v", err)
	}

	if !engine.Resolved() {
		t.Fatal("target not resolved")
	}
	// The stop channel bounds post-resolution work to the batches already
	// handed out; nowhere near the full pool should have been hashed.
	if engine.Attempts() >= uint64(len(pool)) {
		t.Errorf("Attempts() = %d, want early stop well below %d", engine.Attempts(), len(pool))
	}
}

func TestDrainParallelAtMostOnceAcrossWorkers(t *testing.T) {
	alg, _ := LookupAlgorithm("sha1")
	engine := NewEngine(alg, targetsFor(t, "dup"), nil)

	// The same matching candidate appears many times; only one Test call
	// may credit it.
	pool := make([]string, 5000)
	for i := range pool {
		pool[i] = "dup"
	}

	credits := 0
	engine.OnMatch = func(ids []string, plaintext string) { credits++ }

	if err := drainParallel(context.Background(), engine, NewWords(pool), 8); err != nil {
		t.Fatalf("drainParallel() error = %v", err)
	}
	if credits != 1 {
		t.Errorf("OnMatch fired %d times, want 1", credits)
	}
}

func TestDrainParallelCancellation(t *testing.T) {
	alg, _ := LookupAlgorithm("sha1")
	engine := NewEngine(alg, targetsFor(t, "unguessable"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := drainParallel(ctx, engine, NewDigits(6), 4)
	if err != context.Canceled {
		t.Errorf("drainParallel() error = %v, want context.Canceled", err)
	}
}

func TestDrainParallelDefaultWorkerCount(t *testing.T) {
	alg, _ := LookupAlgorithm("sha1")
	engine := NewEngine(alg, targetsFor(t, "cat"), nil)

	// workers <= 0 falls back to NumCPU rather than deadlocking.
	if err := drainParallel(context.Background(), engine, NewWords([]string{"cat"}), 0); err != nil {
		t.Fatalf("drainParallel() error = %v", err)
	}
	if !engine.Resolved() {
		t.Error("target not resolved")
	}
}
