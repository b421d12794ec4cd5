package crack

import "sync"

// defaultProgressEvery is how many attempts pass between progress callbacks.
const defaultProgressEvery = 1_000_000

// Engine tests candidates against the digests still missing a plaintext.
// It owns the attempt counter and the found map for one run. Test is safe
// for concurrent use; the remove-and-credit step runs under the engine
// lock so a digest is credited at most once even when duplicate
// candidates arrive from several generators or workers.
type Engine struct {
	alg     Algorithm
	targets *TargetSet

	// ProgressEvery controls how often Progress fires, in attempts.
	ProgressEvery uint64

	// OnMatch is told every identifier sharing a freshly credited digest.
	// The engine's state transition does not depend on it.
	OnMatch func(ids []string, plaintext string)

	// Progress is a read-only reporting hook; it must not call back into
	// the engine.
	Progress func(attempts uint64, found, total int)

	mu        sync.Mutex
	remaining map[string]struct{}
	found     map[string]string
	attempts  uint64
}

// NewEngine seeds a run: every target digest already present in cached is
// credited up front without any generator work.
func NewEngine(alg Algorithm, targets *TargetSet, cached map[string]string) *Engine {
	e := &Engine{
		alg:           alg,
		targets:       targets,
		ProgressEvery: defaultProgressEvery,
		remaining:     targets.DigestSet(),
		found:         make(map[string]string),
	}

	for digest := range e.remaining {
		if plain, ok := cached[digest]; ok {
			e.found[digest] = plain
			delete(e.remaining, digest)
		}
	}
	return e
}

// Test digests candidate and credits it if some unresolved target matches.
// credited reports whether this exact call resolved a digest; exhausted
// reports whether no unresolved targets remain afterwards.
func (e *Engine) Test(candidate string) (credited, exhausted bool) {
	digest := e.alg.Sum(candidate)

	e.mu.Lock()
	e.attempts++
	if e.Progress != nil && e.attempts%e.ProgressEvery == 0 {
		e.Progress(e.attempts, len(e.found), e.targets.Len())
	}

	if _, ok := e.remaining[digest]; !ok {
		e.mu.Unlock()
		return false, false
	}

	e.found[digest] = candidate
	delete(e.remaining, digest)
	exhausted = len(e.remaining) == 0
	e.mu.Unlock()

	if e.OnMatch != nil {
		e.OnMatch(e.targets.Identifiers(digest), candidate)
	}
	return true, exhausted
}

// Resolved reports whether every target digest has a plaintext.
func (e *Engine) Resolved() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.remaining) == 0
}

// Remaining is the number of digests still missing a plaintext.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.remaining)
}

// Attempts is the number of candidates tested so far this run.
func (e *Engine) Attempts() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempts
}

// Found returns a copy of the digest -> plaintext pairs credited so far,
// including entries seeded from the cache.
func (e *Engine) Found() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.found))
	for d, p := range e.found {
		out[d] = p
	}
	return out
}
