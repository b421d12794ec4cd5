package crack

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// candidateBatch is how many candidates a worker receives at once; it
// also bounds how many extra hashes workers may compute after the last
// target resolves.
const candidateBatch = 256

// drainParallel feeds gen's sequence through workers parallel testers.
// The engine's own lock keeps remove-and-credit atomic, so at-most-once
// crediting holds across workers. A stop channel closed on exhaustion
// (or cancellation) halts the producer and lets workers finish only the
// batch already in hand.
func drainParallel(ctx context.Context, engine *Engine, gen Generator, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	batches := make(chan []string, workers)
	stop := make(chan struct{})
	var once sync.Once
	halt := func() { once.Do(func() { close(stop) }) }

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for batch := range batches {
				select {
				case <-stop:
					return nil
				default:
				}
				for _, candidate := range batch {
					if _, exhausted := engine.Test(candidate); exhausted {
						halt()
						break
					}
				}
			}
			return nil
		})
	}

	// Producer: the generator itself is not safe for concurrent use, so
	// only this goroutine touches it.
	err := func() error {
		defer close(batches)

		batch := make([]string, 0, candidateBatch)
		for {
			candidate, ok := gen.Next()
			if !ok {
				break
			}
			batch = append(batch, candidate)
			if len(batch) < candidateBatch {
				continue
			}

			select {
			case <-stop:
				return nil
			case <-ctx.Done():
				halt()
				return ctx.Err()
			case batches <- batch:
				batch = make([]string, 0, candidateBatch)
			}
		}

		if len(batch) > 0 {
			select {
			case <-stop:
			case <-ctx.Done():
				halt()
				return ctx.Err()
			case batches <- batch:
			}
		}
		return nil
	}()

	if werr := eg.Wait(); werr != nil && err == nil {
		err = werr
	}
	return err
}
