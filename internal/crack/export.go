package crack

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ExportOptions tunes Export.
type ExportOptions struct {
	// Dedupe drops candidates already written through the same seen-set.
	// Several exports may share one Seen to dedupe across generators.
	Dedupe bool
	Seen   *ShardedSeen

	// Progress is called every ProgressEvery written candidates.
	Progress      func(written uint64)
	ProgressEvery uint64
}

// Export drains gen into w, one candidate per line, for consumption by
// an out-of-process matching tool. The generator contract is unchanged;
// the sink simply replaces the engine.
func Export(ctx context.Context, gen Generator, w io.Writer, opts ExportOptions) (written uint64, err error) {
	bw := bufio.NewWriterSize(w, scannerInitialBuffer)

	seen := opts.Seen
	if opts.Dedupe && seen == nil {
		seen = NewShardedSeen()
	}
	every := opts.ProgressEvery
	if every == 0 {
		every = defaultProgressEvery
	}

	for i := uint64(0); ; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return written, err
			}
		}

		candidate, ok := gen.Next()
		if !ok {
			break
		}
		if opts.Dedupe && !seen.CheckAndSet(candidate) {
			continue
		}

		if _, err := bw.WriteString(candidate); err != nil {
			return written, fmt.Errorf("failed to write candidate: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written, fmt.Errorf("failed to write candidate: %w", err)
		}

		written++
		if opts.Progress != nil && written%every == 0 {
			opts.Progress(written)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush candidates: %w", err)
	}
	return written, nil
}
