package crack

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExportWritesOneCandidatePerLine(t *testing.T) {
	var buf bytes.Buffer
	written, err := Export(context.Background(), NewWords([]string{"cat", "dog"}), &buf, ExportOptions{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if written != 2 {
		t.Errorf("written = %d, want 2", written)
	}
	if buf.String() != "cat\ndog\n" {
		t.Errorf("output = %q, want %q", buf.String(), "cat\ndog\n")
	}
}

func TestExportDedupe(t *testing.T) {
	var buf bytes.Buffer
	written, err := Export(context.Background(), NewWords([]string{"cat", "dog", "cat"}), &buf, ExportOptions{Dedupe: true})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if written != 2 {
		t.Errorf("written = %d, want 2", written)
	}
	if buf.String() != "cat\ndog\n" {
		t.Errorf("output = %q, want %q", buf.String(), "cat\ndog\n")
	}
}

func TestExportSharedSeenAcrossGenerators(t *testing.T) {
	seen := NewShardedSeen()
	var buf bytes.Buffer
	opts := ExportOptions{Dedupe: true, Seen: seen}

	if _, err := Export(context.Background(), NewWords([]string{"cat", "dog"}), &buf, opts); err != nil {
		t.Fatalf("first Export() error = %v", err)
	}
	written, err := Export(context.Background(), NewWords([]string{"dog", "bird"}), &buf, opts)
	if err != nil {
		t.Fatalf("second Export() error = %v", err)
	}

	if written != 1 {
		t.Errorf("second export written = %d, want 1", written)
	}
	if buf.String() != "cat\ndog\nbird\n" {
		t.Errorf("output = %q, want %q", buf.String(), "cat\ndog\nbird\n")
	}
}

func TestExportCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := Export(ctx, NewDigits(6), &buf, ExportOptions{})
	if err != context.Canceled {
		t.Errorf("Export() error = %v, want context.Canceled", err)
	}
}

func TestExportProgress(t *testing.T) {
	pool := make([]string, 10)
	for i := range pool {
		pool[i] = strings.Repeat("x", i+1)
	}

	var calls []uint64
	var buf bytes.Buffer
	_, err := Export(context.Background(), NewWords(pool), &buf, ExportOptions{
		ProgressEvery: 4,
		Progress:      func(written uint64) { calls = append(calls, written) },
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(calls) != 2 || calls[0] != 4 || calls[1] != 8 {
		t.Errorf("progress calls = %v, want [4 8]", calls)
	}
}
