package crack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// LoadDictionary reads one term per line, trimmed and lowercased.
// Duplicates are dropped keeping the first occurrence, so the order of
// first appearance is preserved for deterministic shortest-N slicing.
func LoadDictionary(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", filename, err)
	}
	defer f.Close()

	words, err := ParseDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("error reading dictionary %s: %w", filename, err)
	}
	return words, nil
}

// ParseDictionary normalizes and deduplicates dictionary terms.
func ParseDictionary(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ShortestN returns up to n words sorted by length ascending. The sort is
// stable so equal-length words keep their dictionary order. The input
// slice is not modified.
func ShortestN(words []string, n int) []string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// LengthBuckets groups words by length for mixed-length sampling. The
// ranges overlap at their edges on purpose, mirroring how the candidate
// mix was originally tuned.
type LengthBuckets struct {
	VeryShort []string // 2-4 chars
	Short     []string // 4-6 chars
	Medium    []string // 6-8 chars
	Long      []string // 8+ chars
}

// BucketByLength partitions words into LengthBuckets.
func BucketByLength(words []string) LengthBuckets {
	var b LengthBuckets
	for _, w := range words {
		n := len(w)
		if n >= 2 && n <= 4 {
			b.VeryShort = append(b.VeryShort, w)
		}
		if n >= 4 && n <= 6 {
			b.Short = append(b.Short, w)
		}
		if n >= 6 && n <= 8 {
			b.Medium = append(b.Medium, w)
		}
		if n >= 8 {
			b.Long = append(b.Long, w)
		}
	}
	return b
}
