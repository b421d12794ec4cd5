package crack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	// Scanner buffer sizes for reading input files
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// LoadCache reads a result cache file of "digest-hex plaintext" lines.
// Only the first space is a separator; the plaintext may itself contain
// spaces. An absent file is an empty cache, not an error.
func LoadCache(filename string) (map[string]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open cache %s: %w", filename, err)
	}
	defer f.Close()

	cache, err := ParseCache(f)
	if err != nil {
		return nil, fmt.Errorf("error reading cache %s: %w", filename, err)
	}
	return cache, nil
}

// ParseCache parses cache records, skipping malformed lines.
func ParseCache(r io.Reader) (map[string]string, error) {
	cache := make(map[string]string)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue // Skip malformed lines
		}
		cache[strings.ToLower(parts[0])] = parts[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cache, nil
}

// SaveCache writes the cache sorted by digest so repeated saves of the
// same content are byte-identical.
func SaveCache(filename string, cache map[string]string) error {
	digests := make([]string, 0, len(cache))
	for d := range cache {
		digests = append(digests, d)
	}
	sort.Strings(digests)

	var sb strings.Builder
	for _, d := range digests {
		sb.WriteString(d)
		sb.WriteByte(' ')
		sb.WriteString(cache[d])
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", filename, err)
	}
	return nil
}

// MergeCache copies entries of src into dst without overwriting: the
// first plaintext recorded for a digest wins. Returns the number of
// entries added.
func MergeCache(dst, src map[string]string) int {
	added := 0
	for d, plain := range src {
		if _, ok := dst[d]; ok {
			continue
		}
		dst[d] = plain
		added++
	}
	return added
}
