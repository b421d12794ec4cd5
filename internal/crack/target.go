package crack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TargetSet maps each digest to the identifiers that share it, plus the
// reverse identifier -> digest view. It is built once from the digest list
// and never mutated afterwards. Several identifiers sharing one digest is
// expected (duplicate plaintexts across owners), not an error.
type TargetSet struct {
	byDigest map[string][]string
	byID     map[string]string
}

// LoadTargets reads a digest list file of whitespace-separated
// "identifier digest-hex" lines. Malformed and empty lines are skipped.
func LoadTargets(filename string) (*TargetSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open digest list %s: %w", filename, err)
	}
	defer f.Close()

	ts, err := ParseTargets(f)
	if err != nil {
		return nil, fmt.Errorf("error reading digest list %s: %w", filename, err)
	}
	return ts, nil
}

// ParseTargets builds a TargetSet from digest list records. Digest hex is
// lowercased so lookups are case-insensitive on input.
func ParseTargets(r io.Reader) (*TargetSet, error) {
	ts := &TargetSet{
		byDigest: make(map[string][]string),
		byID:     make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			continue // Skip malformed lines
		}

		id, digest := parts[0], strings.ToLower(parts[1])
		ts.byID[id] = digest
		ts.byDigest[digest] = append(ts.byDigest[digest], id)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Identifiers returns the identifiers that share digest.
func (ts *TargetSet) Identifiers(digest string) []string {
	return ts.byDigest[digest]
}

// Digest returns the digest owned by id and whether id is known.
func (ts *TargetSet) Digest(id string) (string, bool) {
	d, ok := ts.byID[id]
	return d, ok
}

// IDs returns every identifier in the set.
func (ts *TargetSet) IDs() []string {
	ids := make([]string, 0, len(ts.byID))
	for id := range ts.byID {
		ids = append(ids, id)
	}
	return ids
}

// Len is the number of unique digests.
func (ts *TargetSet) Len() int { return len(ts.byDigest) }

// Owners is the number of identifiers.
func (ts *TargetSet) Owners() int { return len(ts.byID) }

// DigestSet returns a fresh mutable set of all digests, used to seed the
// remaining-targets set of a run.
func (ts *TargetSet) DigestSet() map[string]struct{} {
	set := make(map[string]struct{}, len(ts.byDigest))
	for d := range ts.byDigest {
		set[d] = struct{}{}
	}
	return set
}
