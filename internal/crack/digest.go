package crack

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// Algorithm is the one-way comparison function candidates are tested with.
// Sum returns the lowercase hex digest of s.
type Algorithm interface {
	Name() string
	Sum(s string) string
}

type sha1Algorithm struct{}

func (sha1Algorithm) Name() string { return "sha1" }

func (sha1Algorithm) Sum(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}

type sha256Algorithm struct{}

func (sha256Algorithm) Name() string { return "sha256" }

func (sha256Algorithm) Sum(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

type blake3Algorithm struct{}

func (blake3Algorithm) Name() string { return "blake3" }

func (blake3Algorithm) Sum(s string) string {
	h := blake3.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

var algorithms = map[string]Algorithm{
	"sha1":   sha1Algorithm{},
	"sha256": sha256Algorithm{},
	"blake3": blake3Algorithm{},
}

// LookupAlgorithm returns the algorithm registered under name.
func LookupAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithms[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (known: %s)", name, strings.Join(AlgorithmNames(), ", "))
}

// AlgorithmNames lists the registered algorithm names in sorted order.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
