// Package analyze mines already-recovered plaintexts for structure:
// which dictionary words appear, how many words a plaintext tends to
// contain, and how long plaintexts run. The output steers pattern-guided
// and weighted sampling strategies toward the shapes that already paid
// off.
package analyze

import (
	"sort"
	"unicode"
)

// maxSegmentWord caps how long a prefix the segmenter tries to match.
const maxSegmentWord = 20

// Stats aggregates what was learned from a batch of plaintexts.
type Stats struct {
	// WordFreq counts dictionary word occurrences across plaintexts.
	WordFreq map[string]int

	// WordsPerPlain distributes plaintexts by how many dictionary words
	// the segmenter found in them.
	WordsPerPlain map[int]int

	// Lengths distributes plaintexts by character length.
	Lengths map[int]int

	// Analyzed is how many plaintexts were processed.
	Analyzed int
}

// Plaintexts analyzes every recovered plaintext against the dictionary.
func Plaintexts(recovered map[string]string, dictionary []string) *Stats {
	words := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		words[w] = struct{}{}
	}

	stats := &Stats{
		WordFreq:      make(map[string]int),
		WordsPerPlain: make(map[int]int),
		Lengths:       make(map[int]int),
	}

	for _, plain := range recovered {
		stats.Analyzed++
		stats.Lengths[len(plain)]++

		segments := Segment(plain, words)
		if len(segments) == 0 {
			continue
		}
		stats.WordsPerPlain[len(segments)]++
		for _, w := range segments {
			stats.WordFreq[w]++
		}
	}
	return stats
}

// Segment splits a plaintext into dictionary words by greedy
// longest-prefix matching. Digit runs are skipped as one block and
// unmatchable bytes one at a time. Greedy longest match is a heuristic
// and can mis-segment ("bookshop" may hide "books"+"hop" behind a
// longer prefix); callers only use the result to weight sampling, so a
// wrong split costs accuracy, not correctness.
func Segment(plain string, words map[string]struct{}) []string {
	var found []string
	remaining := plain

	for remaining != "" {
		matched := false
		longest := len(remaining)
		if longest > maxSegmentWord {
			longest = maxSegmentWord
		}

		for l := longest; l > 0; l-- {
			prefix := remaining[:l]
			if _, ok := words[prefix]; ok {
				found = append(found, prefix)
				remaining = remaining[l:]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if unicode.IsDigit(rune(remaining[0])) {
			i := 0
			for i < len(remaining) && remaining[i] >= '0' && remaining[i] <= '9' {
				i++
			}
			remaining = remaining[i:]
		} else {
			remaining = remaining[1:]
		}
	}
	return found
}

// TopWords returns up to n words by descending frequency; ties break
// alphabetically so the result is deterministic.
func (s *Stats) TopWords(n int) []string {
	words := make([]string, 0, len(s.WordFreq))
	for w := range s.WordFreq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		fi, fj := s.WordFreq[words[i]], s.WordFreq[words[j]]
		if fi != fj {
			return fi > fj
		}
		return words[i] < words[j]
	})

	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}

// CommonWordCount is the most frequent words-per-plaintext value, 0
// when nothing was segmented. Ties break toward the smaller count.
func (s *Stats) CommonWordCount() int {
	best, bestFreq := 0, 0
	for count, freq := range s.WordsPerPlain {
		if freq > bestFreq || (freq == bestFreq && best != 0 && count < best) {
			best, bestFreq = count, freq
		}
	}
	return best
}

// Weights maps observed frequencies onto pool, one weight per word.
// Unseen words weigh 1 so they stay reachable.
func (s *Stats) Weights(pool []string) []int {
	weights := make([]int, len(pool))
	for i, w := range pool {
		weights[i] = 1
		if f, ok := s.WordFreq[w]; ok && f > 0 {
			weights[i] = f
		}
	}
	return weights
}
