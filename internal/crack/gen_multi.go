package crack

import (
	"fmt"
	"strings"
)

// Join emits every nWords-tuple of pool words once per separator, the
// separator fixed within a candidate: for each separator a full
// left-to-right product pass over the pool.
type Join struct {
	pool   []string
	nWords int
	seps   []string

	sepIdx int
	odo    *odometer
	done   bool
}

// NewJoin returns the separator-joined product generator. An empty seps
// slice means concatenation only. Empty pool or nWords < 1 yields an
// empty sequence.
func NewJoin(pool []string, nWords int, seps []string) *Join {
	if len(seps) == 0 {
		seps = []string{""}
	}
	g := &Join{pool: pool, nWords: nWords, seps: seps}
	if nWords < 1 || len(pool) == 0 {
		g.done = true
		return g
	}
	g.odo = newOdometer(nWords, len(pool))
	return g
}

func (g *Join) Name() string { return fmt.Sprintf("join-%dw", g.nWords) }

func (g *Join) Size() uint64 {
	if g.done && g.odo == nil {
		return 0
	}
	tuples, _ := Pow(uint64(len(g.pool)), uint64(g.nWords))
	return satMul(tuples, uint64(len(g.seps)))
}

func (g *Join) Next() (string, bool) {
	if g.done {
		return "", false
	}

	idx, ok := g.odo.next()
	if !ok {
		g.sepIdx++
		if g.sepIdx >= len(g.seps) {
			g.done = true
			return "", false
		}
		g.odo = newOdometer(g.nWords, len(g.pool))
		idx, _ = g.odo.next()
	}

	sep := g.seps[g.sepIdx]
	var sb strings.Builder
	for i, w := range idx {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(g.pool[w])
	}
	return sb.String(), true
}

// caseTransforms are the per-word renderings tried by CaseJoin.
var caseTransforms = []func(string) string{
	func(s string) string { return s },
	capitalize,
	strings.ToUpper,
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CaseJoin concatenates nWords-tuples of pool words with every
// combination of per-word case renderings (as-is, Capitalized, UPPER).
// Word tuples advance in pool order; for each tuple all transform
// combinations are emitted before the next tuple.
type CaseJoin struct {
	pool   []string
	nWords int

	wordOdo  *odometer
	parts    []string
	transOdo *odometer
	done     bool
}

// NewCaseJoin returns the case-transform product generator.
func NewCaseJoin(pool []string, nWords int) *CaseJoin {
	g := &CaseJoin{pool: pool, nWords: nWords}
	if nWords < 1 || len(pool) == 0 {
		g.done = true
		return g
	}
	g.wordOdo = newOdometer(nWords, len(pool))
	g.advanceTuple()
	return g
}

func (g *CaseJoin) advanceTuple() {
	idx, ok := g.wordOdo.next()
	if !ok {
		g.done = true
		return
	}
	g.parts = g.parts[:0]
	for _, i := range idx {
		g.parts = append(g.parts, g.pool[i])
	}
	g.transOdo = newOdometer(g.nWords, len(caseTransforms))
}

func (g *CaseJoin) Name() string { return fmt.Sprintf("case-join-%dw", g.nWords) }

func (g *CaseJoin) Size() uint64 {
	if g.nWords < 1 || len(g.pool) == 0 {
		return 0
	}
	tuples, _ := Pow(uint64(len(g.pool)), uint64(g.nWords))
	trans, _ := Pow(uint64(len(caseTransforms)), uint64(g.nWords))
	return satMul(tuples, trans)
}

func (g *CaseJoin) Next() (string, bool) {
	for {
		if g.done {
			return "", false
		}

		trans, ok := g.transOdo.next()
		if !ok {
			g.advanceTuple()
			continue
		}

		var sb strings.Builder
		for i, w := range g.parts {
			sb.WriteString(caseTransforms[trans[i]](w))
		}
		return sb.String(), true
	}
}

// NoRepeat emits every ordered selection of nWords distinct pool words,
// concatenated. A pool smaller than nWords yields an empty sequence.
type NoRepeat struct {
	pool   []string
	nWords int
	odo    *odometer
}

// NewNoRepeat returns the exhaustive no-repeat permutation generator.
func NewNoRepeat(pool []string, nWords int) *NoRepeat {
	g := &NoRepeat{pool: pool, nWords: nWords}
	if nWords < 1 || len(pool) < nWords {
		g.odo = &odometer{done: true}
		return g
	}
	g.odo = newOdometer(nWords, len(pool))
	return g
}

func (g *NoRepeat) Name() string { return fmt.Sprintf("no-repeat-%dw", g.nWords) }

func (g *NoRepeat) Size() uint64 {
	if g.nWords < 1 || len(g.pool) < g.nWords {
		return 0
	}
	size, _ := FallingFactorial(uint64(len(g.pool)), uint64(g.nWords))
	return size
}

func (g *NoRepeat) Next() (string, bool) {
	for {
		idx, ok := g.odo.next()
		if !ok {
			return "", false
		}
		if hasDuplicate(idx) {
			continue
		}

		var sb strings.Builder
		for _, i := range idx {
			sb.WriteString(g.pool[i])
		}
		return sb.String(), true
	}
}

func hasDuplicate(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		for j := 0; j < i; j++ {
			if idx[i] == idx[j] {
				return true
			}
		}
	}
	return false
}
