package crack

import "fmt"

// Reversed emits each pool word character-reversed, in pool order.
type Reversed struct {
	pool []string
	i    int
}

// NewReversed returns the reversed-word generator.
func NewReversed(pool []string) *Reversed { return &Reversed{pool: pool} }

func (g *Reversed) Name() string { return "reversed" }

func (g *Reversed) Size() uint64 { return uint64(len(g.pool)) }

func (g *Reversed) Next() (string, bool) {
	if g.i >= len(g.pool) {
		return "", false
	}
	s := reverseString(g.pool[g.i])
	g.i++
	return s, true
}

// ReversedPairs emits, for every ordered word pair, the concatenation
// with the first member reversed and then with the second member
// reversed: reverse(w1)+w2, w1+reverse(w2).
type ReversedPairs struct {
	pool []string
	odo  *odometer
	pair [2]string
	emit int
	done bool
}

// NewReversedPairs returns the reversed-pair generator.
func NewReversedPairs(pool []string) *ReversedPairs {
	g := &ReversedPairs{pool: pool}
	if len(pool) == 0 {
		g.done = true
		return g
	}
	g.odo = newOdometer(2, len(pool))
	g.advance()
	return g
}

func (g *ReversedPairs) advance() {
	idx, ok := g.odo.next()
	if !ok {
		g.done = true
		return
	}
	g.pair[0], g.pair[1] = g.pool[idx[0]], g.pool[idx[1]]
	g.emit = 0
}

func (g *ReversedPairs) Name() string { return "reversed-pairs" }

func (g *ReversedPairs) Size() uint64 {
	pairs := satMul(uint64(len(g.pool)), uint64(len(g.pool)))
	return satMul(pairs, 2)
}

func (g *ReversedPairs) Next() (string, bool) {
	if g.done {
		return "", false
	}

	var s string
	if g.emit == 0 {
		s = reverseString(g.pair[0]) + g.pair[1]
		g.emit = 1
	} else {
		s = g.pair[0] + reverseString(g.pair[1])
		g.advance()
	}
	return s, true
}

// Prefixes truncates every pool word to prefixLen characters (words
// already that short stay whole), deduplicates the truncated pool
// first-occurrence-wins, and emits the nWords-wide concatenation
// product of the result.
type Prefixes struct {
	prefixLen int
	nWords    int
	inner     *Join
}

// NewPrefixes returns the partial-word generator. Non-positive
// prefixLen or nWords yields an empty sequence.
func NewPrefixes(pool []string, prefixLen, nWords int) *Prefixes {
	g := &Prefixes{prefixLen: prefixLen, nWords: nWords}

	var truncated []string
	if prefixLen > 0 && nWords > 0 {
		seen := make(map[string]struct{})
		for _, w := range pool {
			t := w
			if len(t) > prefixLen {
				t = t[:prefixLen]
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			truncated = append(truncated, t)
		}
	}

	g.inner = NewJoin(truncated, nWords, nil)
	return g
}

func (g *Prefixes) Name() string { return fmt.Sprintf("prefix%d-%dw", g.prefixLen, g.nWords) }

func (g *Prefixes) Size() uint64 { return g.inner.Size() }

func (g *Prefixes) Next() (string, bool) { return g.inner.Next() }
