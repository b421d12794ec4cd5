package crack

import (
	"fmt"
	"strings"
)

// Words emits every dictionary term verbatim, in pool order.
type Words struct {
	pool []string
	i    int
}

// NewWords returns the plain dictionary generator.
func NewWords(pool []string) *Words { return &Words{pool: pool} }

func (w *Words) Name() string { return "words" }

func (w *Words) Size() uint64 { return uint64(len(w.pool)) }

func (w *Words) Next() (string, bool) {
	if w.i >= len(w.pool) {
		return "", false
	}
	s := w.pool[w.i]
	w.i++
	return s, true
}

// suffixSpace is the count of zero-padded numbers of widths 1..maxWidth.
func suffixSpace(maxWidth int) uint64 {
	var total uint64
	for k := 1; k <= maxWidth; k++ {
		p, _ := Pow(10, uint64(k))
		total = satAdd(total, p)
	}
	return total
}

// WordDigits emits each word followed by every zero-padded numeric
// suffix of width 1..maxWidth. All suffixes of one word come before the
// next word: "cat0".."cat9", "cat00".."cat99", then "dog0"...
type WordDigits struct {
	pool     []string
	maxWidth int

	wordIdx int
	width   int
	n       uint64
	limit   uint64
}

// NewWordDigits returns the word+digit-suffix generator. A non-positive
// maxWidth or empty pool yields an empty sequence.
func NewWordDigits(pool []string, maxWidth int) *WordDigits {
	g := &WordDigits{pool: pool, maxWidth: maxWidth, width: 1, limit: 10}
	if maxWidth < 1 {
		g.wordIdx = len(pool)
	}
	return g
}

func (g *WordDigits) Name() string { return fmt.Sprintf("word+digits-%d", g.maxWidth) }

func (g *WordDigits) Size() uint64 {
	if g.maxWidth < 1 {
		return 0
	}
	return satMul(uint64(len(g.pool)), suffixSpace(g.maxWidth))
}

func (g *WordDigits) Next() (string, bool) {
	if g.wordIdx >= len(g.pool) {
		return "", false
	}

	s := g.pool[g.wordIdx] + fmt.Sprintf("%0*d", g.width, g.n)

	g.n++
	if g.n >= g.limit {
		g.n = 0
		g.width++
		g.limit = satMul(g.limit, 10)
		if g.width > g.maxWidth {
			g.width, g.limit = 1, 10
			g.wordIdx++
		}
	}
	return s, true
}

// DigitsWord is the prefix twin of WordDigits: every zero-padded number
// of width 1..maxWidth followed by the word.
type DigitsWord struct {
	inner *WordDigits
}

// NewDigitsWord returns the digit-prefix generator.
func NewDigitsWord(pool []string, maxWidth int) *DigitsWord {
	return &DigitsWord{inner: NewWordDigits(pool, maxWidth)}
}

func (g *DigitsWord) Name() string { return fmt.Sprintf("digits+word-%d", g.inner.maxWidth) }

func (g *DigitsWord) Size() uint64 { return g.inner.Size() }

func (g *DigitsWord) Next() (string, bool) {
	if g.inner.wordIdx >= len(g.inner.pool) {
		return "", false
	}

	s := fmt.Sprintf("%0*d", g.inner.width, g.inner.n) + g.inner.pool[g.inner.wordIdx]

	// Advance through the inner generator, discarding its suffix form.
	g.inner.Next()
	return s, true
}

// DigitsBetween joins nWords-tuples of pool words with a zero-padded
// digit block at each inner word boundary in turn. For each tuple the
// order is boundary-major, then width, then number ascending.
type DigitsBetween struct {
	pool     []string
	nWords   int
	maxWidth int

	odo      *odometer
	parts    []string
	boundary int
	width    int
	n        uint64
	limit    uint64
	done     bool
}

// NewDigitsBetween returns the digits-between-words generator. It is
// empty when nWords < 2, maxWidth < 1, or the pool is empty.
func NewDigitsBetween(pool []string, nWords, maxWidth int) *DigitsBetween {
	g := &DigitsBetween{
		pool:     pool,
		nWords:   nWords,
		maxWidth: maxWidth,
		boundary: 1,
		width:    1,
		limit:    10,
	}
	if nWords < 2 || maxWidth < 1 || len(pool) == 0 {
		g.done = true
		return g
	}

	g.odo = newOdometer(nWords, len(pool))
	g.advanceTuple()
	return g
}

func (g *DigitsBetween) advanceTuple() {
	idx, ok := g.odo.next()
	if !ok {
		g.done = true
		return
	}
	g.parts = g.parts[:0]
	for _, i := range idx {
		g.parts = append(g.parts, g.pool[i])
	}
	g.boundary = 1
	g.width, g.n, g.limit = 1, 0, 10
}

func (g *DigitsBetween) Name() string {
	return fmt.Sprintf("digits-between-%dw", g.nWords)
}

func (g *DigitsBetween) Size() uint64 {
	if g.nWords < 2 || g.maxWidth < 1 {
		return 0
	}
	tuples, _ := Pow(uint64(len(g.pool)), uint64(g.nWords))
	perTuple := satMul(uint64(g.nWords-1), suffixSpace(g.maxWidth))
	return satMul(tuples, perTuple)
}

func (g *DigitsBetween) Next() (string, bool) {
	if g.done {
		return "", false
	}

	var sb strings.Builder
	for i, w := range g.parts {
		if i == g.boundary {
			fmt.Fprintf(&sb, "%0*d", g.width, g.n)
		}
		sb.WriteString(w)
	}
	s := sb.String()

	g.n++
	if g.n >= g.limit {
		g.n = 0
		g.width++
		g.limit = satMul(g.limit, 10)
		if g.width > g.maxWidth {
			g.width, g.limit = 1, 10
			g.boundary++
			if g.boundary >= g.nWords {
				g.advanceTuple()
			}
		}
	}
	return s, true
}
