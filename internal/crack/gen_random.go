package crack

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// SampleConfig tunes the weighted-random composite generator.
type SampleConfig struct {
	// Budget is the fixed number of candidates to emit.
	Budget uint64

	// Seed makes the sample stream reproducible. Callers that want a
	// fresh stream per run pass a time-derived seed.
	Seed int64

	// WordCounts and CountWeights pick how many words each candidate
	// gets. Defaults: 2, 3 or 4 words weighted 30/30/40.
	WordCounts   []int
	CountWeights []int

	// Separators to join with; defaults to concatenation only.
	Separators []string

	// Weights biases word selection, one weight per pool word, e.g.
	// frequencies observed in already-recovered plaintexts. Ignored
	// when its length does not match the pool.
	Weights []int

	// Digits mixes in digit placements (prefix, suffix, between words).
	Digits bool

	// Cases mixes in case renderings of the joined words.
	Cases bool
}

// Sample draws a fixed budget of candidates from the combinatorial
// space at random instead of enumerating it. It is a best-effort probe
// of spaces too large to exhaust and never claims completeness.
type Sample struct {
	pool    []string
	cfg     SampleConfig
	rng     *rand.Rand
	emitted uint64

	countCum  []int
	countTot  int
	weightCum []int
	weightTot int
}

// NewSample returns the weighted-random composite generator. An empty
// pool yields an empty sequence regardless of budget.
func NewSample(pool []string, cfg SampleConfig) *Sample {
	if len(cfg.WordCounts) == 0 || len(cfg.CountWeights) != len(cfg.WordCounts) {
		cfg.WordCounts = []int{2, 3, 4}
		cfg.CountWeights = []int{30, 30, 40}
	}
	if len(cfg.Separators) == 0 {
		cfg.Separators = []string{""}
	}
	if len(pool) == 0 {
		cfg.Budget = 0
	}

	g := &Sample{
		pool: pool,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
	g.countCum, g.countTot = cumulative(cfg.CountWeights)
	if len(cfg.Weights) == len(pool) {
		g.weightCum, g.weightTot = cumulative(cfg.Weights)
	}
	return g
}

func (g *Sample) Name() string { return "random-sample" }

func (g *Sample) Size() uint64 { return g.cfg.Budget }

func (g *Sample) Next() (string, bool) {
	if g.emitted >= g.cfg.Budget {
		return "", false
	}
	g.emitted++

	n := g.cfg.WordCounts[pickWeighted(g.rng, g.countCum, g.countTot)]
	words := make([]string, n)
	for i := range words {
		words[i] = g.pickWord()
	}

	sep := g.cfg.Separators[g.rng.Intn(len(g.cfg.Separators))]

	if g.cfg.Cases {
		switch g.rng.Intn(10) {
		case 8:
			for i, w := range words {
				words[i] = capitalize(w)
			}
		case 9:
			for i, w := range words {
				words[i] = strings.ToUpper(w)
			}
		}
	}

	candidate := strings.Join(words, sep)

	if g.cfg.Digits {
		digits := strconv.Itoa(g.rng.Intn(10000))
		switch g.rng.Intn(10) {
		case 6:
			candidate = digits + candidate
		case 7:
			candidate += digits
		case 8, 9:
			boundary := 1 + g.rng.Intn(n)
			if boundary < n {
				candidate = strings.Join(words[:boundary], sep) + sep + digits + sep + strings.Join(words[boundary:], sep)
			} else {
				candidate += digits
			}
		}
	}

	return candidate, true
}

func (g *Sample) pickWord() string {
	if g.weightCum != nil && g.weightTot > 0 {
		return g.pool[pickWeighted(g.rng, g.weightCum, g.weightTot)]
	}
	return g.pool[g.rng.Intn(len(g.pool))]
}

// cumulative turns weights into prefix sums for weighted picking.
// Non-positive weights count as zero.
func cumulative(weights []int) ([]int, int) {
	cum := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cum[i] = total
	}
	return cum, total
}

// pickWeighted draws an index with probability proportional to its
// weight.
func pickWeighted(rng *rand.Rand, cum []int, total int) int {
	if total <= 0 {
		return rng.Intn(len(cum))
	}
	r := rng.Intn(total) + 1
	return sort.SearchInts(cum, r)
}

// mixedPattern is one bucket-per-position shape for MixedSample.
type mixedPattern [4]*[]string

// MixedSample draws 4-word candidates whose members come from length
// buckets according to a randomly chosen pattern (all very short, short
// plus long extremes, all medium, and so on).
type MixedSample struct {
	patterns []mixedPattern
	budget   uint64
	emitted  uint64
	rng      *rand.Rand
}

// NewMixedSample returns the mixed-length sampled generator. Patterns
// referencing an empty bucket are dropped; if none survive the
// sequence is empty.
func NewMixedSample(b LengthBuckets, budget uint64, seed int64) *MixedSample {
	vs, s, m, l := &b.VeryShort, &b.Short, &b.Medium, &b.Long
	candidates := []mixedPattern{
		{vs, vs, vs, vs},
		{vs, vs, vs, m},
		{vs, vs, m, m},
		{s, s, m, l},
		{vs, m, m, l},
		{l, l, s, s},
		{vs, vs, l, l},
		{m, m, m, m},
	}

	g := &MixedSample{rng: rand.New(rand.NewSource(seed))}
	for _, p := range candidates {
		ok := true
		for _, bucket := range p {
			if len(*bucket) == 0 {
				ok = false
				break
			}
		}
		if ok {
			g.patterns = append(g.patterns, p)
		}
	}
	if len(g.patterns) > 0 {
		g.budget = budget
	}
	return g
}

func (g *MixedSample) Name() string { return "mixed-length-sample" }

func (g *MixedSample) Size() uint64 { return g.budget }

func (g *MixedSample) Next() (string, bool) {
	if g.emitted >= g.budget {
		return "", false
	}
	g.emitted++

	p := g.patterns[g.rng.Intn(len(g.patterns))]
	var sb strings.Builder
	for _, bucket := range p {
		words := *bucket
		sb.WriteString(words[g.rng.Intn(len(words))])
	}
	return sb.String(), true
}

// EdgeSample draws candidates from the long-tail shapes the product
// generators never reach: five or six very short words, four words of
// one length, two long words, digit blocks between three words, and
// four-distinct draws.
type EdgeSample struct {
	pool    []string
	buckets LengthBuckets
	byLen   map[int][]string
	budget  uint64
	emitted uint64
	rng     *rand.Rand
}

// NewEdgeSample returns the edge-case sampled generator.
func NewEdgeSample(pool []string, b LengthBuckets, budget uint64, seed int64) *EdgeSample {
	g := &EdgeSample{
		pool:    pool,
		buckets: b,
		byLen:   make(map[int][]string),
		rng:     rand.New(rand.NewSource(seed)),
	}
	for _, w := range pool {
		g.byLen[len(w)] = append(g.byLen[len(w)], w)
	}
	if len(pool) > 0 {
		g.budget = budget
	}
	return g
}

func (g *EdgeSample) Name() string { return "edge-case-sample" }

func (g *EdgeSample) Size() uint64 { return g.budget }

func (g *EdgeSample) Next() (string, bool) {
	if g.emitted >= g.budget {
		return "", false
	}
	g.emitted++

	// A rolled shape can be infeasible for this pool; reroll. The
	// three-words-with-digits shape always succeeds, so this ends.
	for {
		if s, ok := g.roll(); ok {
			return s, true
		}
	}
}

func (g *EdgeSample) roll() (string, bool) {
	switch g.rng.Intn(6) {
	case 0: // five very short words
		return g.fromBucket(g.buckets.VeryShort, 5)
	case 1: // four words sharing one length
		length := 3 + g.rng.Intn(4)
		return g.fromBucket(g.byLen[length], 4)
	case 2: // two long words
		return g.fromBucket(g.buckets.Long, 2)
	case 3: // three words with two-digit blocks between them
		w := func() string { return g.pool[g.rng.Intn(len(g.pool))] }
		d := func() string { return strconv.Itoa(10 + g.rng.Intn(90)) }
		return w() + d() + w() + d() + w(), true
	case 4: // four distinct words
		if len(g.pool) < 4 {
			return "", false
		}
		perm := g.rng.Perm(len(g.pool))[:4]
		var sb strings.Builder
		for _, i := range perm {
			sb.WriteString(g.pool[i])
		}
		return sb.String(), true
	default: // six very short words
		return g.fromBucket(g.buckets.VeryShort, 6)
	}
}

func (g *EdgeSample) fromBucket(bucket []string, n int) (string, bool) {
	if len(bucket) == 0 {
		return "", false
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(bucket[g.rng.Intn(len(bucket))])
	}
	return sb.String(), true
}
