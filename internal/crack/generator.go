package crack

// Generator lazily produces candidate strings. Next returns false when
// the sequence ends; after that it keeps returning false. Generators
// never mutate state outside themselves, so a drained generator can be
// rebuilt and replayed. Exhaustive generators iterate deterministically
// (pool order, nested left to right); sampled generators only promise a
// fixed budget.
type Generator interface {
	Name() string

	// Size is the total number of candidates the generator will produce,
	// saturated at the maximum uint64. Sampled generators return their
	// budget.
	Size() uint64

	Next() (string, bool)
}

// odometer iterates every tuple of n indices in [0, base), rightmost
// position fastest. It is the flat-memory replacement for n nested
// loops over a word pool.
type odometer struct {
	digits []int
	out    []int
	base   int
	done   bool
}

func newOdometer(n, base int) *odometer {
	return &odometer{
		digits: make([]int, n),
		out:    make([]int, n),
		base:   base,
		done:   n <= 0 || base <= 0,
	}
}

// next returns the current tuple and advances. The returned slice is
// only valid until the following call.
func (o *odometer) next() ([]int, bool) {
	if o.done {
		return nil, false
	}

	copy(o.out, o.digits)
	for i := len(o.digits) - 1; ; i-- {
		if i < 0 {
			o.done = true
			break
		}
		o.digits[i]++
		if o.digits[i] < o.base {
			break
		}
		o.digits[i] = 0
	}
	return o.out, true
}

// reverseString reverses s rune-wise.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// satMul multiplies saturating at the maximum uint64.
func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > maxCount/b {
		return maxCount
	}
	return a * b
}

// satAdd adds saturating at the maximum uint64.
func satAdd(a, b uint64) uint64 {
	if a > maxCount-b {
		return maxCount
	}
	return a + b
}
