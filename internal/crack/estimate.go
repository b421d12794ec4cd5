package crack

import (
	"fmt"
	"math"
	"time"
)

// maxCount is the saturation value for combination counts.
const maxCount = ^uint64(0)

// Pow computes base**exp, saturating at the maximum uint64. exact is
// false when the true value overflowed.
func Pow(base, exp uint64) (result uint64, exact bool) {
	result, exact = 1, true
	for i := uint64(0); i < exp; i++ {
		if base != 0 && result > maxCount/base {
			return maxCount, false
		}
		result *= base
	}
	return result, exact
}

// FallingFactorial computes n*(n-1)*...*(n-k+1), the count of ordered
// no-repeat selections, saturating at the maximum uint64. k > n gives 0.
func FallingFactorial(n, k uint64) (result uint64, exact bool) {
	if k > n {
		return 0, true
	}
	result, exact = 1, true
	for i := uint64(0); i < k; i++ {
		f := n - i
		if f != 0 && result > maxCount/f {
			return maxCount, false
		}
		result *= f
	}
	return result, exact
}

// FormatBytes renders a byte count human-readably.
func FormatBytes(n float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if n < 1024 {
			return fmt.Sprintf("%.2f %s", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.2f PB", n)
}

// EstimateFileSize guesses the on-disk size of a candidate export,
// one candidate plus newline per line.
func EstimateFileSize(candidates uint64, avgLength int) float64 {
	return float64(candidates) * float64(avgLength+1)
}

// EstimateHashTime is how long an external tool hashing at hashRate
// candidates per second needs for the full stream.
func EstimateHashTime(candidates uint64, hashRate float64) time.Duration {
	if hashRate <= 0 {
		return 0
	}
	seconds := float64(candidates) / hashRate
	if seconds > math.MaxInt64/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}
