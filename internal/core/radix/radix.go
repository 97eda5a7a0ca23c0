package radix

import (
	"math"
	"slices"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// Base is the radix of every pass.
const Base = 10

// PassFunc observes the sequence after each counting sort pass.
type PassFunc func(pass domain.PassTrace)

// observer is called after each pass with the bucket start offsets left
// behind by the placement walk.
type observer func(index int, exp int64, starts *[Base]int)

// Max returns the largest value in seq.
func Max(seq []int64) (int64, error) {
	if len(seq) == 0 {
		return 0, domain.ErrEmptyInput
	}
	return maxKey(seq, identity), nil
}

// Digit returns the decimal digit of v selected by exp.
func Digit(v, exp int64) int {
	return int((v / exp) % Base)
}

// Exponent returns Base raised to pos, the divisor isolating digit pos.
func Exponent(pos int) (int64, error) {
	if pos < 0 {
		return 0, domain.ErrInvalidExponent
	}
	exp := int64(1)
	for range pos {
		if exp > math.MaxInt64/Base {
			return 0, domain.ErrExponentOverflow
		}
		exp *= Base
	}
	return exp, nil
}

// Passes returns how many counting sort passes a sequence whose largest
// value is maxVal needs. A max of zero still takes one pass.
func Passes(maxVal int64) int {
	if maxVal < 0 {
		return 0
	}
	n := 1
	for maxVal >= Base {
		maxVal /= Base
		n++
	}
	return n
}

// Validate checks seq is non-empty and holds no negative values.
func Validate(seq []int64) error {
	if len(seq) == 0 {
		return domain.ErrEmptyInput
	}
	return validateKeys(seq, identity)
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted(seq []int64) bool {
	return slices.IsSorted(seq)
}

// CountingPass stably reorders seq by the digit selected by exp.
// An empty sequence is left untouched.
func CountingPass(seq []int64, exp int64) error {
	if !isPowerOfBase(exp) {
		return domain.ErrInvalidExponent
	}
	if err := validateKeys(seq, identity); err != nil {
		return err
	}
	var counts [Base]int
	countingPass(seq, make([]int64, len(seq)), identity, exp, &counts)
	return nil
}

// Sort sorts seq in ascending order.
func Sort(seq []int64) error {
	return SortFunc(seq, nil)
}

// SortFunc sorts seq in ascending order and calls fn after every pass.
// fn may be nil.
func SortFunc(seq []int64, fn PassFunc) error {
	var observe observer
	if fn != nil {
		observe = func(index int, exp int64, starts *[Base]int) {
			fn(domain.PassTrace{
				Index:    index,
				Exponent: exp,
				Counts:   bucketSizes(starts, len(seq)),
				Snapshot: slices.Clone(seq),
			})
		}
	}
	return sortBy(seq, identity, observe)
}

// SortBy stably sorts items by the non-negative key returned for each one.
// Items with equal keys keep their input order.
func SortBy[T any](items []T, key func(T) int64) error {
	return sortBy(items, key, nil)
}

func sortBy[T any](items []T, key func(T) int64, observe observer) error {
	if len(items) == 0 {
		return domain.ErrEmptyInput
	}
	if err := validateKeys(items, key); err != nil {
		return err
	}

	maxVal := maxKey(items, key)
	out := make([]T, len(items))
	var counts [Base]int

	exp := int64(1)
	for index := 0; ; index++ {
		countingPass(items, out, key, exp, &counts)
		if observe != nil {
			observe(index, exp, &counts)
		}
		// Stop once the next exponent exceeds the largest key. Checking before the
		// multiply keeps exp from wrapping for values near math.MaxInt64.
		if exp > maxVal/Base {
			return nil
		}
		exp *= Base
	}
}

// countingPass partitions items by digit into out and copies the result
// back. On return counts holds the start offset of every digit's block.
func countingPass[T any](items, out []T, key func(T) int64, exp int64, counts *[Base]int) {
	*counts = [Base]int{}
	for i := range items {
		counts[Digit(key(items[i]), exp)]++
	}
	for d := 1; d < Base; d++ {
		counts[d] += counts[d-1]
	}
	// Walking backwards while filling each block from its end keeps
	// equal digits in input order.
	for i := len(items) - 1; i >= 0; i-- {
		d := Digit(key(items[i]), exp)
		out[counts[d]-1] = items[i]
		counts[d]--
	}
	copy(items, out)
}

func maxKey[T any](items []T, key func(T) int64) int64 {
	best := key(items[0])
	for i := 1; i < len(items); i++ {
		if k := key(items[i]); k > best {
			best = k
		}
	}
	return best
}

func validateKeys[T any](items []T, key func(T) int64) error {
	for i := range items {
		if k := key(items[i]); k < 0 {
			return &domain.ValueError{Index: i, Value: k, Err: domain.ErrNegativeValue}
		}
	}
	return nil
}

// bucketSizes turns block start offsets into per-digit counts.
func bucketSizes(starts *[Base]int, n int) []int {
	sizes := make([]int, Base)
	for d := 0; d < Base-1; d++ {
		sizes[d] = starts[d+1] - starts[d]
	}
	sizes[Base-1] = n - starts[Base-1]
	return sizes
}

func isPowerOfBase(exp int64) bool {
	if exp < 1 {
		return false
	}
	for exp%Base == 0 {
		exp /= Base
	}
	return exp == 1
}

func identity(v int64) int64 {
	return v
}
