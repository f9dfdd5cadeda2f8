package shrink

import (
	"math"

	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/lazy"
)

// Bool shrinks true to [false]; false has no simpler candidate.
func Bool(v bool) *lazy.Stream[bool] {
	if v {
		return lazy.NewFrom([]bool{false})
	}
	return lazy.New[bool]()
}

// unsignedInt is the set of built-in unsigned integer types the
// piecewise shrink rule is defined over.
type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// piecewise implements the canonical unsigned shrink table:
//
//	0      -> []
//	1      -> [0]
//	2      -> [0, 1]
//	3..8   -> [n-3, n-2, n-1]
//	>= 9   -> 0, then n - n/2, n - n/4, n - n/8, ... (halving steps
//	          toward n), stopping once the divisor would overflow past n.
func piecewise[T unsignedInt](n T) []T {
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []T{0}
	case n == 2:
		return []T{0, 1}
	case n >= 3 && n <= 8:
		return []T{n - 3, n - 2, n - 1}
	default:
		out := []T{0}
		div := T(2)
		for div < n && div >= 2 {
			next := n / div
			out = append(out, n-next)
			div *= 2
		}
		return out
	}
}

// Uint shrinks a uint via the piecewise rule.
func Uint(n uint) *lazy.Stream[uint] { return lazy.NewFrom(piecewise(n)) }

// Uint8 shrinks a uint8 via the piecewise rule.
func Uint8(n uint8) *lazy.Stream[uint8] { return lazy.NewFrom(piecewise(n)) }

// Uint16 shrinks a uint16 via the piecewise rule.
func Uint16(n uint16) *lazy.Stream[uint16] { return lazy.NewFrom(piecewise(n)) }

// Uint64 shrinks a uint64 via the piecewise rule.
func Uint64(n uint64) *lazy.Stream[uint64] { return lazy.NewFrom(piecewise(n)) }

// SmallN shrinks gen.SmallNValue by reusing the unsigned piecewise
// rule against its bounded non-negative integer representation.
func SmallN(n gen.SmallNValue) *lazy.Stream[gen.SmallNValue] {
	candidates := piecewise(uint(n))
	out := make([]gen.SmallNValue, len(candidates))
	for i, c := range candidates {
		out[i] = gen.SmallNValue(c)
	}
	return lazy.NewFrom(out)
}

// Int resolves the signed-integer shrink question by shrinking
// toward 0: apply the unsigned piecewise rule to |n|, then
// re-attaching n's original sign to each magnitude candidate. n itself
// never reappears (the piecewise rule never yields n's own magnitude),
// and 0 is always reachable in a bounded number of steps.
func Int(n int) *lazy.Stream[int] {
	if n == 0 {
		return lazy.New[int]()
	}
	mag := absInt(n)
	candidates := piecewise(mag)
	out := make([]int, len(candidates))
	for i, m := range candidates {
		if n < 0 {
			out[i] = -int(m)
		} else {
			out[i] = int(m)
		}
	}
	return lazy.NewFrom(out)
}

// absInt returns |n| as a uint, handling math.MinInt without overflow.
func absInt(n int) uint {
	if n >= 0 {
		return uint(n)
	}
	if n == math.MinInt {
		return uint(math.MaxInt) + 1
	}
	return uint(-n)
}

// Float64 resolves the floating-point shrink question by shrinking
// toward 0: first 0 itself, then the value with its fractional part
// truncated (if any), then repeated halvings of that. NaN and infinities are left atomic — they have no
// well-ordered "simpler" neighbour.
func Float64(v float64) *lazy.Stream[float64] {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return lazy.New[float64]()
	}
	s := lazy.New[float64]()
	s.Push(0)
	start := v
	if t := math.Trunc(v); t != v {
		s.Push(t)
		start = t
	}
	if start != 0 {
		lazy.PushThunk(s, start, float64HalvingStep)
	}
	return s
}

// float64HalvingStep pushes the next halving candidate and re-enqueues
// itself, stopping once halving stops making progress (underflow to
// zero or, for subnormals, no change at all) — a bounded number of
// steps since each halving strictly decreases the exponent.
func float64HalvingStep(s *lazy.Stream[float64], cur float64) {
	half := cur / 2
	if half == cur {
		return
	}
	s.Push(half)
	if half == 0 {
		return
	}
	lazy.PushThunk(s, half, float64HalvingStep)
}
