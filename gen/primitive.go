package gen

import "math/rand"

// Unit generates the sole value of struct{}. It exists so composite
// generators (Option[struct{}], Slice[struct{}], ...) have a concrete
// "no payload" element type to instantiate against, the atomic ()
// instance.
func Unit() Generator[struct{}] {
	return From(func(_ *rand.Rand, _ int) struct{} { return struct{}{} })
}

// Bool generates booleans uniformly. Size is ignored.
func Bool() Generator[bool] {
	return From(func(r *rand.Rand, _ int) bool {
		return rng(r).Intn(2) == 0
	})
}

// Rune generates printable ASCII characters uniformly. Size is
// ignored; char is an atomic leaf with no internal structure to shrink.
func Rune() Generator[rune] {
	return From(func(r *rand.Rand, _ int) rune {
		return rune(32 + rng(r).Intn(95)) // ' '..'~'
	})
}

// Float64 generates float64 values uniformly in [-1e6, 1e6]. Size is
// ignored: primitive float instances ignore size and sample uniformly.
func Float64() Generator[float64] {
	return From(func(r *rand.Rand, _ int) float64 {
		g := rng(r)
		return (g.Float64()*2 - 1) * 1e6
	})
}

// Int8 generates int8 values uniformly over the full range. Size is
// ignored.
func Int8() Generator[int8] {
	return From(func(r *rand.Rand, _ int) int8 {
		return int8(rng(r).Intn(256) - 128)
	})
}

// Int generates int values uniformly. Size is ignored; the
// range defaults to [-100, 100] but can be widened with IntRange for
// callers that want an explicit, size-independent bound (an additive
// tuning knob, not part of the core contract).
func Int() Generator[int] {
	return IntRange(-100, 100)
}

// IntRange generates int values uniformly in [lo, hi] (inclusive).
func IntRange(lo, hi int) Generator[int] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(r *rand.Rand, _ int) int {
		return lo + rng(r).Intn(hi-lo+1)
	})
}

// Uint8 generates uint8 values uniformly over the full range.
func Uint8() Generator[uint8] {
	return From(func(r *rand.Rand, _ int) uint8 {
		return uint8(rng(r).Intn(256))
	})
}

// Uint generates uint values uniformly in [0, 100]. Size is ignored;
// use UintRange for an explicit bound.
func Uint() Generator[uint] {
	return UintRange(0, 100)
}

// UintRange generates uint values uniformly in [lo, hi] (inclusive).
func UintRange(lo, hi uint) Generator[uint] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(r *rand.Rand, _ int) uint {
		span := hi - lo
		if span == 0 {
			return lo
		}
		return lo + uint(rng(r).Int63n(int64(span)+1))
	})
}

// Uint64 generates uint64 values uniformly in [0, 100].
func Uint64() Generator[uint64] {
	return Uint64Range(0, 100)
}

// Uint64Range generates uint64 values uniformly in [lo, hi] (inclusive).
func Uint64Range(lo, hi uint64) Generator[uint64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(r *rand.Rand, _ int) uint64 {
		span := hi - lo
		if span == 0 {
			return lo
		}
		if span >= 1<<63-1 {
			g := rng(r)
			for {
				if x := g.Uint64(); x <= span {
					return lo + x
				}
			}
		}
		return lo + uint64(rng(r).Int63n(int64(span)+1))
	})
}
