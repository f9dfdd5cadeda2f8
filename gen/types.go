// Package gen provides the Generate contract for property-based
// testing and its built-in instances: primitives, tuples, options,
// results/eithers, owned boxes, variable-length sequences, maps, and
// strings (ASCII and Unicode).
package gen

import (
	"math"
	"math/rand"
)

// Generator is the per-type Generate contract: produce a random value
// of T, parameterised by size. Generate must be pure relative to r (no
// I/O beyond consuming randomness) and must never fail.
type Generator[T any] interface {
	Generate(r *rand.Rand, size int) T
}

// GenFunc adapts a plain function to the Generator interface.
type GenFunc[T any] func(r *rand.Rand, size int) T

// Generate implements Generator.
func (f GenFunc[T]) Generate(r *rand.Rand, size int) T {
	return f(r, size)
}

// From wraps a function as a Generator. This is the usual way to build
// a custom generator without declaring a named type.
func From[T any](fn func(r *rand.Rand, size int) T) Generator[T] {
	return GenFunc[T](fn)
}

// SmallN draws the canonical small, non-negative magnitude used for
// sequence/string lengths and the bounded-integer wrapper: an
// Exp(1)-distributed factor f, scaled by size and clamped to 16*size.
// Most draws are small; occasional large draws exercise
// length-dependent behaviour without pathological outliers.
func SmallN(r *rand.Rand, size int) uint {
	if size <= 0 {
		return 0
	}
	f := rand.ExpFloat64()
	if r != nil {
		f = r.ExpFloat64()
	}
	n := uint(math.Floor(f * float64(size)))
	if cap := uint(16 * size); n > cap {
		return cap
	}
	return n
}

// rng returns r if non-nil, otherwise a freshly seeded generator. Every
// built-in Generator tolerates a nil *rand.Rand so ad-hoc callers (and
// tests) can invoke Generate(nil, size) without ceremony.
func rng(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
