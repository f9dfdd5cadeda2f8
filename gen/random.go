package gen

import "math/rand"

// Random wraps an externally-sampleable type: it delegates entirely to
// a caller-supplied sampler and ignores size, plugging external
// sampleable types into the framework without a size contract. This is
// the framework's escape hatch for user types that have a sensible
// uniform sampler but no natural notion of "magnitude" to scale with
// size.
type Random[T any] struct {
	Value T
}

// RandomOf builds a Generator[Random[T]] from a sampler that draws one
// T from r, ignoring size entirely.
func RandomOf[T any](sample func(r *rand.Rand) T) Generator[Random[T]] {
	return From(func(r *rand.Rand, _ int) Random[T] {
		return Random[T]{Value: sample(rng(r))}
	})
}
