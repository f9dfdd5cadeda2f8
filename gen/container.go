package gen

import "math/rand"

// Box is the owned-box instance: a single boxed T, generated by
// generating the inner value and wrapping it.
type Box[T any] struct {
	Value T
}

// BoxOf generates a Box[T] by boxing a freshly generated T.
func BoxOf[T any](elem Generator[T]) Generator[Box[T]] {
	return From(func(r *rand.Rand, size int) Box[T] {
		return Box[T]{Value: elem.Generate(r, size)}
	})
}

// Option is the option/maybe instance: either Valid with a Value, or
// not. Go has no built-in sum type, so Valid is the discriminant.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None constructs an absent Option.
func None[T any]() Option[T] { var z T; return Option[T]{Value: z} }

// OptionOf generates an Option[T]: with probability 1/2 Some(generated
// value), otherwise None.
func OptionOf[T any](elem Generator[T]) Generator[Option[T]] {
	return From(func(r *rand.Rand, size int) Option[T] {
		g := rng(r)
		if g.Intn(2) == 0 {
			return None[T]()
		}
		return Some(elem.Generate(g, size))
	})
}

// Either is the two-sided sum instance backing both Result and Either:
// IsRight selects which side is inhabited.
type Either[L, R any] struct {
	IsRight bool
	Left    L
	Right   R
}

// LeftOf constructs a left-inhabited Either.
func LeftOf[L, R any](v L) Either[L, R] { return Either[L, R]{Left: v} }

// RightOf constructs a right-inhabited Either.
func RightOf[L, R any](v R) Either[L, R] { return Either[L, R]{IsRight: true, Right: v} }

// EitherOf generates an Either[L,R] by coin-flipping between the two
// sides and generating the inhabited one.
func EitherOf[L, R any](gl Generator[L], gr Generator[R]) Generator[Either[L, R]] {
	return From(func(r *rand.Rand, size int) Either[L, R] {
		g := rng(r)
		if g.Intn(2) == 0 {
			return LeftOf[L, R](gl.Generate(g, size))
		}
		return RightOf[L, R](gr.Generate(g, size))
	})
}

// Result is Either with the conventional orientation: Err on the left,
// Ok on the right.
type Result[T, E any] = Either[E, T]

// Ok constructs a successful Result.
func Ok[T, E any](v T) Result[T, E] { return RightOf[E, T](v) }

// Err constructs a failed Result.
func Err[T, E any](e E) Result[T, E] { return LeftOf[E, T](e) }

// ResultOf generates a Result[T,E] by coin-flipping between Ok and Err.
func ResultOf[T, E any](gok Generator[T], gerr Generator[E]) Generator[Result[T, E]] {
	return EitherOf[E, T](gerr, gok)
}

// Cell is the optional-slot wrapper: either Empty, or holding a Value.
// It mirrors Option but is kept distinct to match its own Shrink-only
// instance: emit the empty slot first, then propagate the inner
// shrink.
type Cell[T any] struct {
	Empty bool
	Value T
}

// CellOf generates a Cell[T]: with probability 1/2 a filled cell,
// otherwise an empty one.
func CellOf[T any](elem Generator[T]) Generator[Cell[T]] {
	return From(func(r *rand.Rand, size int) Cell[T] {
		g := rng(r)
		if g.Intn(2) == 0 {
			return Cell[T]{Empty: true}
		}
		return Cell[T]{Value: elem.Generate(g, size)}
	})
}

// Slice generates a []T of length SmallN(size), each element generated
// at the same size.
func Slice[T any](elem Generator[T]) Generator[[]T] {
	return From(func(r *rand.Rand, size int) []T {
		g := rng(r)
		n := int(SmallN(g, size))
		out := make([]T, n)
		for i := range out {
			out[i] = elem.Generate(g, size)
		}
		return out
	})
}

// NonEmptySlice generates a []T of length 1+SmallN(size).
func NonEmptySlice[T any](elem Generator[T]) Generator[[]T] {
	return From(func(r *rand.Rand, size int) []T {
		g := rng(r)
		n := 1 + int(SmallN(g, size))
		out := make([]T, n)
		for i := range out {
			out[i] = elem.Generate(g, size)
		}
		return out
	})
}

// Pair is the key/value element type used by Map's derived
// pair-sequence view (see the shrink package's Map shrink rule).
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map generates a map[K]V with SmallN(size) insertions; later keys
// overwrite earlier ones, so the realised size may be smaller than the
// number of insertions attempted.
func Map[K comparable, V any](gk Generator[K], gv Generator[V]) Generator[map[K]V] {
	return From(func(r *rand.Rand, size int) map[K]V {
		g := rng(r)
		n := int(SmallN(g, size))
		out := make(map[K]V, n)
		for i := 0; i < n; i++ {
			out[gk.Generate(g, size)] = gv.Generate(g, size)
		}
		return out
	})
}
