package shrink

import "github.com/lucaskalb/qcgo/lazy"

// sliceIndexEnv carries one in-flight removal/substitution site:
// the index under consideration and the slice it applies to. It is
// moved into a thunk by value, per lazy.PushThunk's contract.
type sliceIndexEnv[T any] struct {
	index int
	v     []T
}

// Slice implements the four-stage sequence shrink order:
//
//  1. the empty sequence
//  2. if len(v) > 2: the second half, then the first half (bisection)
//  3. for each index i in increasing order: v with element i removed
//  4. for each index i in increasing order: for each candidate in
//     shrink(v[i]), v with element i replaced by that candidate
//
// Stages 3 and 4 are built from nested producers (one thunk per index,
// each of which lazily maps over that element's own shrink stream), so
// pulling only the first few candidates never materialises the full
// removal/substitution grid — only as many index-thunks and element
// shrinks as were actually consumed.
func Slice[T any](v []T, se Func[T]) *lazy.Stream[[]T] {
	s := lazy.New[[]T]()
	if len(v) == 0 {
		return s
	}
	s.Push([]T{})

	lazy.PushThunk(s, v, func(s *lazy.Stream[[]T], v []T) {
		if n := len(v); n > 2 {
			mid := n / 2
			s.Push(append([]T(nil), v[mid:]...))
			s.Push(append([]T(nil), v[:mid]...))
		}

		lazy.PushThunk(s, v, func(s *lazy.Stream[[]T], v []T) {
			for i := 0; i < len(v); i++ {
				lazy.PushThunk(s, sliceIndexEnv[T]{index: i, v: v}, func(s *lazy.Stream[[]T], env sliceIndexEnv[T]) {
					i, v := env.index, env.v

					removed := make([]T, 0, len(v)-1)
					removed = append(removed, v[:i]...)
					removed = append(removed, v[i+1:]...)
					s.Push(removed)

					lazy.PushMap(s, lazy.Pull[T](se(v[i]).Next), func(selt T) []T {
						cand := append([]T(nil), v...)
						cand[i] = selt
						return cand
					})
				})
			}
		})
	})

	return s
}

// NonEmptySlice applies Slice's rule but filters out the empty-sequence
// candidate, preserving the non-emptiness invariant the generator
// established.
func NonEmptySlice[T any](v []T, se Func[T]) *lazy.Stream[[]T] {
	inner := Slice(v, se)
	out := lazy.New[[]T]()
	lazy.PushThunk(out, inner, nonEmptyFilterStep[T])
	return out
}

func nonEmptyFilterStep[T any](s *lazy.Stream[[]T], inner *lazy.Stream[[]T]) {
	for {
		v, ok := inner.Next()
		if !ok {
			return
		}
		if len(v) > 0 {
			s.Push(v)
			lazy.PushThunk(s, inner, nonEmptyFilterStep[T])
			return
		}
	}
}
