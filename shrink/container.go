package shrink

import (
	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/lazy"
)

// Box maps shrink through the inner value, re-boxing each candidate.
func Box[T any](v gen.Box[T], se Func[T]) *lazy.Stream[gen.Box[T]] {
	s := lazy.New[gen.Box[T]]()
	lazy.PushMap(s, lazy.Pull[T](se(v.Value).Next), func(x T) gen.Box[T] {
		return gen.Box[T]{Value: x}
	})
	return s
}

// Option shrinks Some(x) to None first, then to Some(x') for each
// x' in shrink(x). None has nothing to shrink to.
func Option[T any](v gen.Option[T], se Func[T]) *lazy.Stream[gen.Option[T]] {
	s := lazy.New[gen.Option[T]]()
	if !v.Valid {
		return s
	}
	s.Push(gen.None[T]())
	lazy.PushMap(s, lazy.Pull[T](se(v.Value).Next), func(x T) gen.Option[T] {
		return gen.Some(x)
	})
	return s
}

// Cell shrinks a filled slot to the empty slot first, then propagates
// the inner shrink. An already-empty cell has nothing to shrink to.
func Cell[T any](v gen.Cell[T], se Func[T]) *lazy.Stream[gen.Cell[T]] {
	s := lazy.New[gen.Cell[T]]()
	if v.Empty {
		return s
	}
	s.Push(gen.Cell[T]{Empty: true})
	lazy.PushMap(s, lazy.Pull[T](se(v.Value).Next), func(x T) gen.Cell[T] {
		return gen.Cell[T]{Value: x}
	})
	return s
}

// Either shrinks inside the inhabited side only; it never crosses from
// Left to Right or vice versa.
func Either[L, R any](v gen.Either[L, R], sl Func[L], sr Func[R]) *lazy.Stream[gen.Either[L, R]] {
	s := lazy.New[gen.Either[L, R]]()
	if v.IsRight {
		lazy.PushMap(s, lazy.Pull[R](sr(v.Right).Next), func(r R) gen.Either[L, R] {
			return gen.RightOf[L, R](r)
		})
		return s
	}
	lazy.PushMap(s, lazy.Pull[L](sl(v.Left).Next), func(l L) gen.Either[L, R] {
		return gen.LeftOf[L, R](l)
	})
	return s
}

// Result shrinks inside the inhabited side only (Err on the left, Ok
// on the right), delegating to Either.
func Result[T, E any](v gen.Result[T, E], sok Func[T], serr Func[E]) *lazy.Stream[gen.Result[T, E]] {
	return Either[E, T](v, serr, sok)
}
