package lazy

// Pull is a pull-based, single-use iterator: each call returns the next
// element and true, or the zero value and false once exhausted. It is
// the Go stand-in for an owned iterator source — both SliceIter and a
// Stream's own Next method satisfy this shape.
type Pull[A any] func() (A, bool)

// SliceIter returns a Pull over vs, in order. vs is read in place, not
// copied, so the Pull holds a reference to it.
func SliceIter[A any](vs []A) Pull[A] {
	i := 0
	return func() (A, bool) {
		if i >= len(vs) {
			var zero A
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	}
}

// PushMap lazily produces f(x) for each x drawn from pull, appending
// the results to s. It is equivalent to pushing a producer that pulls
// one element, pushes f(x), and re-enqueues itself with the (mutated)
// remainder — so an arbitrarily long source is never unwound into a
// single deep call stack, and a caller that only drains the first few
// results of s never forces the rest of the source.
//
// PushMap is a free function, not a method, for the same reason as
// PushThunk: A is independent of T.
func PushMap[T any, A any](s *Stream[T], pull Pull[A], f func(A) T) {
	PushThunk(s, pull, func(s *Stream[T], pull Pull[A]) {
		if v, ok := pull(); ok {
			s.Push(f(v))
			PushMap(s, pull, f)
		}
	})
}
