package lazy

// thunk is a producer that carries its environment by value. Go has no
// move semantics, but env is never shared: PushThunk's caller hands
// over a value it owns, and the thunk is the only thing ever holding a
// reference to it once queued — producers carry their environment by
// value, not by reference, with no borrow checker to enforce it.
type thunk[T any, E any] struct {
	env E
	f   func(s *Stream[T], env E)
}

func (t thunk[T, E]) run(s *Stream[T]) {
	t.f(s, t.env)
}

// PushThunk appends a producer to s's pending queue. When eventually
// run, f receives mutable access to s and the moved-in env; f may
// append any mix of values (Push) and further producers (PushThunk,
// PushMap) to s.
//
// PushThunk is a free function rather than a method because Go does
// not allow a method to introduce a type parameter beyond those of its
// receiver — env's type E is independent of the stream's element type
// T, so there is no method-shaped encoding of this operation.
func PushThunk[T any, E any](s *Stream[T], env E, f func(s *Stream[T], env E)) {
	s.pending = append(s.pending, thunk[T, E]{env: env, f: f})
}
