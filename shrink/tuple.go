package shrink

import (
	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/lazy"
)

// Tuple2 shrinks coordinate-wise: first every shrink of First with
// Second held fixed, then every shrink of Second with First held
// fixed. Sub-streams are concatenated in coordinate order via
// lazy.PushMap, so neither sub-stream is materialised eagerly.
func Tuple2[A, B any](v gen.Tuple2[A, B], sa Func[A], sb Func[B]) *lazy.Stream[gen.Tuple2[A, B]] {
	s := lazy.New[gen.Tuple2[A, B]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple2[A, B] {
		return gen.Tuple2[A, B]{First: a, Second: v.Second}
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple2[A, B] {
		return gen.Tuple2[A, B]{First: v.First, Second: b}
	})
	return s
}

// Tuple3 shrinks coordinate-wise across three coordinates.
func Tuple3[A, B, C any](v gen.Tuple3[A, B, C], sa Func[A], sb Func[B], sc Func[C]) *lazy.Stream[gen.Tuple3[A, B, C]] {
	s := lazy.New[gen.Tuple3[A, B, C]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple3[A, B, C] {
		return gen.Tuple3[A, B, C]{First: a, Second: v.Second, Third: v.Third}
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple3[A, B, C] {
		return gen.Tuple3[A, B, C]{First: v.First, Second: b, Third: v.Third}
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple3[A, B, C] {
		return gen.Tuple3[A, B, C]{First: v.First, Second: v.Second, Third: c}
	})
	return s
}

// Tuple4 shrinks coordinate-wise across four coordinates.
func Tuple4[A, B, C, D any](v gen.Tuple4[A, B, C, D], sa Func[A], sb Func[B], sc Func[C], sd Func[D]) *lazy.Stream[gen.Tuple4[A, B, C, D]] {
	s := lazy.New[gen.Tuple4[A, B, C, D]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple4[A, B, C, D] {
		return gen.Tuple4[A, B, C, D]{First: a, Second: v.Second, Third: v.Third, Fourth: v.Fourth}
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple4[A, B, C, D] {
		return gen.Tuple4[A, B, C, D]{First: v.First, Second: b, Third: v.Third, Fourth: v.Fourth}
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple4[A, B, C, D] {
		return gen.Tuple4[A, B, C, D]{First: v.First, Second: v.Second, Third: c, Fourth: v.Fourth}
	})
	lazy.PushMap(s, lazy.Pull[D](sd(v.Fourth).Next), func(d D) gen.Tuple4[A, B, C, D] {
		return gen.Tuple4[A, B, C, D]{First: v.First, Second: v.Second, Third: v.Third, Fourth: d}
	})
	return s
}

// Tuple5 shrinks coordinate-wise across five coordinates.
func Tuple5[A, B, C, D, E any](v gen.Tuple5[A, B, C, D, E], sa Func[A], sb Func[B], sc Func[C], sd Func[D], se Func[E]) *lazy.Stream[gen.Tuple5[A, B, C, D, E]] {
	s := lazy.New[gen.Tuple5[A, B, C, D, E]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple5[A, B, C, D, E] {
		return gen.Tuple5[A, B, C, D, E]{First: a, Second: v.Second, Third: v.Third, Fourth: v.Fourth, Fifth: v.Fifth}
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple5[A, B, C, D, E] {
		return gen.Tuple5[A, B, C, D, E]{First: v.First, Second: b, Third: v.Third, Fourth: v.Fourth, Fifth: v.Fifth}
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple5[A, B, C, D, E] {
		return gen.Tuple5[A, B, C, D, E]{First: v.First, Second: v.Second, Third: c, Fourth: v.Fourth, Fifth: v.Fifth}
	})
	lazy.PushMap(s, lazy.Pull[D](sd(v.Fourth).Next), func(d D) gen.Tuple5[A, B, C, D, E] {
		return gen.Tuple5[A, B, C, D, E]{First: v.First, Second: v.Second, Third: v.Third, Fourth: d, Fifth: v.Fifth}
	})
	lazy.PushMap(s, lazy.Pull[E](se(v.Fifth).Next), func(e E) gen.Tuple5[A, B, C, D, E] {
		return gen.Tuple5[A, B, C, D, E]{First: v.First, Second: v.Second, Third: v.Third, Fourth: v.Fourth, Fifth: e}
	})
	return s
}

// Tuple6 shrinks coordinate-wise across six coordinates.
func Tuple6[A, B, C, D, E, F any](v gen.Tuple6[A, B, C, D, E, F], sa Func[A], sb Func[B], sc Func[C], sd Func[D], se Func[E], sf Func[F]) *lazy.Stream[gen.Tuple6[A, B, C, D, E, F]] {
	s := lazy.New[gen.Tuple6[A, B, C, D, E, F]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: a, Second: v.Second, Third: v.Third, Fourth: v.Fourth, Fifth: v.Fifth, Sixth: v.Sixth}
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: v.First, Second: b, Third: v.Third, Fourth: v.Fourth, Fifth: v.Fifth, Sixth: v.Sixth}
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: v.First, Second: v.Second, Third: c, Fourth: v.Fourth, Fifth: v.Fifth, Sixth: v.Sixth}
	})
	lazy.PushMap(s, lazy.Pull[D](sd(v.Fourth).Next), func(d D) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: v.First, Second: v.Second, Third: v.Third, Fourth: d, Fifth: v.Fifth, Sixth: v.Sixth}
	})
	lazy.PushMap(s, lazy.Pull[E](se(v.Fifth).Next), func(e E) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: v.First, Second: v.Second, Third: v.Third, Fourth: v.Fourth, Fifth: e, Sixth: v.Sixth}
	})
	lazy.PushMap(s, lazy.Pull[F](sf(v.Sixth).Next), func(f F) gen.Tuple6[A, B, C, D, E, F] {
		return gen.Tuple6[A, B, C, D, E, F]{First: v.First, Second: v.Second, Third: v.Third, Fourth: v.Fourth, Fifth: v.Fifth, Sixth: f}
	})
	return s
}

// Tuple7 shrinks coordinate-wise across seven coordinates.
func Tuple7[A, B, C, D, E, F, G any](v gen.Tuple7[A, B, C, D, E, F, G], sa Func[A], sb Func[B], sc Func[C], sd Func[D], se Func[E], sf Func[F], sg Func[G]) *lazy.Stream[gen.Tuple7[A, B, C, D, E, F, G]] {
	s := lazy.New[gen.Tuple7[A, B, C, D, E, F, G]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.First = a
		return r
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Second = b
		return r
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Third = c
		return r
	})
	lazy.PushMap(s, lazy.Pull[D](sd(v.Fourth).Next), func(d D) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Fourth = d
		return r
	})
	lazy.PushMap(s, lazy.Pull[E](se(v.Fifth).Next), func(e E) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Fifth = e
		return r
	})
	lazy.PushMap(s, lazy.Pull[F](sf(v.Sixth).Next), func(f F) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Sixth = f
		return r
	})
	lazy.PushMap(s, lazy.Pull[G](sg(v.Seventh).Next), func(g G) gen.Tuple7[A, B, C, D, E, F, G] {
		r := v
		r.Seventh = g
		return r
	})
	return s
}

// Tuple8 shrinks coordinate-wise across eight coordinates.
func Tuple8[A, B, C, D, E, F, G, H any](v gen.Tuple8[A, B, C, D, E, F, G, H], sa Func[A], sb Func[B], sc Func[C], sd Func[D], se Func[E], sf Func[F], sg Func[G], sh Func[H]) *lazy.Stream[gen.Tuple8[A, B, C, D, E, F, G, H]] {
	s := lazy.New[gen.Tuple8[A, B, C, D, E, F, G, H]]()
	lazy.PushMap(s, lazy.Pull[A](sa(v.First).Next), func(a A) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.First = a
		return r
	})
	lazy.PushMap(s, lazy.Pull[B](sb(v.Second).Next), func(b B) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Second = b
		return r
	})
	lazy.PushMap(s, lazy.Pull[C](sc(v.Third).Next), func(c C) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Third = c
		return r
	})
	lazy.PushMap(s, lazy.Pull[D](sd(v.Fourth).Next), func(d D) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Fourth = d
		return r
	})
	lazy.PushMap(s, lazy.Pull[E](se(v.Fifth).Next), func(e E) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Fifth = e
		return r
	})
	lazy.PushMap(s, lazy.Pull[F](sf(v.Sixth).Next), func(f F) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Sixth = f
		return r
	})
	lazy.PushMap(s, lazy.Pull[G](sg(v.Seventh).Next), func(g G) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Seventh = g
		return r
	})
	lazy.PushMap(s, lazy.Pull[H](sh(v.Eighth).Next), func(h H) gen.Tuple8[A, B, C, D, E, F, G, H] {
		r := v
		r.Eighth = h
		return r
	})
	return s
}
