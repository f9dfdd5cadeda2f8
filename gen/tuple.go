package gen

import "math/rand"

// Tuple2 through Tuple8 are the arity-2..8 product types used for
// composite Generate/Shrink instances. Go has no built-in tuple type,
// so each arity gets a small named struct — fields are indexed (First,
// Second, ...) rather than named after a domain, since these are
// generic products with no domain meaning of their own.

type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
	Eighth  H
}

// Tuple2Of generates a Tuple2 whose components are generated
// independently at the same size.
func Tuple2Of[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2[A, B]] {
	return From(func(r *rand.Rand, size int) Tuple2[A, B] {
		return Tuple2[A, B]{First: ga.Generate(r, size), Second: gb.Generate(r, size)}
	})
}

// Tuple3Of generates a Tuple3 whose components are generated
// independently at the same size.
func Tuple3Of[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3[A, B, C]] {
	return From(func(r *rand.Rand, size int) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{First: ga.Generate(r, size), Second: gb.Generate(r, size), Third: gc.Generate(r, size)}
	})
}

// Tuple4Of generates a Tuple4 whose components are generated
// independently at the same size.
func Tuple4Of[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4[A, B, C, D]] {
	return From(func(r *rand.Rand, size int) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{
			First: ga.Generate(r, size), Second: gb.Generate(r, size),
			Third: gc.Generate(r, size), Fourth: gd.Generate(r, size),
		}
	})
}

// Tuple5Of generates a Tuple5 whose components are generated
// independently at the same size.
func Tuple5Of[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E]) Generator[Tuple5[A, B, C, D, E]] {
	return From(func(r *rand.Rand, size int) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{
			First: ga.Generate(r, size), Second: gb.Generate(r, size), Third: gc.Generate(r, size),
			Fourth: gd.Generate(r, size), Fifth: ge.Generate(r, size),
		}
	})
}

// Tuple6Of generates a Tuple6 whose components are generated
// independently at the same size.
func Tuple6Of[A, B, C, D, E, F any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F]) Generator[Tuple6[A, B, C, D, E, F]] {
	return From(func(r *rand.Rand, size int) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{
			First: ga.Generate(r, size), Second: gb.Generate(r, size), Third: gc.Generate(r, size),
			Fourth: gd.Generate(r, size), Fifth: ge.Generate(r, size), Sixth: gf.Generate(r, size),
		}
	})
}

// Tuple7Of generates a Tuple7 whose components are generated
// independently at the same size.
func Tuple7Of[A, B, C, D, E, F, G any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G]) Generator[Tuple7[A, B, C, D, E, F, G]] {
	return From(func(r *rand.Rand, size int) Tuple7[A, B, C, D, E, F, G] {
		return Tuple7[A, B, C, D, E, F, G]{
			First: ga.Generate(r, size), Second: gb.Generate(r, size), Third: gc.Generate(r, size),
			Fourth: gd.Generate(r, size), Fifth: ge.Generate(r, size), Sixth: gf.Generate(r, size),
			Seventh: gg.Generate(r, size),
		}
	})
}

// Tuple8Of generates a Tuple8 whose components are generated
// independently at the same size.
func Tuple8Of[A, B, C, D, E, F, G, H any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F], gg Generator[G], gh Generator[H]) Generator[Tuple8[A, B, C, D, E, F, G, H]] {
	return From(func(r *rand.Rand, size int) Tuple8[A, B, C, D, E, F, G, H] {
		return Tuple8[A, B, C, D, E, F, G, H]{
			First: ga.Generate(r, size), Second: gb.Generate(r, size), Third: gc.Generate(r, size),
			Fourth: gd.Generate(r, size), Fifth: ge.Generate(r, size), Sixth: gf.Generate(r, size),
			Seventh: gg.Generate(r, size), Eighth: gh.Generate(r, size),
		}
	})
}
