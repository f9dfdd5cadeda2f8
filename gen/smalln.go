package gen

import "math/rand"

// SmallNValue is a bounded non-negative integer wrapper: a value
// drawn via SmallN(size), exposed as its own type so it can carry its
// own Generate/Shrink instances distinct from a plain uint (which has
// no canonical size-driven range).
type SmallNValue uint

// SmallNGenerator returns a Generator that draws SmallNValue(SmallN(r, size)).
func SmallNGenerator() Generator[SmallNValue] {
	return From(func(r *rand.Rand, size int) SmallNValue {
		return SmallNValue(SmallN(r, size))
	})
}
