// Package shrink provides the Shrink contract for property-based
// testing and its built-in instances: primitives, tuples, options,
// results/eithers, owned boxes, sequences, maps, and strings.
//
// Go has no typeclass mechanism, so a composite shrink rule (tuples,
// slices, maps, ...) takes its element-level Func as an explicit
// parameter — the usual Go "dictionary passing" encoding of a
// typeclass constraint, already used by gen's composite generators
// (which take a gen.Generator[T] parameter for the same reason).
package shrink

import "github.com/lucaskalb/qcgo/lazy"

// Func is the per-type Shrink contract: given a value, return a
// *lazy.Stream of strictly-simpler candidates, simplest-relevant first.
// "Simpler" is type-local but must satisfy: the input value itself
// never appears in its own stream (no fixed points), and repeatedly
// taking the first candidate from any starting point eventually
// exhausts in a bounded number of steps.
type Func[T any] func(v T) *lazy.Stream[T]

// Empty is the default Shrink instance: always an empty stream. Used
// for types treated as atomic — (), rune, int8, and any type with no
// meaningful "simpler" notion.
func Empty[T any](_ T) *lazy.Stream[T] {
	return lazy.New[T]()
}
