package quick

import (
	"math/rand"
	"time"

	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/shrink"
)

// Reporter is the host error-reporting surface the runner fails
// through. *testing.T satisfies it; it is narrowed to the three
// methods the runner actually needs so properties can be exercised
// outside of "go test" too.
type Reporter interface {
	Helper()
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Check runs prop against cfg.Trials generated values of T, growing
// size as configured. On the first falsifying value it drives greedy
// minimisation via Shrink and fails t naming name, the trial count,
// and the minimal witness. If every trial passes, Check returns
// normally.
//
// g and sh stand in for a Generate/Shrink typeclass: Go has no
// typeclasses, so the per-type dictionary is passed explicitly,
// the same way shrink's own tuple/container/sequence rules take
// element-level shrink.Func[T] parameters.
func Check[T any](t Reporter, name string, cfg Config, g gen.Generator[T], sh shrink.Func[T], prop func(T) bool) {
	t.Helper()
	r := newRand()

	for i := 0; i < cfg.Trials; i++ {
		sz := cfg.sizeAt(i)
		v := g.Generate(r, sz)

		if prop(v) {
			continue
		}

		if cfg.Verbose {
			t.Logf("[qcgo] %s: falsified on trial %d at size %d: %#v", name, i+1, sz, v)
		}

		min := Shrink(cfg, v, sh, prop)
		t.Fatalf("[qcgo] %s: property falsified after %d trial(s); minimal counterexample: %#v",
			name, i+1, min)
		return
	}

	if cfg.Verbose {
		t.Logf("[qcgo] %s: %d trial(s) passed", name, cfg.Trials)
	}
}

// Shrink performs greedy left-to-right minimisation of v, which the
// caller guarantees already falsifies prop. It walks shrink(v) in
// order and recurses into the first candidate that still falsifies
// prop, discarding the rest of that stream; if no candidate falsifies
// prop, v is already a local minimum and is returned unchanged.
func Shrink[T any](cfg Config, v T, sh shrink.Func[T], prop func(T) bool) T {
	stream := sh(v)
	for {
		c, ok := stream.Next()
		if !ok {
			return v
		}
		if !prop(c) {
			return Shrink(cfg, c, sh, prop)
		}
	}
}

// CheckOccurs is the existential dual of Check: it passes as soon as
// any of cfg.Trials generated values satisfies prop, and fails t if
// none do. It never shrinks — there is no counterexample to minimise,
// only an absence to report.
func CheckOccurs[T any](t Reporter, cfg Config, name string, g gen.Generator[T], prop func(T) bool) {
	t.Helper()
	r := newRand()

	for i := 0; i < cfg.Trials; i++ {
		sz := cfg.sizeAt(i)
		v := g.Generate(r, sz)

		if prop(v) {
			if cfg.Verbose {
				t.Logf("[qcgo] %s: satisfied on trial %d at size %d: %#v", name, i+1, sz, v)
			}
			return
		}
	}

	t.Fatalf("[qcgo] %s: no trial out of %d satisfied the property", name, cfg.Trials)
}

// newRand returns a fresh, unseeded-by-the-caller random source for a
// single Check/CheckOccurs run. Nothing at this layer pins the PRNG
// algorithm or requires cross-run determinism; deciding
// and threading a reproducible seed is the ambient prop package's job.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
