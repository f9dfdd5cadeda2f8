// Package prop is the ambient harness layer around quick: it adds a
// parallel trial driver, a configurable shrink budget, and flag-driven
// defaults so property tests can be tuned from the command line
// without touching source. The core falsification/minimisation
// contract lives in quick; prop only decides how many goroutines pull
// from it and how a run's randomness is seeded.
package prop

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/shrink"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// Size is the base size parameter passed to Generate.
	Size int

	// Grow scales the effective size up with the trial index, as in
	// quick.Config: size = Size + i/8.
	Grow bool

	// MaxShrink is the maximum number of shrinking steps to perform
	// when a counterexample is found.
	MaxShrink int

	// ShrinkStrat names a shrinking strategy ("bfs" or "dfs"). It is
	// only reported in the run's log line: shrinking always uses
	// boundedShrink's greedy descent, whatever the value.
	ShrinkStrat string

	// StopOnFirstFailure determines whether to stop testing
	// after the first failing test case is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use
	// for running test cases. Must be at least 1.
	Parallelism int
}

var (
	// flagSeed sets the random seed for test case generation.
	// Default: 0 (random seed based on current time).
	flagSeed = flag.Int64("qcgo.seed", 0, "Random seed for test case generation")

	// flagExamples sets the number of test cases to generate.
	// Default: 50, matching quick.DefaultConfig's Trials.
	flagExamples = flag.Int("qcgo.examples", 50, "Number of test cases to generate")

	// flagSize sets the base size parameter.
	// Default: 8, matching quick.DefaultConfig's Size.
	flagSize = flag.Int("qcgo.size", 8, "Base size parameter for value generation")

	// flagMaxShrink sets the maximum number of shrinking steps.
	// Default: 400.
	flagMaxShrink = flag.Int("qcgo.maxshrink", 400, "Maximum number of shrinking steps")

	// flagShrinkStrat sets the shrinking strategy.
	// Default: "bfs" (breadth-first search).
	flagShrinkStrat = flag.String("qcgo.shrink.strategy", "bfs", "Shrinking strategy (bfs or dfs)")

	// flagParallelism sets the number of parallel workers.
	// Default: 1.
	flagParallelism = flag.Int("qcgo.shrink.parallel", 1, "Number of parallel workers")
)

// Default returns a Config with default values based on command-line flags.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		Size:               *flagSize,
		Grow:               true,
		MaxShrink:          *flagMaxShrink,
		ShrinkStrat:        *flagShrinkStrat,
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
	}
}

// effectiveSeed returns the effective seed to use for random number generation.
// If the configured seed is zero, it returns a random seed based on the current time.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// sizeAt mirrors quick.Config.sizeAt: size = Size + i/8 when Grow is set.
func (c Config) sizeAt(trial int) int {
	if !c.Grow {
		return c.Size
	}
	return c.Size + trial/8
}

// ForAll drives a property over generated values of T, using g to
// generate and sh to shrink falsifying witnesses — the explicit
// Generate/Shrink pair a typeclass dictionary becomes in Go.
// It returns a function that takes the test body as a parameter.
//
// The test will generate cfg.Examples number of test cases, and if any
// fail, it will attempt to shrink the counterexample to find a minimal
// failing case by greedy descent, bounded by cfg.MaxShrink.
//
// Example usage:
//
//	prop.ForAll(t, prop.Default(), gen.Int(), shrink.Int)(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T], sh shrink.Func[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()
		r := rand.New(rand.NewSource(seed))

		t.Logf("[qcgo] seed=%d examples=%d maxshrink=%d strategy=%s parallelism=%d",
			seed, cfg.Examples, cfg.MaxShrink, cfg.ShrinkStrat, cfg.Parallelism)

		if cfg.Parallelism <= 1 {
			runSequential(t, cfg, g, sh, body, seed, r)
		} else {
			runParallel(t, cfg, g, sh, body, seed, r)
		}
	}
}

// runSequential executes property-based tests sequentially (single-threaded).
// It generates test cases one by one and runs them against the test function.
// If a test fails, it shrinks the counterexample with bounded greedy descent.
func runSequential[T any](t *testing.T, cfg Config, g gen.Generator[T], sh shrink.Func[T], body func(*testing.T, T), seed int64, r *rand.Rand) {
	for i := 0; i < cfg.Examples; i++ {
		val := g.Generate(r, cfg.sizeAt(i))
		name := fmt.Sprintf("ex#%d", i+1)

		passed := t.Run(name, func(st *testing.T) { body(st, val) })
		if passed {
			continue
		}

		min, steps := boundedShrink(cfg, t, name, val, sh, body)

		full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
		t.Errorf("[qcgo] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
			"counterexample (min): %#v\nreplay: go test -run '%s' -qcgo.seed=%d",
			seed, i+1, steps, min, full, seed)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// runParallel executes property-based tests in parallel using multiple goroutines.
// It distributes test cases across multiple workers and collects failure results.
// The random number generator is protected by a mutex to ensure thread safety.
func runParallel[T any](t *testing.T, cfg Config, g gen.Generator[T], sh shrink.Func[T], body func(*testing.T, T), seed int64, r *rand.Rand) {
	testChan := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		testChan <- i
	}
	close(testChan)

	var wg sync.WaitGroup
	var randMutex sync.Mutex
	failureChan := make(chan failureResult, cfg.Examples)

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for testIndex := range testChan {
				randMutex.Lock()
				val := g.Generate(r, cfg.sizeAt(testIndex))
				randMutex.Unlock()

				name := fmt.Sprintf("ex#%d", testIndex+1)

				passed := t.Run(name, func(st *testing.T) { body(st, val) })
				if passed {
					continue
				}

				min, steps := boundedShrink(cfg, t, name, val, sh, body)

				failureChan <- failureResult{
					testIndex: testIndex,
					name:      name,
					min:       min,
					steps:     steps,
				}

				if cfg.StopOnFirstFailure {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failureChan)
	}()

	for failure := range failureChan {
		full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), failure.name)
		t.Errorf("[qcgo] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
			"counterexample (min): %#v\nreplay: go test -run '%s' -qcgo.seed=%d",
			seed, failure.testIndex+1, failure.steps, failure.min, full, seed)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// boundedShrink walks sh(val) with quick.Shrink's greedy left-to-right
// rule, but bounded by cfg.MaxShrink steps and reporting each step as
// its own subtest — a replay-friendly naming scheme (name/shrink#N)
// layered over quick.Shrink's unbounded descent.
func boundedShrink[T any](cfg Config, t *testing.T, name string, val T, sh shrink.Func[T], body func(*testing.T, T)) (T, int) {
	min := val
	steps := 0
	cur := val

	for steps < cfg.MaxShrink {
		stream := sh(cur)
		advanced := false

		for {
			cand, ok := stream.Next()
			if !ok {
				break
			}
			steps++
			sname := fmt.Sprintf("%s/shrink#%d", name, steps)

			stillFails := !t.Run(sname, func(st *testing.T) { body(st, cand) })
			if stillFails {
				min = cand
				cur = cand
				advanced = true
				break
			}
			if steps >= cfg.MaxShrink {
				break
			}
		}

		if !advanced {
			break
		}
	}

	return min, steps
}

// failureResult holds information about a failed test case after shrinking.
type failureResult struct {
	testIndex int
	name      string
	min       interface{}
	steps     int
}
