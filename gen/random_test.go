package gen

import (
	"math/rand"
	"testing"
)

func TestRandomOf_DelegatesToSampler(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	g := RandomOf[int](func(r *rand.Rand) int { return 42 })
	v := g.Generate(r, 8)
	if v.Value != 42 {
		t.Fatalf("RandomOf sampler result = %d, want 42", v.Value)
	}
}

func TestRandomOf_IgnoresSize(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	calls := 0
	g := RandomOf[int](func(r *rand.Rand) int {
		calls++
		return r.Intn(1000)
	})
	for _, size := range []int{0, 1, 100} {
		g.Generate(r, size)
	}
	if calls != 3 {
		t.Fatalf("RandomOf sampler called %d times, want 3 (once per Generate call)", calls)
	}
}
