package gen

import (
	"math/rand"
	"testing"
)

func TestTuple2Of_ComponentsIndependentlyGenerated(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	g := Tuple2Of[int, string](IntRange(1, 1), ASCIIString())
	tup := g.Generate(r, 8)
	if tup.First != 1 {
		t.Fatalf("Tuple2.First = %d, want 1", tup.First)
	}
}

func TestTuple3Of_Compiles(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	g := Tuple3Of[int, int, int](Int(), Int(), Int())
	_ = g.Generate(r, 8)
}
