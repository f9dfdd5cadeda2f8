package shrink

import (
	"testing"

	"github.com/lucaskalb/qcgo/gen"
)

func TestBox_MapsThroughInner(t *testing.T) {
	b := gen.Box[uint]{Value: 8}
	got := Box(b, Uint).All()
	want := piecewise(uint(8))
	if len(got) != len(want) {
		t.Fatalf("Box(%v) = %v, want %d candidates", b, got, len(want))
	}
	for i, c := range got {
		if c.Value != want[i] {
			t.Fatalf("Box(%v)[%d].Value = %d, want %d", b, i, c.Value, want[i])
		}
	}
}

func TestOption_NoneFirstThenInnerShrinks(t *testing.T) {
	some := gen.Some(uint(2))
	got := Option(some, Uint).All()
	if len(got) == 0 || got[0].Valid {
		t.Fatalf("Option(Some(2)) first candidate = %v, want None first", got)
	}
	for _, c := range got[1:] {
		if !c.Valid {
			t.Fatalf("Option(Some(2)) produced a second None: %v", got)
		}
	}
}

func TestOption_NoneIsExhausted(t *testing.T) {
	none := gen.None[uint]()
	if got := Option(none, Uint).All(); len(got) != 0 {
		t.Fatalf("Option(None) = %v, want no candidates", got)
	}
}

func TestCell_EmptyFirstThenInnerShrinks(t *testing.T) {
	filled := gen.Cell[uint]{Value: 2}
	got := Cell(filled, Uint).All()
	if len(got) == 0 || !got[0].Empty {
		t.Fatalf("Cell({Value: 2}) first candidate = %v, want empty first", got)
	}
	for _, c := range got[1:] {
		if c.Empty {
			t.Fatalf("Cell({Value: 2}) produced a second empty slot: %v", got)
		}
	}
}

func TestCell_EmptyIsExhausted(t *testing.T) {
	empty := gen.Cell[uint]{Empty: true}
	if got := Cell(empty, Uint).All(); len(got) != 0 {
		t.Fatalf("Cell(empty) = %v, want no candidates", got)
	}
}

func TestEither_ShrinksInhabitedSideOnly(t *testing.T) {
	left := gen.LeftOf[uint, uint](8)
	for _, c := range Either(left, Uint, Uint).All() {
		if c.IsRight {
			t.Fatalf("Either(Left(8)) produced a Right candidate: %v", c)
		}
	}

	right := gen.RightOf[uint, uint](8)
	for _, c := range Either(right, Uint, Uint).All() {
		if !c.IsRight {
			t.Fatalf("Either(Right(8)) produced a Left candidate: %v", c)
		}
	}
}

func TestResult_DelegatesToEither(t *testing.T) {
	ok := gen.Ok[uint, string](8)
	got := Result[uint, string](ok, Uint, ASCIIString).All()
	want := Either[string, uint](ok, ASCIIString, Uint).All()
	if len(got) != len(want) {
		t.Fatalf("Result(Ok(8)) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Result(Ok(8))[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
