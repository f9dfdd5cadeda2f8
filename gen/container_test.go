package gen

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestSlice_LengthTracksSize(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	g := Slice[int](Int())
	for _, size := range []int{0, 1, 8, 16} {
		for i := 0; i < 50; i++ {
			xs := g.Generate(r, size)
			if len(xs) > 16*size {
				t.Fatalf("Slice at size %d produced length %d > %d", size, len(xs), 16*size)
			}
		}
	}
}

func TestNonEmptySlice_NeverEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	g := NonEmptySlice[int](Int())
	for i := 0; i < 200; i++ {
		xs := g.Generate(r, 0)
		if len(xs) == 0 {
			t.Fatalf("NonEmptySlice produced an empty slice")
		}
	}
}

func TestOption_BothBranchesReachable(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	g := OptionOf[int](Int())
	some, none := false, false
	for i := 0; i < 200; i++ {
		o := g.Generate(r, 8)
		if o.Valid {
			some = true
		} else {
			none = true
		}
	}
	if !some || !none {
		t.Fatalf("OptionOf did not produce both Some and None in 200 draws")
	}
}

func TestEitherOf_BothSidesReachable(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	g := EitherOf[int, string](Int(), ASCIIString())
	left, right := false, false
	for i := 0; i < 200; i++ {
		e := g.Generate(r, 8)
		if e.IsRight {
			right = true
		} else {
			left = true
		}
	}
	if !left || !right {
		t.Fatalf("EitherOf did not produce both sides in 200 draws")
	}
}

func TestCellOf_BothBranchesReachable(t *testing.T) {
	r := rand.New(rand.NewSource(18))
	g := CellOf[int](Int())
	filled, empty := false, false
	for i := 0; i < 200; i++ {
		c := g.Generate(r, 8)
		if c.Empty {
			empty = true
		} else {
			filled = true
		}
	}
	if !filled || !empty {
		t.Fatalf("CellOf did not produce both filled and empty cells in 200 draws")
	}
}

func TestMap_RealisedSizeNeverExceedsAttempts(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	g := Map[int, string](IntRange(0, 3), ASCIIString())
	for i := 0; i < 100; i++ {
		m := g.Generate(r, 8)
		if len(m) > 16*8 {
			t.Fatalf("Map produced %d entries, want <= %d", len(m), 16*8)
		}
	}
}

func TestBoxOf_WrapsInnerValue(t *testing.T) {
	r := rand.New(rand.NewSource(15))
	g := BoxOf[int](Int())
	b := g.Generate(r, 8)
	_ = b.Value // just needs to compile and not panic
}

func TestUnicodeString_ValidUTF8(t *testing.T) {
	r := rand.New(rand.NewSource(16))
	g := UnicodeString()
	for _, size := range []int{0, 1, 4, 16} {
		for i := 0; i < 50; i++ {
			s := g.Generate(r, size)
			if !utf8.ValidString(s) {
				t.Fatalf("UnicodeString produced invalid UTF-8: %q", s)
			}
		}
	}
}

func TestASCIIString_OnlyASCII(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	g := ASCIIString()
	for i := 0; i < 200; i++ {
		s := g.Generate(r, 8)
		for _, b := range []byte(s) {
			if b > 127 {
				t.Fatalf("ASCIIString produced non-ASCII byte %d in %q", b, s)
			}
		}
	}
}
