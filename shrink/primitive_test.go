package shrink

import (
	"testing"

	"github.com/lucaskalb/qcgo/gen"
)

func TestBool_Strictness(t *testing.T) {
	for _, v := range []bool{true, false} {
		for _, c := range Bool(v).All() {
			if c == v {
				t.Fatalf("Bool(%v) produced a fixed point", v)
			}
		}
	}
}

func TestUint_PiecewiseTable(t *testing.T) {
	cases := []struct {
		n    uint
		want []uint
	}{
		{0, nil},
		{1, []uint{0}},
		{2, []uint{0, 1}},
		{5, []uint{2, 3, 4}},
		{8, []uint{5, 6, 7}},
	}
	for _, c := range cases {
		got := Uint(c.n).All()
		if len(got) != len(c.want) {
			t.Fatalf("Uint(%d) = %v, want %v", c.n, got, c.want)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("Uint(%d)[%d] = %d, want %d", c.n, i, got[i], c.want[i])
			}
		}
	}
}

func TestUint_ZeroIsExhausted(t *testing.T) {
	if got := Uint(0).All(); len(got) != 0 {
		t.Fatalf("Uint(0) = %v, want empty", got)
	}
}

func TestUint_NeverFixedPoint(t *testing.T) {
	for n := uint(0); n < 200; n++ {
		for _, c := range Uint(n).All() {
			if c == n {
				t.Fatalf("Uint(%d) produced a fixed point", n)
			}
			if c > n {
				t.Fatalf("Uint(%d) produced a larger candidate %d", n, c)
			}
		}
	}
}

func TestUint_ReachesZeroInBoundedSteps(t *testing.T) {
	for start := uint(0); start < 500; start += 7 {
		n := start
		steps := 0
		for {
			cands := Uint(n).All()
			if len(cands) == 0 {
				break
			}
			n = cands[0]
			steps++
			if steps > 1000 {
				t.Fatalf("shrink(%d) did not terminate within 1000 steps", start)
			}
		}
		if n != 0 {
			t.Fatalf("shrink chain from %d ended at %d, want 0", start, n)
		}
	}
}

func TestInt_MagnitudeThenSign(t *testing.T) {
	for _, n := range []int{5, -5, 100, -100, 0} {
		cands := Int(n).All()
		for _, c := range cands {
			if c == n {
				t.Fatalf("Int(%d) produced a fixed point", n)
			}
			if (n > 0 && c < 0) || (n < 0 && c > 0) {
				t.Fatalf("Int(%d) produced %d with a flipped sign", n, c)
			}
		}
	}
	if got := Int(0).All(); len(got) != 0 {
		t.Fatalf("Int(0) = %v, want empty", got)
	}
}

func TestFloat64_ShrinksTowardZero(t *testing.T) {
	cands := Float64(100.0).All()
	if len(cands) == 0 {
		t.Fatalf("Float64(100.0) produced no candidates")
	}
	if cands[0] != 0 {
		t.Fatalf("Float64(100.0)[0] = %v, want 0", cands[0])
	}
	for _, c := range cands {
		if c == 100.0 {
			t.Fatalf("Float64(100.0) produced a fixed point")
		}
	}
}

func TestFloat64_TruncatesFractionalPart(t *testing.T) {
	cands := Float64(3.75).All()
	found := false
	for _, c := range cands {
		if c == 3.0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("Float64(3.75) = %v, want to include the truncated value 3.0", cands)
	}
}

func TestFloat64_ZeroIsExhausted(t *testing.T) {
	if got := Float64(0).All(); len(got) != 0 {
		t.Fatalf("Float64(0) = %v, want empty", got)
	}
}

func TestSmallN_ReusesUintRule(t *testing.T) {
	got := SmallN(gen.SmallNValue(5)).All()
	want := []gen.SmallNValue{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("SmallN(5) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SmallN(5)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
