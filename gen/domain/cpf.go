// Package domain demonstrates how a user-defined type (a Brazilian
// CPF number, as a validated string) plugs in its own Generate and
// Shrink instances the same way the built-in types in gen/shrink do.
package domain

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/lazy"
)

// CPF generates valid CPF numbers; masked controls the format.
func CPF(masked bool) gen.Generator[string] {
	return gen.From(func(r *rand.Rand, _ int) string {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		return generateCPF(r, masked)
	})
}

// CPFAny generates CPF numbers with a 50/50 chance of being masked or unmasked.
func CPFAny() gen.Generator[string] {
	return gen.From(func(r *rand.Rand, size int) string {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		if r.Intn(2) == 0 {
			return CPF(true).Generate(r, size)
		}
		return CPF(false).Generate(r, size)
	})
}

// ShrinkCPF is the domain's Shrink instance: it proposes simpler CPF
// candidates that remain valid (no all-identical-digit root), in the
// same neighbourhood order the generator's own validity constraint
// suggests — unmask first, then zero each root digit left to right,
// then decrement each root digit right to left. The caller's runner
// (quick.Shrink / prop.ForAll) supplies the recursive "rebase on a
// still-failing candidate" search; ShrinkCPF only needs to describe
// one level of neighbours, exactly like every other Shrink instance
// in this engine.
func ShrinkCPF(v string) *lazy.Stream[string] {
	s := lazy.New[string]()

	un := UnmaskCPF(v)
	if v != un {
		s.Push(un)
	}

	lazy.PushThunk(s, un, func(s *lazy.Stream[string], un string) {
		zeroDigits(un, s.Push)
		lazy.PushThunk(s, un, func(s *lazy.Stream[string], un string) {
			decrementDigits(un, s.Push)
		})
	})

	return s
}

// generateCPF creates a valid CPF number.
func generateCPF(r *rand.Rand, masked bool) string {
	root := make([]byte, 9)
	for {
		for i := range 9 {
			root[i] = byte(r.Intn(10))
		}
		if !allSameDigits(root) {
			break
		}
	}
	d1, d2 := computeCPFVerifiersBytes(root)

	raw := make([]byte, 0, 11)
	for _, n := range root {
		raw = append(raw, '0'+n)
	}
	raw = append(raw, d1, d2)

	cur := string(raw)
	if masked {
		cur = MaskCPF(cur)
	}
	return cur
}

// zeroDigits tries zeroing each root digit from left to right.
func zeroDigits(un string, push func(string)) {
	r9 := make([]byte, 9)
	for i := range 9 {
		r9[i] = un[i] - '0'
	}

	for i := range 9 {
		if r9[i] == 0 {
			continue
		}
		orig := r9[i]
		r9[i] = 0
		if !allSameDigits(r9) {
			push(buildCPFString(r9))
		}
		r9[i] = orig
	}
}

// decrementDigits tries decrementing each root digit from right to left.
func decrementDigits(un string, push func(string)) {
	r9 := make([]byte, 9)
	for i := range 9 {
		r9[i] = un[i] - '0'
	}

	for j := 8; j >= 0; j-- {
		if r9[j] == 0 {
			continue
		}
		r9[j]--
		if !allSameDigits(r9) {
			push(buildCPFString(r9))
		}
		r9[j]++
	}
}

// buildCPFString builds a CPF string from a root byte array.
func buildCPFString(r9 []byte) string {
	d1, d2 := computeCPFVerifiersBytes(r9)
	buf := make([]byte, 0, 11)
	for _, n := range r9 {
		buf = append(buf, '0'+n)
	}
	buf = append(buf, d1, d2)
	return string(buf)
}

// ValidCPF checks if a string is a valid CPF number.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSame(b) {
		return false
	}
	d1, d2 := computeCPFVerifiers(b[:9])
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw CPF string with dots and dashes.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from a CPF string.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteByte(byte((int(r) - int('0')) + int('0')))
		}
	}
	return b.String()
}

// allSame checks if all bytes in a slice are the same.
func allSame(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	f := b[0]
	for _, x := range b[1:] {
		if x != f {
			return false
		}
	}
	return true
}

// allSameDigits checks if all bytes in a slice represent the same digit.
func allSameDigits(b []byte) bool {
	return allSame(b)
}

// computeCPFVerifiers calculates the verification digits for a CPF root.
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]-'0') * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]-'0') * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}

// computeCPFVerifiersBytes calculates the verification digits for a CPF root (byte version).
func computeCPFVerifiersBytes(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiersBytes: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
