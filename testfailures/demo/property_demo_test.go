//go:build demo
// +build demo

// Package demo contains demonstration tests that are designed to fail intentionally.
// These tests showcase the shrinking mechanism and property-based testing capabilities
// of the engine. They are meant for educational and demonstration purposes.
package demo

import (
	"testing"

	"github.com/lucaskalb/qcgo/gen"
	"github.com/lucaskalb/qcgo/gen/domain"
	"github.com/lucaskalb/qcgo/prop"
	"github.com/lucaskalb/qcgo/shrink"
)

// Test_String_FalseRule demonstrates a property-based test that is
// designed to fail. It verifies a false property: "all generated
// strings are empty". The shrinking mechanism finds a minimal
// counterexample when the property fails.
func Test_String_FalseRule(t *testing.T) {
	prop.ForAll(t, prop.Default(), gen.ASCIIString(), shrink.ASCIIString)(
		func(t *testing.T, s string) {
			if s != "" {
				t.Fatalf("expected empty string, got %q", s)
			}
		},
	)
}

// Test_CPF_Invalid demonstrates a property-based test that is designed
// to fail. It expects every generated CPF to start with '9', which is
// not true for valid CPF generation.
func Test_CPF_Invalid(t *testing.T) {
	cfg := prop.Default()
	prop.ForAll(t, cfg, domain.CPF(false), domain.ShrinkCPF)(func(t *testing.T, cpf string) {
		if cpf[0] != '9' {
			t.Fatalf("expected to start with 9, but got %q", cpf)
		}
	})
}
