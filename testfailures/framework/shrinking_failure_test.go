//go:build demo
// +build demo

// Package framework contains tests that verify the framework's behavior
// when properties fail intentionally. These tests ensure that the framework
// correctly handles failures, shrinking, and parallel execution paths.
package framework

import (
	"testing"

	"github.com/lucaskalb/qcgo/prop"
)

// TestForAll_ShrinkingFailure tests the shrinking mechanism with intentional failures.
// This test verifies that the framework correctly shrinks values when properties fail.
func TestForAll_ShrinkingFailure(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    1,
		MaxShrink:   2,
		ShrinkStrat: "bfs",
		Parallelism: 1,
	}

	prop.ForAll(t, config, constGen(42), noShrink)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}
