// SPDX-License-Identifier: MIT

// Package builder contains unit tests for builderConfig to ensure options
// are applied in order and later options override earlier ones.
package builder

import (
	"math/rand"
	"testing"
)

// TestNewBuilderConfig_Defaults verifies the zero-option configuration.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(27); got != "AB" {
		t.Errorf("default idFn(27): expected \"AB\", got %q", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if got := cfg.probFn(cfg.rng); got != DefaultProbability {
		t.Errorf("default probFn: expected %v, got %v", DefaultProbability, got)
	}
}

// TestNewBuilderConfig_Override verifies that the last option wins.
func TestNewBuilderConfig_Override(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbNumb("v"), WithIDScheme(ExcelColumnIDFn))
	if got := cfg.idFn(3); got != "D" {
		t.Errorf("override idFn: expected \"D\", got %q", got)
	}

	cfg = newBuilderConfig(WithProbFn(ConstantProbFn(0.2)), WithProbFn(ConstantProbFn(0.7)))
	if got := cfg.probFn(nil); got != 0.7 {
		t.Errorf("override probFn: expected 0.7, got %v", got)
	}
}

// TestWithSeed_Reproducible verifies that equal seeds give equal streams.
func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(11))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(11))))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Float64(), b.rng.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}
