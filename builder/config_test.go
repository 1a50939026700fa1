// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	cfgExcel := newBuilderConfig(WithExcelColumnIDs())
	if got := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	// later options win
	cfgLast := newBuilderConfig(WithSymbolIDs(), WithPrefixIDs("v"))
	if got := cfgLast.idFn(3); got != "v3" {
		t.Errorf("override: expected \"v3\", got %q", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Fatal("default rng: expected nil")
	}

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed: draw %d differs: %d vs %d", i, x, y)
		}
	}

	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand: rng not installed")
	}
}

// TestWeightOption verifies the weight generator plumbing.
func TestWeightOption(t *testing.T) {
	t.Parallel()

	if w := newBuilderConfig().weight(); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %d, got %d", DefaultEdgeWeight, w)
	}
	if w := newBuilderConfig(WithConstantWeight(-4)).weight(); w != -4 {
		t.Errorf("WithConstantWeight(-4): got %d", w)
	}
}

// TestOptionPanics verifies that option constructors reject nil inputs.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
