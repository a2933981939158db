package quote

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func staticResolver(prices map[string]float64) ResolverFunc {
	return func(_ context.Context, colorName, _, _ string) (float64, bool, error) {
		price, ok := prices[strings.ToLower(strings.TrimSpace(colorName))]
		return price, ok, nil
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		raw    string
		expect float64
	}{
		{"950", 950},
		{"AED 1,200", 1200},
		{"1200.50 per slab", 1200.50},
		{"approx. AED950/slab", 950},
		{"", 0},
		{"price on request", 0},
	}
	for _, tt := range tests {
		if got := extractAmount(tt.raw); got != tt.expect {
			t.Errorf("extractAmount(%q) = %v, want %v", tt.raw, got, tt.expect)
		}
	}
}

func TestParseSlabCount(t *testing.T) {
	tests := []struct {
		raw    string
		expect int
	}{
		{"3", 3},
		{" 4 ", 4},
		{"", 0},
		{"two", 0},
		{"-2", 0},
	}
	for _, tt := range tests {
		if got := parseSlabCount(tt.raw); got != tt.expect {
			t.Errorf("parseSlabCount(%q) = %d, want %d", tt.raw, got, tt.expect)
		}
	}
}

func TestResolveMaterialCosts_LuxoneUsesCatalogPrice(t *testing.T) {
	products := []ProductSelection{{
		ID:             "p1",
		MaterialSource: SourceLuxone,
		MaterialColor:  "  Glacier White  ",
	}}
	areas := map[string]float64{"p1": 2.5}

	costs := resolveMaterialCosts(context.Background(), products, areas, staticResolver(map[string]float64{
		"glacier white": 380,
	}))

	nearlyEqual(t, "p1", costs["p1"], 950)
}

func TestResolveMaterialCosts_LuxoneDefaultsFinishAndThickness(t *testing.T) {
	var gotFinish, gotThickness string
	resolver := ResolverFunc(func(_ context.Context, _, finish, thickness string) (float64, bool, error) {
		gotFinish, gotThickness = finish, thickness
		return 100, true, nil
	})

	products := []ProductSelection{{ID: "p1", MaterialSource: SourceLuxone, MaterialColor: "Calacatta Gold"}}
	resolveMaterialCosts(context.Background(), products, map[string]float64{"p1": 1}, resolver)

	if gotFinish != DefaultFinish || gotThickness != DefaultThickness {
		t.Fatalf("expected defaults %q/%q, got %q/%q", DefaultFinish, DefaultThickness, gotFinish, gotThickness)
	}
}

func TestResolveMaterialCosts_MissAndFailureAreZero(t *testing.T) {
	products := []ProductSelection{
		{ID: "miss", MaterialSource: SourceLuxone, MaterialColor: "Unknown Color"},
		{ID: "boom", MaterialSource: SourceLuxone, MaterialColor: "Glacier White"},
	}
	areas := map[string]float64{"miss": 3, "boom": 3}

	resolver := ResolverFunc(func(_ context.Context, colorName, _, _ string) (float64, bool, error) {
		if colorName == "Glacier White" {
			return 0, false, errors.New("catalog unreachable")
		}
		return 0, false, nil
	})

	costs := resolveMaterialCosts(context.Background(), products, areas, resolver)
	nearlyEqual(t, "miss", costs["miss"], 0)
	nearlyEqual(t, "boom", costs["boom"], 0)
}

func TestResolveMaterialCosts_YourselfIsFree(t *testing.T) {
	products := []ProductSelection{{
		ID:             "p1",
		MaterialSource: SourceYourself,
		SlabSize:       "3.2x1.6",
		NumberOfSlabs:  2,
	}}

	costs := resolveMaterialCosts(context.Background(), products, map[string]float64{"p1": 4}, nil)
	nearlyEqual(t, "p1", costs["p1"], 0)
}

func TestResolveMaterialCosts_LuxoneOthersIgnoresArea(t *testing.T) {
	products := []ProductSelection{{
		ID:             "p1",
		MaterialSource: SourceLuxoneOthers,
		RequiredSlabs:  "3",
		PricePerSlab:   "AED 900 per slab",
	}}

	// Slabs are bought whole, so the piece area plays no role.
	for _, area := range []float64{0, 1, 14.9} {
		costs := resolveMaterialCosts(context.Background(), products, map[string]float64{"p1": area}, nil)
		nearlyEqual(t, "p1", costs["p1"], 2700)
	}
}

func TestResolveMaterialCosts_ManyProductsResolveIndependently(t *testing.T) {
	resolver := staticResolver(map[string]float64{
		"glacier white":  380,
		"calacatta gold": 420,
	})

	products := []ProductSelection{
		{ID: "a", MaterialSource: SourceLuxone, MaterialColor: "Glacier White"},
		{ID: "b", MaterialSource: SourceLuxone, MaterialColor: "Calacatta Gold"},
		{ID: "c", MaterialSource: SourceLuxone, MaterialColor: "No Such Color"},
		{ID: "d", MaterialSource: SourceYourself},
	}
	areas := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}

	costs := resolveMaterialCosts(context.Background(), products, areas, resolver)
	nearlyEqual(t, "a", costs["a"], 380)
	nearlyEqual(t, "b", costs["b"], 840)
	nearlyEqual(t, "c", costs["c"], 0)
	nearlyEqual(t, "d", costs["d"], 0)
}
