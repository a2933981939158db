package quote

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Defaults applied when a luxone product omits its finish or thickness.
const (
	DefaultFinish    = "Polished"
	DefaultThickness = "20mm"
)

// PriceResolver resolves a price per square meter from the material catalog.
// Implementations must match colorName case-insensitively after trimming.
// ok is false on a miss; err reports a catalog failure. Both degrade to a
// zero material cost for the affected product.
type PriceResolver interface {
	ResolvePrice(ctx context.Context, colorName, finish, thickness string) (price float64, ok bool, err error)
}

// ResolverFunc adapts a function to the PriceResolver interface.
type ResolverFunc func(ctx context.Context, colorName, finish, thickness string) (float64, bool, error)

func (f ResolverFunc) ResolvePrice(ctx context.Context, colorName, finish, thickness string) (float64, bool, error) {
	return f(ctx, colorName, finish, thickness)
}

var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// extractAmount pulls the first numeric run out of a free-text currency
// string, e.g. "AED 1,200 per slab" -> 1 then 200; commas are stripped first
// so that reads as 1200.
func extractAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(raw, ",", "")
	m := amountPattern.FindString(cleaned)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseSlabCount parses a slab count submitted as a string, defaulting to 0.
func parseSlabCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// resolveMaterialCosts computes the material cost of every product. Catalog
// lookups for distinct products are independent and run concurrently; a miss
// or a catalog error zeroes that product's cost only.
func resolveMaterialCosts(ctx context.Context, products []ProductSelection, areas map[string]float64, resolver PriceResolver) map[string]float64 {
	costs := make([]float64, len(products))

	var wg sync.WaitGroup
	for i, p := range products {
		switch p.MaterialSource {
		case SourceLuxone:
			wg.Add(1)
			go func(i int, p ProductSelection) {
				defer wg.Done()
				costs[i] = luxoneMaterialCost(ctx, p, areas[p.ID], resolver)
			}(i, p)
		case SourceLuxoneOthers:
			// Whole slabs bought from a third party: the count drives the
			// cost, not the piece area.
			costs[i] = float64(parseSlabCount(p.RequiredSlabs)) * extractAmount(p.PricePerSlab)
		default:
			// Customer-supplied material costs nothing; an unset source is
			// an incomplete step, also zero.
		}
	}
	wg.Wait()

	out := make(map[string]float64, len(products))
	for i, p := range products {
		out[p.ID] = costs[i]
	}
	return out
}

func luxoneMaterialCost(ctx context.Context, p ProductSelection, area float64, resolver PriceResolver) float64 {
	color := strings.TrimSpace(p.MaterialColor)
	if color == "" || resolver == nil {
		return 0
	}

	finish := p.Finish
	if finish == "" {
		finish = DefaultFinish
	}
	thickness := p.Thickness
	if thickness == "" {
		thickness = DefaultThickness
	}

	price, ok, err := resolver.ResolvePrice(ctx, color, finish, thickness)
	if err != nil || !ok {
		// Pending catalog data; the estimate stays computable.
		return 0
	}
	return area * price
}
