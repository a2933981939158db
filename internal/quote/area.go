package quote

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// slabSizePattern matches "<number>x<number>" slab dimensions, e.g.
// "3.2x1.6" or "3200 x 1600".
var slabSizePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*[xX]\s*(\d+(?:\.\d+)?)\s*$`)

// parseDimension parses a piece dimension in meters. Piece dimensions are
// never auto-scaled; only slab sizes go through the millimeter heuristic.
func parseDimension(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// pieceArea returns the area of one piece. Pieces missing either dimension
// are excluded from the total rather than counted as zero-area entries.
func pieceArea(p Piece) (float64, bool) {
	length, ok := parseDimension(p.Length)
	if !ok {
		return 0, false
	}
	width, ok := parseDimension(p.Width)
	if !ok {
		return 0, false
	}
	return length * width, true
}

// productQuantity treats a missing or non-positive quantity as a single unit.
func productQuantity(p ProductSelection) int {
	if p.Quantity < 1 {
		return 1
	}
	return p.Quantity
}

// productArea sums the valid piece areas of a product and multiplies by its
// quantity.
func productArea(p ProductSelection) float64 {
	var perUnit float64
	for _, piece := range p.Pieces {
		if a, ok := pieceArea(piece); ok {
			perUnit += a
		}
	}
	return perUnit * float64(productQuantity(p))
}

type areaTotals struct {
	total      float64
	perProduct map[string]float64
}

// aggregateAreas reduces the product list into per-product areas and a grand
// total. The total is rounded to 3 decimals to stabilize the downstream slab
// count and cost rounding.
func aggregateAreas(products []ProductSelection) areaTotals {
	totals := areaTotals{perProduct: make(map[string]float64, len(products))}
	for _, p := range products {
		area := productArea(p)
		totals.perProduct[p.ID] = area
		totals.total += area
	}
	totals.total = round3(totals.total)
	return totals
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// SlabSizeArea parses a "LxW" slab dimension string and returns the area of
// one slab in square meters. When both captured numbers exceed 100 they are
// taken as millimeters and divided by 1000. This threshold is the sole
// scale-disambiguation rule and applies identically to every slab-size field.
func SlabSizeArea(raw string) float64 {
	m := slabSizePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	length, err1 := strconv.ParseFloat(m[1], 64)
	width, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0
	}
	if length > 100 && width > 100 {
		length /= 1000
		width /= 1000
	}
	return length * width
}

// AvailableArea reports the material area a product can draw from. The wizard
// uses it to validate piece layouts against the selected slabs; it never
// feeds the pricing rules.
//
// Fixed-area product types always report their constant, regardless of any
// slab fields. Luxone-supplied material reports 0, meaning no customer-imposed
// cap: the company cuts from its own stock.
func AvailableArea(p ProductSelection, rates Rates) float64 {
	switch p.ProductType {
	case ProductIsland:
		return rates.IslandAreaSqm
	case ProductBacksplash:
		return rates.BacksplashAreaSqm
	}

	switch p.MaterialSource {
	case SourceYourself:
		slabs := p.NumberOfSlabs
		if slabs < 0 {
			slabs = 0
		}
		return SlabSizeArea(p.SlabSize) * float64(slabs)
	case SourceLuxoneOthers:
		return SlabSizeArea(p.LuxoneOthersSlabSize) * float64(parseSlabCount(p.RequiredSlabs))
	}
	return 0
}

// slabsRequired estimates how many standard slabs cover the total area.
func slabsRequired(totalSqm, slabAreaSqm float64) int {
	if totalSqm <= 0 || slabAreaSqm <= 0 {
		return 0
	}
	return int(math.Ceil(totalSqm / slabAreaSqm))
}
