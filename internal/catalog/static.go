package catalog

import (
	"context"
	"strings"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
)

// Static is an in-memory resolver keyed by "color|finish|thickness" with the
// color lowercased. It backs deterministic, database-free tests and demos.
type Static map[string]float64

// Key builds the lookup key used by Static.
func Key(colorName, finish, thickness string) string {
	if finish == "" {
		finish = quote.DefaultFinish
	}
	if thickness == "" {
		thickness = quote.DefaultThickness
	}
	return strings.ToLower(strings.TrimSpace(colorName)) + "|" + finish + "|" + thickness
}

func (s Static) ResolvePrice(_ context.Context, colorName, finish, thickness string) (float64, bool, error) {
	price, ok := s[Key(colorName, finish, thickness)]
	return price, ok, nil
}
