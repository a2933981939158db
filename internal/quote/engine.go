// Package quote computes itemized price estimates for stone-worktop
// quotations. Calculate is a pure function of the configuration, the rate
// table and the material catalog: it keeps no state between calls and never
// fails on incomplete customer data.
package quote

import (
	"context"
	"errors"
)

// ErrNilConfiguration reports a caller contract violation; incomplete user
// data never produces an error.
var ErrNilConfiguration = errors.New("quote: nil configuration")

// legacyProductID keys the synthetic product built from the flat
// single-product fields.
const legacyProductID = "main"

// Calculate turns a customer configuration into an itemized breakdown.
// Every numeric parse failure and every catalog miss degrades to a zero
// line item, so a partially filled wizard still previews a valid estimate.
func Calculate(ctx context.Context, cfg *QuoteConfiguration, rates Rates, resolver PriceResolver) (Breakdown, error) {
	if cfg == nil {
		return Breakdown{}, ErrNilConfiguration
	}

	products := normalizeProducts(cfg)
	areas := aggregateAreas(products)
	materialCosts := resolveMaterialCosts(ctx, products, areas.perProduct, resolver)

	b := Breakdown{
		TotalSqm:         areas.total,
		SlabsRequired:    slabsRequired(areas.total, rates.SlabAreaSqm),
		ProductBreakdown: make(map[string]ProductCost, len(products)),
	}
	for _, cost := range materialCosts {
		b.MaterialCost += cost
	}

	full := cfg.ServiceLevel == ServiceFabricationDeliveryInst
	withDelivery := full || cfg.ServiceLevel == ServiceFabricationDelivery

	if full {
		b.Cutting = rates.CuttingPerSqm * b.TotalSqm
		b.TopPolishing = rates.TopPolishingPerSqm * b.TotalSqm
		b.Polishing = rates.PolishingPerSqm * b.TotalSqm
		b.Installation = rates.InstallationPerSqm * b.TotalSqm

		if cfg.ButtJointPolish {
			b.ButtJointPolish = rates.ButtJointPolishPerSqm * b.TotalSqm
		}
		if cfg.CustomEdgeAddon {
			b.CustomEdge = rates.CustomEdgeFlat
		}
		if cfg.HobCutOutAddon {
			b.HobCutOut = rates.HobCutOutFlat
		}
		if cfg.DrainGroovesAddon {
			b.DrainGrooves = rates.DrainGroovesFlat
		}
		if cfg.SmallHoles > 0 {
			b.SmallHoles = rates.SmallHolePerUnit * float64(cfg.SmallHoles)
		}
	}

	// Sink supply is independent of the service level.
	switch cfg.SinkCategory {
	case SinkCategoryLuxone:
		b.SinkCost = rates.SinkLuxone
	case SinkCategoryClient:
		switch cfg.SinkType {
		case SinkUnderMounted:
			b.SinkCost = rates.SinkClientUnderMounted
		case SinkTopMounted:
			b.SinkCost = rates.SinkClientTopMounted
		}
	}

	if withDelivery && cfg.DeliveryLocation != "" {
		if cfg.DeliveryLocation == DeliveryDubai {
			b.Delivery = rates.DeliveryDubai
		} else {
			b.Delivery = rates.DeliveryOtherUAE
		}
	}

	b.Subtotal = b.MaterialCost + b.Cutting + b.TopPolishing + b.Polishing +
		b.ButtJointPolish + b.CustomEdge + b.HobCutOut + b.DrainGrooves +
		b.SmallHoles + b.SinkCost + b.Delivery + b.Installation
	b.Margin = b.Subtotal * rates.MarginRate
	b.SubtotalWithMargin = b.Subtotal + b.Margin
	b.VAT = b.SubtotalWithMargin * rates.VATRate
	b.GrandTotal = b.SubtotalWithMargin + b.VAT

	// Per-square-meter processing attributed to the product carrying the
	// area; flat quote-level charges are not split across products.
	var processingPerSqm float64
	if full {
		processingPerSqm = rates.CuttingPerSqm + rates.TopPolishingPerSqm +
			rates.PolishingPerSqm + rates.InstallationPerSqm
		if cfg.ButtJointPolish {
			processingPerSqm += rates.ButtJointPolishPerSqm
		}
	}
	for _, p := range products {
		area := areas.perProduct[p.ID]
		pc := ProductCost{
			ProductType:    p.ProductType,
			Quantity:       productQuantity(p),
			Area:           area,
			MaterialCost:   materialCosts[p.ID],
			ProcessingCost: processingPerSqm * area,
		}
		pc.TotalCost = pc.MaterialCost + pc.ProcessingCost
		b.ProductBreakdown[p.ID] = pc
	}

	return b, nil
}

// normalizeProducts collapses the dual input shape into the list form. The
// flat single-product fields are consulted only when the product list is
// empty; from here on the pipeline never sees them again.
func normalizeProducts(cfg *QuoteConfiguration) []ProductSelection {
	if len(cfg.SelectedProducts) > 0 {
		return cfg.SelectedProducts
	}
	if cfg.MaterialSource == "" && len(cfg.Pieces) == 0 {
		return nil
	}
	return []ProductSelection{{
		ID:             legacyProductID,
		ProductType:    ProductKitchenTop,
		Quantity:       1,
		MaterialSource: cfg.MaterialSource,
		MaterialType:   cfg.MaterialType,
		MaterialColor:  cfg.MaterialColor,
		Finish:         cfg.Finish,
		Thickness:      cfg.Thickness,
		SlabSize:       cfg.SlabSize,
		NumberOfSlabs:  cfg.NumberOfSlabs,
		Pieces:         cfg.Pieces,
	}}
}
