package quote

// Rates is the injected rate table for one calculation. The admin-edited
// rate_config row feeds these values at runtime; DefaultRates supplies the
// published price list.
type Rates struct {
	// Basic processing, per square meter of worktop.
	CuttingPerSqm         float64
	TopPolishingPerSqm    float64
	PolishingPerSqm       float64
	ButtJointPolishPerSqm float64

	// Optional add-ons.
	CustomEdgeFlat   float64
	HobCutOutFlat    float64
	DrainGroovesFlat float64
	SmallHolePerUnit float64

	// Sink supply and fitting.
	SinkClientUnderMounted float64
	SinkClientTopMounted   float64
	SinkLuxone             float64

	// Logistics.
	DeliveryDubai      float64
	DeliveryOtherUAE   float64
	InstallationPerSqm float64

	// MarginRate and VATRate are fractions, not percentages.
	MarginRate float64
	VATRate    float64

	// SlabAreaSqm is the area of one standard slab, used for the
	// slabs-required estimate.
	SlabAreaSqm float64

	// Fixed available areas for the two fixed-area product types.
	IslandAreaSqm     float64
	BacksplashAreaSqm float64
}

// DefaultRates returns the published AED price list with UAE VAT and the
// standard 3.2m x 1.6m slab.
func DefaultRates() Rates {
	return Rates{
		CuttingPerSqm:         40,
		TopPolishingPerSqm:    80,
		PolishingPerSqm:       40,
		ButtJointPolishPerSqm: 50,

		CustomEdgeFlat:   200,
		HobCutOutFlat:    100,
		DrainGroovesFlat: 250,
		SmallHolePerUnit: 25,

		SinkClientUnderMounted: 250,
		SinkClientTopMounted:   200,
		SinkLuxone:             900,

		DeliveryDubai:      500,
		DeliveryOtherUAE:   800,
		InstallationPerSqm: 80,

		MarginRate: 0.20,
		VATRate:    0.05,

		SlabAreaSqm: 5.12,

		IslandAreaSqm:     10.24,
		BacksplashAreaSqm: 20.58,
	}
}
