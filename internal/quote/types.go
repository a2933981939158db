package quote

// Service levels selected in the first wizard step. The level gates which
// processing and logistics charges apply.
const (
	ServiceFabrication             = "fabrication"
	ServiceFabricationDelivery     = "fabrication-delivery"
	ServiceFabricationDeliveryInst = "fabrication-delivery-installation"
)

// Material sources. Each source has its own costing rule.
const (
	SourceLuxone       = "luxone"
	SourceYourself     = "yourself"
	SourceLuxoneOthers = "luxone-others"
)

// Sink selection values.
const (
	SinkCategoryClient = "client"
	SinkCategoryLuxone = "luxone"
	SinkUnderMounted   = "under-mounted"
	SinkTopMounted     = "top-mounted"
)

// DeliveryDubai is the only delivery location with its own flat rate; any
// other non-empty location is charged at the rest-of-UAE rate.
const DeliveryDubai = "dubai"

// Product types offered by the wizard. Island and Backsplash carry a fixed
// available area and ignore any slab-size fields.
const (
	ProductKitchenTop = "Kitchen Top"
	ProductIsland     = "Island"
	ProductBacksplash = "Backsplash"
	ProductVanityTop  = "Vanity Top"
	ProductBarCounter = "Bar Counter"
	ProductWindowSill = "Window Sill"
	ProductStairs     = "Stairs"
)

// Piece is one rectangular cut belonging to a product. Dimensions are
// string-encoded decimals in meters, exactly as submitted by the wizard.
// A piece missing either dimension contributes no area.
type Piece struct {
	Length    string `json:"length,omitempty"`
	Width     string `json:"width,omitempty"`
	Thickness string `json:"thickness,omitempty"`
}

// ProductSelection is one independently priced product line.
type ProductSelection struct {
	ID          string `json:"id"`
	ProductType string `json:"productType,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`

	MaterialSource string `json:"materialSource,omitempty"`

	// Luxone-supplied material: catalog lookup fields.
	MaterialType  string `json:"materialType,omitempty"`
	MaterialColor string `json:"materialColor,omitempty"`
	Finish        string `json:"finish,omitempty"`
	Thickness     string `json:"thickness,omitempty"`

	// Customer-supplied material: describes the slabs the customer owns.
	SlabSize      string `json:"slabSize,omitempty"`
	NumberOfSlabs int    `json:"numberOfSlabs,omitempty"`

	// Third-party-supplied material, bought as whole slabs.
	LuxoneOthersSlabSize  string `json:"luxoneOthersSlabSize,omitempty"`
	RequiredSlabs         string `json:"requiredSlabs,omitempty"`
	PricePerSlab          string `json:"pricePerSlab,omitempty"`
	BrandSupplier         string `json:"brandSupplier,omitempty"`
	LuxoneOthersColorName string `json:"luxoneOthersColorName,omitempty"`
	LuxoneOthersThickness string `json:"luxoneOthersThickness,omitempty"`
	LuxoneOthersFinish    string `json:"luxoneOthersFinish,omitempty"`

	Pieces map[string]Piece `json:"pieces,omitempty"`
}

// QuoteConfiguration is the full customer input for one quote attempt, built
// incrementally by the wizard and passed whole on every recalculation.
//
// The flat material/piece fields mirror the shape of a single product and are
// only consulted when SelectedProducts is empty; when both are present the
// product list wins.
type QuoteConfiguration struct {
	ServiceLevel     string             `json:"serviceLevel,omitempty"`
	SelectedProducts []ProductSelection `json:"selectedProducts,omitempty"`

	MaterialSource string           `json:"materialSource,omitempty"`
	MaterialType   string           `json:"materialType,omitempty"`
	MaterialColor  string           `json:"materialColor,omitempty"`
	Finish         string           `json:"finish,omitempty"`
	Thickness      string           `json:"thickness,omitempty"`
	SlabSize       string           `json:"slabSize,omitempty"`
	NumberOfSlabs  int              `json:"numberOfSlabs,omitempty"`
	Pieces         map[string]Piece `json:"pieces,omitempty"`

	ButtJointPolish   bool `json:"buttJointPolish,omitempty"`
	CustomEdgeAddon   bool `json:"customEdgeAddon,omitempty"`
	HobCutOutAddon    bool `json:"hobCutOutAddon,omitempty"`
	DrainGroovesAddon bool `json:"drainGroovesAddon,omitempty"`
	SmallHoles        int  `json:"smallHoles,omitempty"`

	SinkCategory string `json:"sinkCategory,omitempty"`
	SinkType     string `json:"sinkType,omitempty"`

	DeliveryLocation string `json:"deliveryLocation,omitempty"`

	// Contact block, carried through persistence untouched; the pricing
	// rules never read these.
	CustomerName     string `json:"customerName,omitempty"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	CustomerPhone    string `json:"customerPhone,omitempty"`
	CustomerLocation string `json:"customerLocation,omitempty"`
	Comments         string `json:"comments,omitempty"`
}

// ProductCost is the per-product slice of the breakdown. Area-proportional
// processing charges are attributed to the product that carries the area;
// quote-level flat charges appear only in the Breakdown totals.
type ProductCost struct {
	ProductType    string  `json:"productType"`
	Quantity       int     `json:"quantity"`
	Area           float64 `json:"area"`
	MaterialCost   float64 `json:"materialCost"`
	ProcessingCost float64 `json:"processingCost"`
	TotalCost      float64 `json:"totalCost"`
}

// Breakdown is the itemized pricing result. Every field is always present;
// a line whose gate is not satisfied is zero, never omitted. All monetary
// values are unrounded AED; rounding is a presentation concern.
type Breakdown struct {
	MaterialCost    float64 `json:"materialCost"`
	Cutting         float64 `json:"cutting"`
	TopPolishing    float64 `json:"topPolishing"`
	Polishing       float64 `json:"polishing"`
	ButtJointPolish float64 `json:"buttJointPolish"`
	CustomEdge      float64 `json:"customEdge"`
	HobCutOut       float64 `json:"hobCutOut"`
	DrainGrooves    float64 `json:"drainGrooves"`
	SmallHoles      float64 `json:"smallHoles"`
	SinkCost        float64 `json:"sinkCost"`
	Installation    float64 `json:"installation"`
	Delivery        float64 `json:"delivery"`

	Subtotal           float64 `json:"subtotal"`
	Margin             float64 `json:"margin"`
	SubtotalWithMargin float64 `json:"subtotalWithMargin"`
	VAT                float64 `json:"vat"`
	GrandTotal         float64 `json:"grandTotal"`

	TotalSqm      float64 `json:"totalSqm"`
	SlabsRequired int     `json:"slabsRequired"`

	ProductBreakdown map[string]ProductCost `json:"productBreakdown"`
}
