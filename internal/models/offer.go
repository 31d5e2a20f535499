package models

type OfferType string

const (
	OfferTypeMass         OfferType = "Mass"
	OfferTypePersonalized OfferType = "Personalized"
)

type OfferTemplate string

const (
	TemplateBOGO               OfferTemplate = "Buy One Get One Free"
	TemplateSingleItemDiscount OfferTemplate = "Single Item Discount"
	TemplateMultiItemDiscount  OfferTemplate = "Multi-Item Discount"
	TemplatePercentOffTotal    OfferTemplate = "% Off Total Order"
	TemplateFixedOffTotal      OfferTemplate = "$ Off Total Order"
	TemplateCustom             OfferTemplate = "Custom Template"
)

type OfferTimingKey string

const (
	TimingAnytime   OfferTimingKey = "Anytime"
	TimingWeekday   OfferTimingKey = "Weekday"
	TimingWeekend   OfferTimingKey = "Weekend"
	TimingMonday    OfferTimingKey = "Monday"
	TimingTuesday   OfferTimingKey = "Tuesday"
	TimingWednesday OfferTimingKey = "Wednesday"
	TimingThursday  OfferTimingKey = "Thursday"
	TimingFriday    OfferTimingKey = "Friday"
	TimingSaturday  OfferTimingKey = "Saturday"
	TimingSunday    OfferTimingKey = "Sunday"
)

// OfferDuration holds the validity window as YYYY-MM-DD strings.
// toDate >= fromDate is enforced at commit time, not while editing.
type OfferDuration struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// Offer is a banked promotional offer. Name and Description are derived
// once from the draft snapshot at creation and never recomputed.
type Offer struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Type          OfferType        `json:"type"`
	Duration      OfferDuration    `json:"duration"`
	Cycles        string           `json:"cycles,omitempty"`
	Segments      []string         `json:"segments,omitempty"`
	Products      []string         `json:"products"`
	Template      OfferTemplate    `json:"template"`
	DiscountDepth string           `json:"discountDepth"`
	Timing        []OfferTimingKey `json:"timing"`
	IsActive      bool             `json:"isActive"`
}

// OfferConfig is the in-progress draft an Offer is built from.
type OfferConfig struct {
	Type          OfferType        `json:"type"`
	Duration      OfferDuration    `json:"duration"`
	Cycles        string           `json:"cycles,omitempty"`
	Segments      []string         `json:"segments"`
	Products      []string         `json:"products"`
	Template      OfferTemplate    `json:"template"`
	DiscountDepth string           `json:"discountDepth"`
	Timing        []OfferTimingKey `json:"timing"`
}

// Product is a read-only catalog entry; offers reference products by name.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
