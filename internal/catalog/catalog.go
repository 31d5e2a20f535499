// Package catalog holds the static reference data the configurator offers
// choices from: the QSR product list, customer segments, offer templates and
// timing keys. The data is fixed at build time and read-only at runtime.
package catalog

import "github.com/qsr-digital/offer-configurator/internal/models"

var segments = []string{
	"Occasional Customers",
	"Big Spenders",
	"Premium Members",
	"New Users",
	"Lapsed Users",
	"Students",
	"Seniors",
	"Families",
}

var templates = []models.OfferTemplate{
	models.TemplateBOGO,
	models.TemplateSingleItemDiscount,
	models.TemplateMultiItemDiscount,
	models.TemplatePercentOffTotal,
	models.TemplateFixedOffTotal,
	models.TemplateCustom,
}

var timings = []models.OfferTimingKey{
	models.TimingAnytime,
	models.TimingWeekday,
	models.TimingWeekend,
	models.TimingMonday,
	models.TimingTuesday,
	models.TimingWednesday,
	models.TimingThursday,
	models.TimingFriday,
	models.TimingSaturday,
	models.TimingSunday,
}

var products = []models.Product{
	{ID: "prod_001", Name: "Classic Burger", Category: "Burgers"},
	{ID: "prod_002", Name: "Cheeseburger Deluxe", Category: "Burgers"},
	{ID: "prod_003", Name: "Veggie Burger Supreme", Category: "Burgers"},
	{ID: "prod_004", Name: "Spicy Chicken Sandwich", Category: "Chicken"},
	{ID: "prod_005", Name: "Grilled Chicken Wrap", Category: "Chicken"},
	{ID: "prod_006", Name: "Fries (Small)", Category: "Sides"},
	{ID: "prod_007", Name: "Fries (Large)", Category: "Sides"},
	{ID: "prod_008", Name: "Onion Rings", Category: "Sides"},
	{ID: "prod_009", Name: "Garden Salad", Category: "Salads"},
	{ID: "prod_010", Name: "Caesar Salad", Category: "Salads"},
	{ID: "prod_011", Name: "Soda (Regular)", Category: "Drinks"},
	{ID: "prod_012", Name: "Soda (Large)", Category: "Drinks"},
	{ID: "prod_013", Name: "Iced Tea", Category: "Drinks"},
	{ID: "prod_014", Name: "Bottled Water", Category: "Drinks"},
	{ID: "prod_015", Name: "Milkshake (Vanilla)", Category: "Desserts"},
	{ID: "prod_016", Name: "Milkshake (Chocolate)", Category: "Desserts"},
	{ID: "prod_017", Name: "Apple Pie Slice", Category: "Desserts"},
	{ID: "prod_018", Name: "Soft Serve Cone", Category: "Desserts"},
	{ID: "prod_019", Name: "Kids Meal - Burger", Category: "Kids Meals"},
	{ID: "prod_020", Name: "Kids Meal - Nuggets", Category: "Kids Meals"},
}

// Products returns a copy of the product list.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Segments returns a copy of the segment name list.
func Segments() []string {
	out := make([]string, len(segments))
	copy(out, segments)
	return out
}

// Templates returns a copy of the offer template list.
func Templates() []models.OfferTemplate {
	out := make([]models.OfferTemplate, len(templates))
	copy(out, templates)
	return out
}

// Timings returns a copy of the timing key list.
func Timings() []models.OfferTimingKey {
	out := make([]models.OfferTimingKey, len(timings))
	copy(out, timings)
	return out
}

// ProductByName looks a product up by its display name.
func ProductByName(name string) (models.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}
