package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
)

// OfferingForm is the create/edit state for a catalog entry. Repeatable
// sections (features, requirements, exclusions, price table) are editable
// row slices; the JSON-text boundary lives entirely in Edit seeding and
// Params serialization.
type OfferingForm struct {
	Mode       string
	OfferingID uint

	Code            string
	Name            string
	Description     string
	Category        string
	Subcategory     string
	BasePrice       decimal.Decimal
	ImagePath       string
	Popular         bool
	WhatsAppMessage string

	Features     []models.FeatureEntry
	Requirements []models.FeatureEntry
	Exclusions   []models.FeatureEntry
	PriceTable   []models.PriceTier
}

// NewOfferingForm returns a create-mode form. Every repeatable section
// starts with a single empty placeholder row so there is always something
// to edit.
func NewOfferingForm() *OfferingForm {
	return &OfferingForm{
		Mode:         ModeCreate,
		Features:     []models.FeatureEntry{{}},
		Requirements: []models.FeatureEntry{{}},
		Exclusions:   []models.FeatureEntry{{}},
		PriceTable:   []models.PriceTier{{}},
	}
}

// EditOfferingForm returns an edit-mode form seeded from an existing
// offering. JSON-text fields are parsed into rows; absent or unparsable
// values fall back to a single empty placeholder row.
func EditOfferingForm(offering *models.Offering) *OfferingForm {
	return &OfferingForm{
		Mode:            ModeEdit,
		OfferingID:      offering.ID,
		Code:            offering.Code,
		Name:            offering.Name,
		Description:     offering.Description,
		Category:        offering.Category,
		Subcategory:     offering.Subcategory,
		BasePrice:       offering.BasePrice,
		ImagePath:       offering.ImagePath,
		Popular:         offering.Popular,
		WhatsAppMessage: offering.WhatsAppMessage,
		Features:        seedFeatureRows(offering.Features),
		Requirements:    seedFeatureRows(offering.Requirements),
		Exclusions:      seedFeatureRows(offering.Exclusions),
		PriceTable:      seedPriceRows(offering.PriceTable),
	}
}

// Validate runs the schema checks for the form
func (f *OfferingForm) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Code) == "" {
		fields["code"] = "service code is required"
	}
	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		fields["category"] = "category is required"
	}
	if f.BasePrice.IsNegative() {
		fields["base_price"] = "base price cannot be negative"
	}
	for _, tier := range compactPriceRows(f.PriceTable) {
		if !tier.Price.IsPositive() {
			fields["price_table"] = "every price-table row needs a positive price"
			break
		}
	}
	return newValidationError(fields)
}

// Params serializes the form back into an API request. Blank placeholder
// rows are dropped and empty sections are omitted from the wire entirely.
func (f *OfferingForm) Params() client.OfferingParams {
	return client.OfferingParams{
		Code:            strings.TrimSpace(f.Code),
		Name:            strings.TrimSpace(f.Name),
		Description:     f.Description,
		Category:        strings.TrimSpace(f.Category),
		Subcategory:     f.Subcategory,
		BasePrice:       f.BasePrice,
		PriceTable:      models.EncodePriceTable(compactPriceRows(f.PriceTable)),
		Features:        models.EncodeFeatureList(compactFeatureRows(f.Features)),
		Requirements:    models.EncodeFeatureList(compactFeatureRows(f.Requirements)),
		Exclusions:      models.EncodeFeatureList(compactFeatureRows(f.Exclusions)),
		ImagePath:       f.ImagePath,
		Popular:         f.Popular,
		WhatsAppMessage: f.WhatsAppMessage,
	}
}

// seedFeatureRows parses a JSON-text list, defaulting to one placeholder row
func seedFeatureRows(raw string) []models.FeatureEntry {
	entries := models.ParseFeatureList(raw)
	if len(entries) == 0 {
		return []models.FeatureEntry{{}}
	}
	return entries
}

// seedPriceRows parses a JSON-text price table, defaulting to one placeholder row
func seedPriceRows(raw string) []models.PriceTier {
	tiers := models.ParsePriceTable(raw)
	if len(tiers) == 0 {
		return []models.PriceTier{{}}
	}
	return tiers
}

// compactFeatureRows drops rows whose label is blank
func compactFeatureRows(entries []models.FeatureEntry) []models.FeatureEntry {
	var out []models.FeatureEntry
	for _, entry := range entries {
		if strings.TrimSpace(entry.Label) != "" {
			out = append(out, entry)
		}
	}
	return out
}

// compactPriceRows drops rows whose tier is blank
func compactPriceRows(tiers []models.PriceTier) []models.PriceTier {
	var out []models.PriceTier
	for _, tier := range tiers {
		if strings.TrimSpace(tier.Tier) != "" {
			out = append(out, tier)
		}
	}
	return out
}
