package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Offering represents a sellable service catalog entry
type Offering struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Code            string          `gorm:"uniqueIndex;not null" json:"code"` // unique service code, e.g. "CLN-DEEP"
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"not null;index" json:"category"`
	Subcategory     string          `json:"subcategory"`
	BasePrice       decimal.Decimal `gorm:"type:decimal(10,2)" json:"base_price"`
	PriceTable      string          `gorm:"type:text" json:"price_table"`  // JSON array of price tiers, empty when flat-priced
	Features        string          `gorm:"type:text" json:"features"`     // JSON array of feature entries
	Requirements    string          `gorm:"type:text" json:"requirements"` // JSON array of feature entries
	Exclusions      string          `gorm:"type:text" json:"exclusions"`   // JSON array of feature entries
	ImagePath       string          `json:"image_path"`
	Popular         bool            `gorm:"default:false" json:"popular"`
	WhatsAppMessage string          `gorm:"type:text" json:"whatsapp_message"` // share-message template
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Offering model
func (Offering) TableName() string {
	return "offerings"
}

// FeatureEntry is one row of a feature, requirement or exclusion list
type FeatureEntry struct {
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// PriceTier is one row of an offering's price table
type PriceTier struct {
	Tier     string          `json:"tier"` // BHK/size descriptor, e.g. "2 BHK"
	Duration string          `json:"duration"`
	Price    decimal.Decimal `json:"price"`
}

// ParseFeatureList decodes a JSON-text feature list column.
// Absent or unparsable text yields nil rather than an error; the column
// is advisory display data and a bad value must not break a read path.
func ParseFeatureList(raw string) []FeatureEntry {
	if raw == "" {
		return nil
	}
	var entries []FeatureEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}

// EncodeFeatureList encodes a feature list for storage.
// Empty lists encode to the empty string so the column stays blank
// instead of holding a literal "[]".
func EncodeFeatureList(entries []FeatureEntry) string {
	if len(entries) == 0 {
		return ""
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return string(data)
}

// ParsePriceTable decodes a JSON-text price table column.
// Absent or unparsable text yields nil.
func ParsePriceTable(raw string) []PriceTier {
	if raw == "" {
		return nil
	}
	var tiers []PriceTier
	if err := json.Unmarshal([]byte(raw), &tiers); err != nil {
		return nil
	}
	return tiers
}

// EncodePriceTable encodes a price table for storage.
// Empty tables encode to the empty string.
func EncodePriceTable(tiers []PriceTier) string {
	if len(tiers) == 0 {
		return ""
	}
	data, err := json.Marshal(tiers)
	if err != nil {
		return ""
	}
	return string(data)
}

// HasPriceTable reports whether the offering prices by tier.
// Offerings with a price table require a tier selection when ordered.
func (o *Offering) HasPriceTable() bool {
	return len(ParsePriceTable(o.PriceTable)) > 0
}

// TierPrice returns the price for the given tier from the offering's
// price table. The second return value is false when the offering has
// no price table or the tier is not listed.
func (o *Offering) TierPrice(tier string) (decimal.Decimal, bool) {
	for _, t := range ParsePriceTable(o.PriceTable) {
		if t.Tier == tier {
			return t.Price, true
		}
	}
	return decimal.Zero, false
}
