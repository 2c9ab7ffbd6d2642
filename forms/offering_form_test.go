package forms

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/casacare/casacare-admin-api/models"
)

func TestNewOfferingFormStartsWithPlaceholderRows(t *testing.T) {
	form := NewOfferingForm()

	assert.Equal(t, ModeCreate, form.Mode)
	assert.Len(t, form.Features, 1)
	assert.Len(t, form.Requirements, 1)
	assert.Len(t, form.Exclusions, 1)
	assert.Len(t, form.PriceTable, 1)
	assert.Equal(t, models.FeatureEntry{}, form.Features[0])
}

func TestEditOfferingFormSeedsFromRecord(t *testing.T) {
	offering := &models.Offering{
		ID:        7,
		Code:      "CLN-DEEP",
		Name:      "Deep Cleaning",
		Category:  "Cleaning Services",
		BasePrice: decimal.NewFromInt(1999),
		Features:  `[{"label":"Fast"},{"label":"Eco friendly","icon":"leaf"}]`,
		PriceTable: models.EncodePriceTable([]models.PriceTier{
			{Tier: "2 BHK", Duration: "4 hours", Price: decimal.NewFromInt(2999)},
		}),
	}

	form := EditOfferingForm(offering)

	assert.Equal(t, ModeEdit, form.Mode)
	assert.Equal(t, uint(7), form.OfferingID)
	assert.Len(t, form.Features, 2)
	assert.Equal(t, "Fast", form.Features[0].Label)
	assert.Len(t, form.PriceTable, 1)
	assert.Equal(t, "2 BHK", form.PriceTable[0].Tier)

	// Absent sections fall back to a single placeholder row
	assert.Len(t, form.Requirements, 1)
	assert.Equal(t, models.FeatureEntry{}, form.Requirements[0])
}

func TestEditOfferingFormUnparsableJSONFallsBack(t *testing.T) {
	offering := &models.Offering{Code: "CLN", Name: "Cleaning", Features: "{broken"}

	form := EditOfferingForm(offering)

	assert.Len(t, form.Features, 1)
	assert.Equal(t, models.FeatureEntry{}, form.Features[0])
}

func TestOfferingFormValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(f *OfferingForm)
		expectedField string
	}{
		{
			name:          "Missing code",
			mutate:        func(f *OfferingForm) { f.Code = "   " },
			expectedField: "code",
		},
		{
			name:          "Missing name",
			mutate:        func(f *OfferingForm) { f.Name = "" },
			expectedField: "name",
		},
		{
			name:          "Missing category",
			mutate:        func(f *OfferingForm) { f.Category = "" },
			expectedField: "category",
		},
		{
			name:          "Negative base price",
			mutate:        func(f *OfferingForm) { f.BasePrice = decimal.NewFromInt(-1) },
			expectedField: "base_price",
		},
		{
			name: "Price tier without a positive price",
			mutate: func(f *OfferingForm) {
				f.PriceTable = []models.PriceTier{{Tier: "2 BHK"}}
			},
			expectedField: "price_table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewOfferingForm()
			form.Code = "CLN-DEEP"
			form.Name = "Deep Cleaning"
			form.Category = "Cleaning Services"
			tt.mutate(form)

			err := form.Validate()
			assert.Error(t, err)

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Fields, tt.expectedField)
		})
	}
}

func TestOfferingFormValidateOK(t *testing.T) {
	form := NewOfferingForm()
	form.Code = "CLN-DEEP"
	form.Name = "Deep Cleaning"
	form.Category = "Cleaning Services"
	form.BasePrice = decimal.NewFromInt(1999)

	assert.NoError(t, form.Validate())
}

func TestOfferingFormParamsRoundTrip(t *testing.T) {
	form := NewOfferingForm()
	form.Code = " CLN-DEEP "
	form.Name = "Deep Cleaning"
	form.Category = "Cleaning Services"
	form.Features = []models.FeatureEntry{{Label: "Fast"}}

	params := form.Params()

	assert.Equal(t, "CLN-DEEP", params.Code)

	// The feature rows survive serialization into the JSON-text field
	decoded := models.ParseFeatureList(params.Features)
	assert.Equal(t, []models.FeatureEntry{{Label: "Fast"}}, decoded)
}

func TestOfferingFormParamsDropsPlaceholderRows(t *testing.T) {
	form := NewOfferingForm()
	form.Code = "CLN-DEEP"
	form.Name = "Deep Cleaning"
	form.Category = "Cleaning Services"
	form.Features = []models.FeatureEntry{
		{Label: "Fast"},
		{}, // untouched placeholder
		{Label: "  "},
	}

	params := form.Params()

	assert.Len(t, models.ParseFeatureList(params.Features), 1)

	// Sections left entirely blank go out as empty strings, not "[]"
	assert.Equal(t, "", params.Requirements)
	assert.Equal(t, "", params.Exclusions)
	assert.Equal(t, "", params.PriceTable)
}
