package normalizer

import (
	"errors"
	"testing"
	"time"

	"reviewmart/internal/models"
)

// validWarehouse builds a minimal bundle that satisfies every invariant.
func validWarehouse() *models.Warehouse {
	date := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	return &models.Warehouse{
		Facts: []models.ReviewFact{{
			ReviewID:    1,
			ProductID:   "P1",
			BrandID:     7,
			ReviewerID:  100,
			DateID:      date,
			ReviewTitle: "A title",
			ReviewText:  "Great",
		}},
		Products:  []models.ProductDim{{ProductID: "P1", ProductName: "Hydra Cream", PriceUSD: 29.99}},
		Brands:    []models.BrandDim{{BrandID: 7, BrandName: "GlowCo"}},
		Reviewers: []models.ReviewerDim{{ReviewerID: 100, SkinTone: "light", EyeColor: "brown", SkinType: "dry", HairColor: "black"}},
		Dates:     []models.DateDim{{DateID: date, Year: 2023, Month: 2, Day: 1}},
	}
}

func TestValidator_AcceptsValidWarehouse(t *testing.T) {
	if err := NewValidator().Validate(validWarehouse()); err != nil {
		t.Fatalf("Validate returned unexpected error: %v", err)
	}
}

func TestValidator_RejectsDuplicateKeys(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Warehouse)
	}{
		{"product", func(w *models.Warehouse) { w.Products = append(w.Products, w.Products[0]) }},
		{"brand", func(w *models.Warehouse) { w.Brands = append(w.Brands, w.Brands[0]) }},
		{"reviewer", func(w *models.Warehouse) { w.Reviewers = append(w.Reviewers, w.Reviewers[0]) }},
		{"date", func(w *models.Warehouse) { w.Dates = append(w.Dates, w.Dates[0]) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := validWarehouse()
			tc.mutate(w)

			if err := NewValidator().Validate(w); !errors.Is(err, ErrDuplicateKey) {
				t.Fatalf("Expected ErrDuplicateKey, got %v", err)
			}
		})
	}
}

func TestValidator_RejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Warehouse)
	}{
		{"product", func(w *models.Warehouse) { w.Facts[0].ProductID = "P9" }},
		{"brand", func(w *models.Warehouse) { w.Facts[0].BrandID = 99 }},
		{"reviewer", func(w *models.Warehouse) { w.Facts[0].ReviewerID = 999 }},
		{"date", func(w *models.Warehouse) { w.Facts[0].DateID = w.Facts[0].DateID.AddDate(0, 0, 1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := validWarehouse()
			tc.mutate(w)

			if err := NewValidator().Validate(w); !errors.Is(err, ErrDanglingReference) {
				t.Fatalf("Expected ErrDanglingReference, got %v", err)
			}
		})
	}
}

func TestValidator_RejectsInconsistentDateParts(t *testing.T) {
	w := validWarehouse()
	w.Dates[0].Month = 3

	if err := NewValidator().Validate(w); !errors.Is(err, ErrInconsistentDate) {
		t.Fatalf("Expected ErrInconsistentDate, got %v", err)
	}
}
