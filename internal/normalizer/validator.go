package normalizer

import (
	"errors"
	"fmt"

	"reviewmart/internal/models"
)

// Output validation errors.
var (
	ErrDuplicateKey      = errors.New("duplicate dimension key")
	ErrDanglingReference = errors.New("fact row references a key absent from its dimension")
	ErrInconsistentDate  = errors.New("date parts inconsistent with date_id")
)

// Validator checks a warehouse bundle against the star-schema invariants
// before it is handed to the loader: unique keys per dimension, referential
// closure of every fact row, and date parts consistent with the date key.
// A violation here is a bug in the transform, not bad input.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every invariant and returns the first violation found.
func (v *Validator) Validate(w *models.Warehouse) error {
	products := make(map[string]bool, len(w.Products))
	for _, p := range w.Products {
		if products[p.ProductID] {
			return fmt.Errorf("%w: product %q", ErrDuplicateKey, p.ProductID)
		}

		products[p.ProductID] = true
	}

	brands := make(map[int64]bool, len(w.Brands))
	for _, b := range w.Brands {
		if brands[b.BrandID] {
			return fmt.Errorf("%w: brand %d", ErrDuplicateKey, b.BrandID)
		}

		brands[b.BrandID] = true
	}

	reviewers := make(map[int64]bool, len(w.Reviewers))
	for _, r := range w.Reviewers {
		if reviewers[r.ReviewerID] {
			return fmt.Errorf("%w: reviewer %d", ErrDuplicateKey, r.ReviewerID)
		}

		reviewers[r.ReviewerID] = true
	}

	dates := make(map[int64]bool, len(w.Dates))

	for _, d := range w.Dates {
		key := d.DateID.UnixNano()
		if dates[key] {
			return fmt.Errorf("%w: date %s", ErrDuplicateKey, d.DateID)
		}

		dates[key] = true

		if d.Year != d.DateID.Year() || d.Month != int(d.DateID.Month()) || d.Day != d.DateID.Day() {
			return fmt.Errorf("%w: %s", ErrInconsistentDate, d.DateID)
		}
	}

	for _, f := range w.Facts {
		if !products[f.ProductID] {
			return fmt.Errorf("%w: review %d -> product %q", ErrDanglingReference, f.ReviewID, f.ProductID)
		}

		if !brands[f.BrandID] {
			return fmt.Errorf("%w: review %d -> brand %d", ErrDanglingReference, f.ReviewID, f.BrandID)
		}

		if !reviewers[f.ReviewerID] {
			return fmt.Errorf("%w: review %d -> reviewer %d", ErrDanglingReference, f.ReviewID, f.ReviewerID)
		}

		if !dates[f.DateID.UnixNano()] {
			return fmt.Errorf("%w: review %d -> date %s", ErrDanglingReference, f.ReviewID, f.DateID)
		}
	}

	return nil
}
