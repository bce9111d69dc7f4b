package normalizer

import (
	"time"

	"reviewmart/internal/models"
)

// merged is one joined row. The raw halves stay intact; derived fields are
// filled in by later steps. Steps copy the struct by value and replace
// pointer fields wholesale instead of writing through them, so earlier
// snapshots are never mutated.
type merged struct {
	product models.RawProduct
	review  models.RawReview

	// set by deriveDates
	submittedAt time.Time

	// set by filterNumericReviewers
	reviewerID int64
}

// joinOnProduct inner-joins the two extracts on product_id, preserving
// review row order. Reviews without a matching product and products that
// never match a review are dropped silently; both losses are counted on the
// report because that is expected behavior, not an error.
//
// Duplicate product_id rows in the product extract resolve to the first
// occurrence.
func joinOnProduct(products []models.RawProduct, reviews []models.RawReview, report *Report) []merged {
	byID := make(map[string]models.RawProduct, len(products))
	for _, p := range products {
		if _, ok := byID[p.ProductID]; !ok {
			byID[p.ProductID] = p
		}
	}

	matched := make(map[string]bool, len(byID))

	rows := make([]merged, 0, len(reviews))

	for _, r := range reviews {
		p, ok := byID[r.ProductID]
		if !ok {
			report.ReviewsWithoutProduct++

			continue
		}

		matched[r.ProductID] = true

		rows = append(rows, merged{product: p, review: r})
	}

	for id := range byID {
		if !matched[id] {
			report.ProductsWithoutReviews++
		}
	}

	return rows
}
