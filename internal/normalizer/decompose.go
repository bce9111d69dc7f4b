package normalizer

import (
	"reviewmart/internal/models"
)

// decompose projects the cleaned rows into the fact table and the four
// dimensions. Each dimension deduplicates by its natural key with the first
// occurrence in row order winning; noisy sources can carry conflicting
// attribute values for the same key, and picking the first is deterministic
// where picking the "best" would not be.
//
// Fact rows get review_id = 1..N in the current row order.
func decompose(rows []merged) *models.Warehouse {
	w := &models.Warehouse{
		Facts:     make([]models.ReviewFact, 0, len(rows)),
		Products:  []models.ProductDim{},
		Brands:    []models.BrandDim{},
		Reviewers: []models.ReviewerDim{},
		Dates:     []models.DateDim{},
	}

	seenProducts := make(map[string]bool)
	seenBrands := make(map[int64]bool)
	seenReviewers := make(map[int64]bool)
	seenDates := make(map[int64]bool)

	for i, m := range rows {
		if !seenProducts[m.product.ProductID] {
			seenProducts[m.product.ProductID] = true

			w.Products = append(w.Products, models.ProductDim{
				ProductID:        m.product.ProductID,
				ProductName:      m.review.ProductName,
				AvgProductRating: m.product.AvgProductRating,
				PriceUSD:         m.review.PriceUSD,
				ReviewsCount:     m.product.ReviewsCount,
				FavoritesCount:   m.product.FavoritesCount,
				VariationsCount:  m.product.VariationsCount,
				Category:         m.product.Category,
			})
		}

		if !seenBrands[m.product.BrandID] {
			seenBrands[m.product.BrandID] = true

			w.Brands = append(w.Brands, models.BrandDim{
				BrandID:   m.product.BrandID,
				BrandName: m.review.BrandName,
			})
		}

		if !seenReviewers[m.reviewerID] {
			seenReviewers[m.reviewerID] = true

			w.Reviewers = append(w.Reviewers, models.ReviewerDim{
				ReviewerID: m.reviewerID,
				SkinTone:   *m.review.SkinTone,
				EyeColor:   *m.review.EyeColor,
				SkinType:   *m.review.SkinType,
				HairColor:  *m.review.HairColor,
			})
		}

		if key := m.submittedAt.UnixNano(); !seenDates[key] {
			seenDates[key] = true

			w.Dates = append(w.Dates, models.DateDim{
				DateID: m.submittedAt,
				Year:   m.submittedAt.Year(),
				Month:  int(m.submittedAt.Month()),
				Day:    m.submittedAt.Day(),
			})
		}

		w.Facts = append(w.Facts, models.ReviewFact{
			ReviewID:     int64(i + 1),
			ProductID:    m.product.ProductID,
			BrandID:      m.product.BrandID,
			ReviewerID:   m.reviewerID,
			DateID:       m.submittedAt,
			ReviewTitle:  *m.review.ReviewTitle,
			ReviewText:   *m.review.ReviewText,
			ReviewRating: m.review.ReviewRating,
		})
	}

	return w
}
