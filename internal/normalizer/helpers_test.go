package normalizer

import (
	"reviewmart/internal/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func float64Ptr(f float64) *float64 { return &f }

// testProduct builds a raw product with representative attributes.
func testProduct(id string, brandID int64) models.RawProduct {
	return models.RawProduct{
		ProductID:        id,
		BrandID:          brandID,
		FavoritesCount:   int64Ptr(100),
		AvgProductRating: float64Ptr(4.2),
		ReviewsCount:     float64Ptr(50),
		VariationsCount:  int64Ptr(2),
		Category:         strPtr("Skincare"),
	}
}

// testReview builds a raw review that survives every cleaning step: text
// present, all-digit reviewer id, parseable date, categoricals filled.
func testReview(productID, reviewerID, text string) models.RawReview {
	return models.RawReview{
		ProductID:      productID,
		ReviewerID:     reviewerID,
		ReviewRating:   int64Ptr(4),
		SubmissionTime: "2023-02-01",
		ReviewText:     strPtr(text),
		ReviewTitle:    strPtr("A title"),
		SkinTone:       strPtr("light"),
		EyeColor:       strPtr("brown"),
		SkinType:       strPtr("dry"),
		HairColor:      strPtr("black"),
		ProductName:    "Hydra Cream",
		BrandName:      "GlowCo",
		PriceUSD:       29.99,
	}
}
