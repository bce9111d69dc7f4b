// Package models defines data structures for the review warehouse pipeline.
package models

// RawProduct is one row of the product extract. Nullable source columns are
// pointers so an empty field decodes to nil rather than a zero value.
//
// The product extract carries a "rating" column; it is mapped to
// AvgProductRating here so the join cannot collide with the review-side
// rating.
type RawProduct struct {
	ProductID        string   `csv:"product_id"`
	BrandID          int64    `csv:"brand_id"`
	FavoritesCount   *int64   `csv:"favorites_count"`
	AvgProductRating *float64 `csv:"rating"`
	ReviewsCount     *float64 `csv:"reviews"`
	VariationsCount  *int64   `csv:"variation_count"`
	Category         *string  `csv:"category"`
}

// RawReview is one row of the review extract. ReviewerID stays a string
// until the normalizer has applied the all-digits filter, and the review
// "rating" column maps to ReviewRating for the same collision reason as
// RawProduct.
type RawReview struct {
	ProductID      string  `csv:"product_id"`
	ReviewerID     string  `csv:"reviewer_id"`
	ReviewRating   *int64  `csv:"rating"`
	SubmissionTime string  `csv:"submission_time"`
	ReviewText     *string `csv:"review_text"`
	ReviewTitle    *string `csv:"review_title"`
	SkinTone       *string `csv:"skin_tone"`
	EyeColor       *string `csv:"eye_color"`
	SkinType       *string `csv:"skin_type"`
	HairColor      *string `csv:"hair_color"`
	ProductName    string  `csv:"product_name"`
	BrandName      string  `csv:"brand_name"`
	PriceUSD       float64 `csv:"price_usd"`
}
