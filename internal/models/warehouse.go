package models

import "time"

// ProductDim is one row of the product dimension, keyed by ProductID.
// Attributes with no imputation policy stay nullable.
type ProductDim struct {
	ProductID        string   `db:"product_id" json:"productId"`
	ProductName      string   `db:"product_name" json:"productName"`
	AvgProductRating *float64 `db:"avg_product_rating" json:"avgProductRating"`
	PriceUSD         float64  `db:"price_usd" json:"priceUsd"`
	ReviewsCount     *float64 `db:"reviews_count" json:"reviewsCount"`
	FavoritesCount   *int64   `db:"favorites_count" json:"favoritesCount"`
	VariationsCount  *int64   `db:"variations_count" json:"variationsCount"`
	Category         *string  `db:"category" json:"category"`
}

// BrandDim is one row of the brand dimension, keyed by BrandID.
type BrandDim struct {
	BrandID   int64  `db:"brand_id" json:"brandId"`
	BrandName string `db:"brand_name" json:"brandName"`
}

// ReviewerDim is one row of the reviewer dimension, keyed by the numeric
// ReviewerID. The categorical attributes are never null here: rows survive
// cleaning only after mode imputation has filled them.
type ReviewerDim struct {
	ReviewerID int64  `db:"reviewer_id" json:"reviewerId"`
	SkinTone   string `db:"skin_tone" json:"skinTone"`
	EyeColor   string `db:"eye_color" json:"eyeColor"`
	SkinType   string `db:"skin_type" json:"skinType"`
	HairColor  string `db:"hair_color" json:"hairColor"`
}

// DateDim is one row of the date dimension, keyed by the parsed timestamp.
// Year/Month/Day are derived from DateID and must stay consistent with it.
type DateDim struct {
	DateID time.Time `db:"date_id" json:"dateId"`
	Year   int       `db:"year" json:"year"`
	Month  int       `db:"month" json:"month"`
	Day    int       `db:"day" json:"day"`
}

// ReviewFact is one row of the fact table. ReviewID is a synthetic 1-based
// surrogate assigned in post-cleaning row order; it is not stable across
// runs with different input ordering.
type ReviewFact struct {
	ReviewID     int64     `db:"review_id" json:"reviewId"`
	ProductID    string    `db:"product_id" json:"productId"`
	BrandID      int64     `db:"brand_id" json:"brandId"`
	ReviewerID   int64     `db:"reviewer_id" json:"reviewerId"`
	DateID       time.Time `db:"date_id" json:"dateId"`
	ReviewTitle  string    `db:"review_title" json:"reviewTitle"`
	ReviewText   string    `db:"review_text" json:"reviewText"`
	ReviewRating *int64    `db:"review_rating" json:"reviewRating"`
}

// Warehouse bundles the five outputs of one normalizer run. The bundle is
// handed to the loader atomically: all five tables or none.
type Warehouse struct {
	Facts     []ReviewFact  `json:"facts"`
	Products  []ProductDim  `json:"products"`
	Brands    []BrandDim    `json:"brands"`
	Reviewers []ReviewerDim `json:"reviewers"`
	Dates     []DateDim     `json:"dates"`
}
