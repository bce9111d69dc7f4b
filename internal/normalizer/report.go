package normalizer

import "reviewmart/internal/models"

// Report collects the observable counters of one normalizer run: rows lost
// to each documented drop policy, imputed values per column, and the size
// of every output table. Join loss and reviewer-id loss are silent by
// design, so these counters are the only place they show up.
type Report struct {
	ProductsWithoutReviews    int            `json:"productsWithoutReviews"`
	ReviewsWithoutProduct     int            `json:"reviewsWithoutProduct"`
	EmptyTextDropped          int            `json:"emptyTextDropped"`
	NonNumericReviewerDropped int            `json:"nonNumericReviewerDropped"`
	ImputedValues             map[string]int `json:"imputedValues"`

	FactRows     int `json:"factRows"`
	ProductRows  int `json:"productRows"`
	BrandRows    int `json:"brandRows"`
	ReviewerRows int `json:"reviewerRows"`
	DateRows     int `json:"dateRows"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		ImputedValues: make(map[string]int),
	}
}

// CountOutputs records the size of each output table.
func (r *Report) CountOutputs(w *models.Warehouse) {
	r.FactRows = len(w.Facts)
	r.ProductRows = len(w.Products)
	r.BrandRows = len(w.Brands)
	r.ReviewerRows = len(w.Reviewers)
	r.DateRows = len(w.Dates)
}

// TotalDropped returns the number of review rows excluded across all
// documented drop policies.
func (r *Report) TotalDropped() int {
	return r.ReviewsWithoutProduct + r.EmptyTextDropped + r.NonNumericReviewerDropped
}
