package normalizer

import (
	"testing"

	"reviewmart/internal/models"
)

func TestJoinOnProduct_DropsUnmatchedBothSides(t *testing.T) {
	products := []models.RawProduct{
		testProduct("P1", 7),
		testProduct("P2", 8), // never reviewed
	}
	reviews := []models.RawReview{
		testReview("P1", "100", "Great"),
		testReview("P9", "101", "Orphan review"), // no such product
	}

	report := NewReport()
	rows := joinOnProduct(products, reviews, report)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 joined row, got %d", len(rows))
	}

	if rows[0].product.ProductID != "P1" || rows[0].review.ReviewerID != "100" {
		t.Errorf("Joined row carries wrong halves: %q / %q",
			rows[0].product.ProductID, rows[0].review.ReviewerID)
	}

	if report.ReviewsWithoutProduct != 1 {
		t.Errorf("ReviewsWithoutProduct = %d, want 1", report.ReviewsWithoutProduct)
	}

	if report.ProductsWithoutReviews != 1 {
		t.Errorf("ProductsWithoutReviews = %d, want 1", report.ProductsWithoutReviews)
	}
}

func TestJoinOnProduct_PreservesReviewOrder(t *testing.T) {
	products := []models.RawProduct{testProduct("P1", 7), testProduct("P2", 8)}
	reviews := []models.RawReview{
		testReview("P2", "200", "second product first"),
		testReview("P1", "100", "first product second"),
		testReview("P2", "201", "second product again"),
	}

	rows := joinOnProduct(products, reviews, NewReport())

	got := []string{rows[0].review.ReviewerID, rows[1].review.ReviewerID, rows[2].review.ReviewerID}
	want := []string{"200", "100", "201"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d reviewer = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestJoinOnProduct_DuplicateProductRowsFirstWins(t *testing.T) {
	first := testProduct("P1", 7)
	second := testProduct("P1", 7)
	second.AvgProductRating = float64Ptr(1.0)

	rows := joinOnProduct(
		[]models.RawProduct{first, second},
		[]models.RawReview{testReview("P1", "100", "Great")},
		NewReport(),
	)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 joined row, got %d", len(rows))
	}

	if got := *rows[0].product.AvgProductRating; got != 4.2 {
		t.Errorf("AvgProductRating = %v, want first occurrence 4.2", got)
	}
}
