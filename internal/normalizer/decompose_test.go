package normalizer

import (
	"testing"
	"time"
)

// cleanedRows runs the helper reviews through date derivation and reviewer
// typing so decompose sees fully cleaned input.
func cleanedRows(t *testing.T, rows []merged) []merged {
	t.Helper()

	rows, err := deriveDates(rows)
	if err != nil {
		t.Fatalf("deriveDates failed: %v", err)
	}

	return filterNumericReviewers(rows, NewReport())
}

func TestDecompose_AssignsSequentialReviewIDs(t *testing.T) {
	rows := cleanedRows(t, mergedRows(
		testReview("P1", "100", "first"),
		testReview("P1", "101", "second"),
		testReview("P1", "102", "third"),
	))

	w := decompose(rows)

	if len(w.Facts) != 3 {
		t.Fatalf("Expected 3 facts, got %d", len(w.Facts))
	}

	for i, f := range w.Facts {
		if f.ReviewID != int64(i+1) {
			t.Errorf("Fact %d ReviewID = %d, want %d", i, f.ReviewID, i+1)
		}
	}

	if w.Facts[0].ReviewText != "first" || w.Facts[2].ReviewText != "third" {
		t.Errorf("Fact order does not follow row order")
	}
}

func TestDecompose_ProductFirstOccurrenceWins(t *testing.T) {
	first := testReview("P1", "100", "cheap")
	first.PriceUSD = 10.00

	second := testReview("P1", "101", "expensive")
	second.PriceUSD = 99.00

	w := decompose(cleanedRows(t, mergedRows(first, second)))

	if len(w.Products) != 1 {
		t.Fatalf("Expected 1 product row, got %d", len(w.Products))
	}

	if w.Products[0].PriceUSD != 10.00 {
		t.Errorf("Product price = %v, want first-row 10.00", w.Products[0].PriceUSD)
	}
}

func TestDecompose_BrandFirstOccurrenceWins(t *testing.T) {
	first := testReview("P1", "100", "a")
	first.BrandName = "GlowCo"

	second := testReview("P1", "101", "b")
	second.BrandName = "GLOWCO" // inconsistent casing in noisy data

	w := decompose(cleanedRows(t, mergedRows(first, second)))

	if len(w.Brands) != 1 {
		t.Fatalf("Expected 1 brand row, got %d", len(w.Brands))
	}

	if w.Brands[0].BrandName != "GlowCo" {
		t.Errorf("Brand name = %q, want first-row %q", w.Brands[0].BrandName, "GlowCo")
	}
}

func TestDecompose_ReviewerAndDateDedup(t *testing.T) {
	a := testReview("P1", "100", "a")
	a.SubmissionTime = "2023-02-01"

	b := testReview("P1", "100", "b") // same reviewer, same day
	b.SubmissionTime = "2023-02-01"

	c := testReview("P1", "101", "c")
	c.SubmissionTime = "2023-02-02"

	w := decompose(cleanedRows(t, mergedRows(a, b, c)))

	if len(w.Reviewers) != 2 {
		t.Errorf("Expected 2 reviewer rows, got %d", len(w.Reviewers))
	}

	if len(w.Dates) != 2 {
		t.Errorf("Expected 2 date rows, got %d", len(w.Dates))
	}

	if len(w.Facts) != 3 {
		t.Errorf("Expected 3 fact rows, got %d", len(w.Facts))
	}
}

func TestDecompose_DatePartsMatchKey(t *testing.T) {
	r := testReview("P1", "100", "text")
	r.SubmissionTime = "2021-06-15T10:30:00Z"

	w := decompose(cleanedRows(t, mergedRows(r)))

	if len(w.Dates) != 1 {
		t.Fatalf("Expected 1 date row, got %d", len(w.Dates))
	}

	d := w.Dates[0]

	want := time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC)
	if !d.DateID.Equal(want) {
		t.Errorf("DateID = %v, want %v", d.DateID, want)
	}

	if d.Year != 2021 || d.Month != 6 || d.Day != 15 {
		t.Errorf("Date parts = %d-%d-%d, want 2021-6-15", d.Year, d.Month, d.Day)
	}
}
