package normalizer

import (
	"errors"
	"testing"
	"time"
)

func TestDeriveDates_ParsesSupportedLayouts(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month int
		day   int
	}{
		{"2023-02-01", 2023, 2, 1},
		{"2022-12-31 08:15:00", 2022, 12, 31},
		{"2021-06-15T10:30:00Z", 2021, 6, 15},
	}

	for _, tc := range tests {
		r := testReview("P1", "100", "text")
		r.SubmissionTime = tc.input

		rows, err := deriveDates(mergedRows(r))
		if err != nil {
			t.Fatalf("deriveDates(%q) returned unexpected error: %v", tc.input, err)
		}

		ts := rows[0].submittedAt
		if ts.Year() != tc.year || int(ts.Month()) != tc.month || ts.Day() != tc.day {
			t.Errorf("deriveDates(%q) = %v, want %d-%d-%d", tc.input, ts, tc.year, tc.month, tc.day)
		}
	}
}

func TestDeriveDates_BadTimestampAbortsRun(t *testing.T) {
	good := testReview("P1", "100", "text")

	bad := testReview("P1", "101", "text")
	bad.SubmissionTime = "02/01/2023"

	_, err := deriveDates(mergedRows(good, bad))
	if !errors.Is(err, ErrBadTimestamp) {
		t.Fatalf("Expected ErrBadTimestamp, got %v", err)
	}
}

func TestDeriveDates_KeepsTimePrecision(t *testing.T) {
	r := testReview("P1", "100", "text")
	r.SubmissionTime = "2023-02-01 13:45:00"

	rows, err := deriveDates(mergedRows(r))
	if err != nil {
		t.Fatalf("deriveDates returned unexpected error: %v", err)
	}

	want := time.Date(2023, 2, 1, 13, 45, 0, 0, time.UTC)
	if !rows[0].submittedAt.Equal(want) {
		t.Errorf("submittedAt = %v, want %v", rows[0].submittedAt, want)
	}
}

func TestParseReviewerID(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"100", 100, true},
		{"0", 0, true},
		{"007", 7, true},
		{"12.0", 0, false},
		{"-5", 0, false},
		{"", 0, false},
		{" 12", 0, false},
		{"12 ", 0, false},
		{"abc", 0, false},
		{"1a2", 0, false},
		{"99999999999999999999999999", 0, false}, // overflows int64
	}

	for _, tc := range tests {
		got, ok := parseReviewerID(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseReviewerID(%q) = (%d, %v), want (%d, %v)",
				tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterNumericReviewers(t *testing.T) {
	numeric := testReview("P1", "100", "text")
	alpha := testReview("P1", "abc", "text")
	decimal := testReview("P1", "12.0", "text")

	report := NewReport()
	rows := filterNumericReviewers(mergedRows(numeric, alpha, decimal), report)

	if len(rows) != 1 {
		t.Fatalf("Expected 1 surviving row, got %d", len(rows))
	}

	if rows[0].reviewerID != 100 {
		t.Errorf("reviewerID = %d, want 100", rows[0].reviewerID)
	}

	if report.NonNumericReviewerDropped != 2 {
		t.Errorf("NonNumericReviewerDropped = %d, want 2", report.NonNumericReviewerDropped)
	}
}
