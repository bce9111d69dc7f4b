package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrBadTimestamp is returned when a submission time fails to parse. One
// bad timestamp aborts the whole run; there is no drop-and-continue path
// for dates, unlike the reviewer-id filter. The asymmetry is deliberate and
// fixed (see DESIGN.md).
var ErrBadTimestamp = errors.New("unparseable submission time")

// submissionLayouts are tried in order when parsing a submission time.
var submissionLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// deriveDates parses each row's submission time and derives the integer
// year/month/day parts. The parsed value keeps whatever precision the
// source had; it is used verbatim as the date dimension key.
func deriveDates(rows []merged) ([]merged, error) {
	out := make([]merged, 0, len(rows))

	for i, m := range rows {
		ts, err := parseSubmissionTime(m.review.SubmissionTime)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrBadTimestamp, i, m.review.SubmissionTime)
		}

		m.submittedAt = ts
		out = append(out, m)
	}

	return out, nil
}

func parseSubmissionTime(s string) (time.Time, error) {
	var lastErr error

	for _, layout := range submissionLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts.UTC(), nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}

// filterNumericReviewers drops rows whose reviewer identifier is not
// composed entirely of ASCII digits and converts the survivors to int64.
// This is a narrowing filter, not a coercion: "12.0", "-5" and "" are all
// rejected, and a rejected identifier contributes nothing to the reviewer
// dimension either. Dropped rows are counted.
func filterNumericReviewers(rows []merged, report *Report) []merged {
	kept := make([]merged, 0, len(rows))

	for _, m := range rows {
		id, ok := parseReviewerID(m.review.ReviewerID)
		if !ok {
			report.NonNumericReviewerDropped++

			continue
		}

		m.reviewerID = id
		kept = append(kept, m)
	}

	return kept
}

// parseReviewerID accepts only non-empty all-digit identifiers. An all-digit
// value too large for int64 is rejected like any other malformed id.
func parseReviewerID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
