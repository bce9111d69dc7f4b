package normalizer

import (
	"errors"
	"fmt"

	"reviewmart/internal/models"
)

// ErrUndefinedMode is returned when a categorical column has no non-null
// values, so no replacement value exists. Defaulting to an arbitrary
// constant would hide the problem, so this is fatal.
var ErrUndefinedMode = errors.New("mode undefined: column has no non-null values")

// dropEmptyText removes rows whose review text is null or empty. A review
// without text is not a usable fact row. Dropped rows are counted.
func dropEmptyText(rows []merged, report *Report) []merged {
	kept := make([]merged, 0, len(rows))

	for _, m := range rows {
		if m.review.ReviewText == nil || *m.review.ReviewText == "" {
			report.EmptyTextDropped++

			continue
		}

		kept = append(kept, m)
	}

	return kept
}

// defaultTitles replaces a null review title with the fixed placeholder.
func defaultTitles(rows []merged) []merged {
	out := make([]merged, 0, len(rows))

	for _, m := range rows {
		if m.review.ReviewTitle == nil {
			title := TitlePlaceholder
			m.review.ReviewTitle = &title
		}

		out = append(out, m)
	}

	return out
}

// categorical names one imputable reviewer attribute and how to reach it.
type categorical struct {
	name string
	get  func(*models.RawReview) *string
	set  func(*models.RawReview, string)
}

func categoricals() []categorical {
	return []categorical{
		{"skin_tone",
			func(r *models.RawReview) *string { return r.SkinTone },
			func(r *models.RawReview, v string) { r.SkinTone = &v }},
		{"eye_color",
			func(r *models.RawReview) *string { return r.EyeColor },
			func(r *models.RawReview, v string) { r.EyeColor = &v }},
		{"skin_type",
			func(r *models.RawReview) *string { return r.SkinType },
			func(r *models.RawReview, v string) { r.SkinType = &v }},
		{"hair_color",
			func(r *models.RawReview) *string { return r.HairColor },
			func(r *models.RawReview, v string) { r.HairColor = &v }},
	}
}

// imputeCategoricals fills null skin tone, eye color, skin type and hair
// color values with that column's mode. The mode is computed over the rows
// as they stand after the empty-text filter and before any later filtering;
// moving this step changes results.
//
// A column with zero non-null values has no mode and fails the run with
// ErrUndefinedMode.
func imputeCategoricals(rows []merged, report *Report) ([]merged, error) {
	// An empty join is expected behavior, not an undefined mode.
	if len(rows) == 0 {
		return rows, nil
	}

	out := make([]merged, len(rows))
	copy(out, rows)

	for _, col := range categoricals() {
		mode, err := columnMode(out, col.get)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, col.name)
		}

		for i := range out {
			if col.get(&out[i].review) == nil {
				col.set(&out[i].review, mode)
				report.ImputedValues[col.name]++
			}
		}
	}

	return out, nil
}

// columnMode returns the most frequent non-null value of one categorical
// column. Ties resolve to the lexicographically smallest value, which keeps
// the result independent of row order.
func columnMode(rows []merged, get func(*models.RawReview) *string) (string, error) {
	counts := make(map[string]int)

	for i := range rows {
		if v := get(&rows[i].review); v != nil {
			counts[*v]++
		}
	}

	if len(counts) == 0 {
		return "", ErrUndefinedMode
	}

	var (
		mode string
		best int
	)

	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode = v
			best = n
		}
	}

	return mode, nil
}
