// Package normalizer turns the two raw extracts into a star schema: one
// review fact table and four dimensions (product, brand, reviewer, date).
//
// The transform is a pure function of its inputs. It runs as a fixed
// sequence of steps, each taking and returning its own row slice:
//
//  1. inner join on product_id (unmatched rows dropped and counted)
//  2. missing-value policy: drop empty review text, default the title,
//     impute the categorical reviewer attributes with the column mode
//  3. timestamp parsing and year/month/day derivation (bad timestamp
//     aborts the run)
//  4. all-digits reviewer-id filter and integer conversion
//  5. dimensional decomposition with first-occurrence dedup and 1-based
//     positional review ids
//
// Reordering the steps changes results: the mode in step 2 is computed
// after the empty-text filter and before the date and reviewer filters.
package normalizer

import (
	"fmt"

	"reviewmart/internal/models"
)

// TitlePlaceholder replaces a missing review title. A missing title is
// optional metadata, never a drop reason.
const TitlePlaceholder = "Review Provided"

// Processor runs the full transform and guards its outputs.
type Processor struct {
	validator *Validator
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator: NewValidator(),
	}
}

// Process transforms the raw extracts into a warehouse bundle. It returns
// the bundle, a report of row counts and drop reasons, and an error on any
// fatal condition (undefined imputation mode, unparseable timestamp, or an
// output that fails the invariant checks).
//
// The report is also returned alongside a fatal error so callers can log
// how far the run got.
func (p *Processor) Process(products []models.RawProduct, reviews []models.RawReview) (*models.Warehouse, *Report, error) {
	report := NewReport()

	rows := joinOnProduct(products, reviews, report)

	rows = dropEmptyText(rows, report)
	rows = defaultTitles(rows)

	rows, err := imputeCategoricals(rows, report)
	if err != nil {
		return nil, report, fmt.Errorf("imputation failed: %w", err)
	}

	rows, err = deriveDates(rows)
	if err != nil {
		return nil, report, fmt.Errorf("date derivation failed: %w", err)
	}

	rows = filterNumericReviewers(rows, report)

	warehouse := decompose(rows)
	report.CountOutputs(warehouse)

	if err := p.validator.Validate(warehouse); err != nil {
		return nil, report, fmt.Errorf("output validation failed: %w", err)
	}

	return warehouse, report, nil
}
