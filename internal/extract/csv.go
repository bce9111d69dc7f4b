// Package extract reads the two delimited extracts into typed records. It
// is a thin boundary: the only validation it owns is column presence, which
// is fatal before any row is decoded. Everything else is the normalizer's
// job.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"

	"reviewmart/internal/models"
)

// ErrMissingColumn is returned when an expected column is absent from an
// extract's header. Column presence is a precondition of the whole
// transform, so this fails the run before any row processing begins.
var ErrMissingColumn = errors.New("missing expected column")

// productColumns are the columns the product extract must carry.
var productColumns = []string{
	"product_id", "brand_id", "favorites_count", "rating",
	"reviews", "variation_count", "category",
}

// reviewColumns are the columns the review extract must carry.
var reviewColumns = []string{
	"product_id", "reviewer_id", "rating", "submission_time",
	"review_text", "review_title", "skin_tone", "eye_color",
	"skin_type", "hair_color", "product_name", "brand_name", "price_usd",
}

// ReadProducts reads the product extract from path.
func ReadProducts(path string) ([]models.RawProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products: %w", err)
	}
	defer f.Close()

	return DecodeProducts(f)
}

// ReadReviews reads the review extract from path.
func ReadReviews(path string) ([]models.RawReview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reviews: %w", err)
	}
	defer f.Close()

	return DecodeReviews(f)
}

// DecodeProducts decodes product rows from CSV data.
func DecodeProducts(r io.Reader) ([]models.RawProduct, error) {
	dec, err := newDecoder(r, productColumns)
	if err != nil {
		return nil, err
	}

	var out []models.RawProduct

	for {
		var rec models.RawProduct

		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode product row: %w", err)
		}

		out = append(out, rec)
	}

	return out, nil
}

// DecodeReviews decodes review rows from CSV data.
func DecodeReviews(r io.Reader) ([]models.RawReview, error) {
	dec, err := newDecoder(r, reviewColumns)
	if err != nil {
		return nil, err
	}

	var out []models.RawReview

	for {
		var rec models.RawReview

		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode review row: %w", err)
		}

		out = append(out, rec)
	}

	return out, nil
}

// newDecoder builds a CSV decoder and verifies the header carries every
// required column before any row is decoded. Extra columns are ignored.
func newDecoder(r io.Reader, required []string) (*csvutil.Decoder, error) {
	cr := csv.NewReader(r)

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	present := make(map[string]bool, len(dec.Header()))
	for _, col := range dec.Header() {
		present[strings.TrimSpace(col)] = true
	}

	var missing []string

	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return dec, nil
}
