// Package formatter renders a normalizer run report as Markdown for
// diagnostics. The counters here are the only visibility into the silent
// drop policies (join loss, non-numeric reviewer ids).
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"

	"reviewmart/internal/models"
	"reviewmart/internal/normalizer"
	"reviewmart/pkg/utils"
)

// sampleFacts is how many fact rows the report shows as a spot check.
const sampleFacts = 3

// FormatReport renders the run report: output table sizes, drop counters,
// imputation counts, review-text word statistics and a few sample fact
// rows.
func FormatReport(rep *normalizer.Report, w *models.Warehouse) string {
	var sb strings.Builder

	sb.WriteString("# Warehouse run report\n\n")

	sb.WriteString("## Output tables\n\n")
	sb.WriteString(renderTable(
		[]string{"Table", "Rows"},
		[][]string{
			{"fact_reviews", strconv.Itoa(rep.FactRows)},
			{"dim_product", strconv.Itoa(rep.ProductRows)},
			{"dim_brand", strconv.Itoa(rep.BrandRows)},
			{"dim_reviewer", strconv.Itoa(rep.ReviewerRows)},
			{"dim_date", strconv.Itoa(rep.DateRows)},
		},
	))

	sb.WriteString("\n## Dropped rows\n\n")
	sb.WriteString(renderTable(
		[]string{"Reason", "Rows"},
		[][]string{
			{"review without matching product", strconv.Itoa(rep.ReviewsWithoutProduct)},
			{"product without matching review", strconv.Itoa(rep.ProductsWithoutReviews)},
			{"empty review text", strconv.Itoa(rep.EmptyTextDropped)},
			{"non-numeric reviewer id", strconv.Itoa(rep.NonNumericReviewerDropped)},
		},
	))

	if len(rep.ImputedValues) > 0 {
		sb.WriteString("\n## Imputed values\n\n")

		var rows [][]string
		for _, col := range []string{"skin_tone", "eye_color", "skin_type", "hair_color"} {
			if n, ok := rep.ImputedValues[col]; ok {
				rows = append(rows, []string{col, strconv.Itoa(n)})
			}
		}

		sb.WriteString(renderTable([]string{"Column", "Filled"}, rows))
	}

	sb.WriteString("\n## Review text\n\n")

	total := 0
	for _, f := range w.Facts {
		total += wordCount(f.ReviewText)
	}

	avg := 0.0
	if len(w.Facts) > 0 {
		avg = float64(total) / float64(len(w.Facts))
	}

	sb.WriteString(fmt.Sprintf("- Total words: %d\n", total))
	sb.WriteString(fmt.Sprintf("- Average words per review: %.1f\n", avg))

	if len(w.Facts) > 0 {
		sb.WriteString("\n## Sample facts\n\n")

		var rows [][]string

		for i := 0; i < len(w.Facts) && i < sampleFacts; i++ {
			f := w.Facts[i]
			rows = append(rows, []string{
				strconv.FormatInt(f.ReviewID, 10),
				f.ProductID,
				strconv.FormatInt(f.ReviewerID, 10),
				f.DateID.Format("2006-01-02"),
				utils.Truncate(utils.NormalizeWhitespace(f.ReviewText), 40),
			})
		}

		sb.WriteString(renderTable(
			[]string{"review_id", "product_id", "reviewer_id", "date", "text"},
			rows,
		))
	}

	return sb.String()
}

// wordCount counts word tokens in s, skipping whitespace and punctuation
// tokens the segmenter also emits.
func wordCount(s string) int {
	n := 0

	tokens := words.FromString(s)
	for tokens.Next() {
		if isWordToken(tokens.Value()) {
			n++
		}
	}

	return n
}

func isWordToken(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// renderTable builds a Markdown table with cells padded to the column's
// display width, so wide characters stay aligned.
func renderTable(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(" ")
			sb.WriteString(content)

			if padding := colWidths[j] - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(header)

	sb.WriteString("|")

	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[j]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}
