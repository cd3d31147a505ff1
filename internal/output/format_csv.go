package output

import (
	"encoding/csv"
	"strings"

	"github.com/wagewise/wagewise/internal/domain"
)

// CSVFormatter renders the Result's charts as flat rows, one bucket per
// line: chart, label, value, percentage, color.
type CSVFormatter struct{}

// Format generates CSV output for all charts in the result.
func (cf *CSVFormatter) Format(result *domain.Result) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"chart", "label", "value", "percentage", "color"}); err != nil {
		return "", err
	}

	charts := []domain.Chart{result.Daily, result.AnnualTime, result.AnnualWorkTime}
	if result.LoanBreakdown != nil {
		charts = append(charts, *result.LoanBreakdown)
	}
	for _, chart := range charts {
		for _, bucket := range chart.Buckets {
			row := []string{
				chart.Name,
				bucket.Label,
				bucket.Value.StringFixed(2),
				bucket.Percentage.StringFixed(1),
				bucket.Color,
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	return sb.String(), w.Error()
}
