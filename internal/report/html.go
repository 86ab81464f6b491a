package report

import (
	"html/template"
	"os"
	"time"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/validation"
)

// htmlCheckRow is one table row in the HTML report.
type htmlCheckRow struct {
	Name        string
	Total       int
	Passed      int
	Failed      int
	PassRate    float64
	StatusClass string
}

// htmlPage is the data model behind the HTML template.
type htmlPage struct {
	RunID       string
	GeneratedAt string
	Status      string
	StatusClass string
	TotalInput  int
	TotalPassed int
	TotalFailed int
	PassRate    float64
	Score       float64
	Checks      []htmlCheckRow
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Data Quality Report {{.RunID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
.excellent { color: #1a7f37; font-weight: bold; }
.warning { color: #9a6700; font-weight: bold; }
.critical { color: #cf222e; font-weight: bold; }
.meta { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Data Quality Report</h1>
<p class="meta">Run {{.RunID}} &middot; generated {{.GeneratedAt}}</p>
<p>Status: <span class="{{.StatusClass}}">{{.Status}}</span></p>
<table>
<tr><th>Total Input</th><th>Passed</th><th>Failed</th><th>Pass Rate</th><th>Quality Score</th></tr>
<tr><td>{{.TotalInput}}</td><td>{{.TotalPassed}}</td><td>{{.TotalFailed}}</td><td>{{printf "%.2f%%" .PassRate}}</td><td>{{printf "%.1f/100" .Score}}</td></tr>
</table>
<h2>Validation Checks</h2>
<table>
<tr><th>Check</th><th>Total</th><th>Passed</th><th>Failed</th><th>Pass Rate</th></tr>
{{range .Checks}}<tr class="{{.StatusClass}}"><td>{{.Name}}</td><td>{{.Total}}</td><td>{{.Passed}}</td><td>{{.Failed}}</td><td>{{printf "%.2f%%" .PassRate}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// WriteHTML renders a validation result as a standalone HTML page at path.
func WriteHTML(path string, result *validation.Result) error {
	page := htmlPage{
		RunID:       result.RunID,
		GeneratedAt: result.Summary.ValidatedAt.Format(time.DateTime),
		Status:      string(result.Summary.QualityStatus),
		StatusClass: statusClass(result.Summary.QualityStatus),
		TotalInput:  result.Summary.TotalInputRecords,
		TotalPassed: result.Summary.TotalPassedRecords,
		TotalFailed: result.Summary.TotalFailedRecords,
		PassRate:    result.Summary.OverallPassRate * 100,
		Score:       result.Summary.QualityScore,
	}
	for _, name := range domain.CheckOrder {
		cr, ok := result.CheckResults[name]
		if !ok {
			continue
		}
		rowStatus := ""
		if cr.FailedCount > 0 {
			rowStatus = "warning"
		}
		page.Checks = append(page.Checks, htmlCheckRow{
			Name:        name,
			Total:       cr.TotalRecords,
			Passed:      cr.PassedCount,
			Failed:      cr.FailedCount,
			PassRate:    cr.PassRate * 100,
			StatusClass: rowStatus,
		})
	}

	f, err := os.Create(path) //nolint:gosec // report path is user supplied
	if err != nil {
		return errors.Wrapf(err, "failed to create report %s", path)
	}
	defer func() { _ = f.Close() }()

	return errors.Wrap(htmlTemplate.Execute(f, page), "failed to render HTML report")
}

// statusClass maps a quality status to its CSS class.
func statusClass(status domain.QualityStatus) string {
	switch status {
	case domain.StatusExcellent:
		return "excellent"
	case domain.StatusWarning:
		return "warning"
	default:
		return "critical"
	}
}
