package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/validation"
)

// renderResult writes a pipeline result to w in the requested output format.
func renderResult(w io.Writer, format string, result *validation.Result) error {
	if format == OutputJSON {
		return renderResultJSON(w, result)
	}
	return renderResultText(w, result)
}

// resultJSON is the machine-readable shape of a pipeline run. Failed records
// are summarized as counts; the full records go to the CSV exports.
type resultJSON struct {
	RunID        string                        `json:"run_id"`
	Summary      domain.Summary                `json:"summary"`
	CheckResults map[string]domain.CheckResult `json:"check_results"`
	FailedCounts map[string]int                `json:"failed_counts"`
}

func renderResultJSON(w io.Writer, result *validation.Result) error {
	out := resultJSON{
		RunID:        result.RunID,
		Summary:      result.Summary,
		CheckResults: result.CheckResults,
		FailedCounts: make(map[string]int, len(result.FailedRecords)),
	}
	for check, failed := range result.FailedRecords {
		out.FailedCounts[check] = len(failed)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "failed to encode result")
}

func renderResultText(w io.Writer, result *validation.Result) error {
	s := result.Summary

	var b strings.Builder
	b.WriteString("Data Quality Report\n")
	b.WriteString(fmt.Sprintf("Run:          %s\n", result.RunID))
	b.WriteString(fmt.Sprintf("Status:       %s\n", s.QualityStatus))
	b.WriteString(fmt.Sprintf("Input:        %d records\n", s.TotalInputRecords))
	b.WriteString(fmt.Sprintf("Passed:       %d\n", s.TotalPassedRecords))
	b.WriteString(fmt.Sprintf("Failed:       %d\n", s.TotalFailedRecords))
	b.WriteString(fmt.Sprintf("Pass rate:    %.2f%%\n", s.OverallPassRate*100))
	b.WriteString(fmt.Sprintf("Score:        %.1f/100\n", s.QualityScore))

	if len(s.ChecksPerformed) > 0 {
		b.WriteString("\nChecks:\n")
		for _, name := range s.ChecksPerformed {
			cr := result.CheckResults[name]
			b.WriteString(fmt.Sprintf("  %-24s %5d in  %5d passed  %5d failed  (%.2f%%)\n",
				name, cr.TotalRecords, cr.PassedCount, cr.FailedCount, cr.PassRate*100))
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write result")
}
