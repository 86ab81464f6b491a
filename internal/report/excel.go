// Package report renders pipeline output into Excel workbooks and HTML
// summary pages. It is a read-only consumer of validation results: nothing
// here feeds back into the pipeline.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/validation"
)

// Sheet names of the generated workbook.
const (
	sheetSummary       = "Summary"
	sheetDetails       = "Validation_Details"
	sheetFailedSummary = "Failed_Records_Summary"
)

// WriteExcel renders a validation result into a multi-sheet workbook at
// path: an overall summary, the per-check statistics, and a per-check
// failure digest.
func WriteExcel(path string, result *validation.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeSummarySheet(f, result); err != nil {
		return err
	}
	if err := writeDetailsSheet(f, result); err != nil {
		return err
	}
	if err := writeFailedSummarySheet(f, result); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "failed to delete default sheet")
	}

	return errors.Wrapf(f.SaveAs(path), "failed to save workbook %s", path)
}

// writeSummarySheet writes the overall run summary as metric/value pairs.
func writeSummarySheet(f *excelize.File, result *validation.Result) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}

	s := result.Summary
	rows := [][]any{
		{"Metric", "Value"},
		{"Run ID", result.RunID},
		{"Total Input Records", s.TotalInputRecords},
		{"Passed Records", s.TotalPassedRecords},
		{"Failed Records", s.TotalFailedRecords},
		{"Overall Pass Rate", fmt.Sprintf("%.2f%%", s.OverallPassRate*100)},
		{"Quality Score", fmt.Sprintf("%.1f", s.QualityScore)},
		{"Quality Status", string(s.QualityStatus)},
		{"Validation Time", s.ValidatedAt.Format(time.DateTime)},
	}
	return writeRows(f, sheetSummary, rows)
}

// writeDetailsSheet writes one row per executed check, in pipeline order.
func writeDetailsSheet(f *excelize.File, result *validation.Result) error {
	if _, err := f.NewSheet(sheetDetails); err != nil {
		return errors.Wrap(err, "failed to create details sheet")
	}

	rows := [][]any{
		{"Validation Check", "Total Records", "Passed", "Failed", "Pass Rate"},
	}
	for _, name := range domain.CheckOrder {
		cr, ok := result.CheckResults[name]
		if !ok {
			continue
		}
		rows = append(rows, []any{
			name, cr.TotalRecords, cr.PassedCount, cr.FailedCount,
			fmt.Sprintf("%.2f%%", cr.PassRate*100),
		})
	}
	return writeRows(f, sheetDetails, rows)
}

// writeFailedSummarySheet digests each check's failures: count and the
// reason attached to its records.
func writeFailedSummarySheet(f *excelize.File, result *validation.Result) error {
	if _, err := f.NewSheet(sheetFailedSummary); err != nil {
		return errors.Wrap(err, "failed to create failed summary sheet")
	}

	rows := [][]any{
		{"Validation Check", "Failed Count", "Failure Reason"},
	}
	for _, name := range domain.CheckOrder {
		failed, ok := result.FailedRecords[name]
		if !ok || len(failed) == 0 {
			continue
		}
		rows = append(rows, []any{name, len(failed), failed[0].FailureReason})
	}
	return writeRows(f, sheetFailedSummary, rows)
}

// writeRows writes a rectangular block of values starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return errors.Wrap(err, "failed to compute cell name")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.Wrapf(err, "failed to set %s!%s", sheet, cell)
			}
		}
	}
	return nil
}
