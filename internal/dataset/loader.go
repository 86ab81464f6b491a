// Package dataset loads and writes transaction record sets. It is a
// collaborator of the validation pipeline: the pipeline is agnostic to where
// records come from, and this package owns the CSV framing.
package dataset

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// LoadCSV reads a transaction record set from a CSV file.
//
// The header must carry the five core transaction columns; additional
// columns are tolerated and passed through on each record. Empty cells load
// as null. An amount cell that does not parse as a decimal also loads as
// null: malformed data is a data-quality finding for the pipeline, never a
// load error.
func LoadCSV(path string) (domain.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RecordSet{}, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.RecordSet{}, errors.Wrapf(err, "failed to parse %s", path)
	}
	if len(rows) == 0 {
		return domain.RecordSet{}, errors.Wrapf(errors.ErrSchemaMismatch, "%s has no header row", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, col := range domain.CoreColumns {
		if _, ok := index[col]; !ok {
			return domain.RecordSet{}, errors.Wrapf(errors.ErrSchemaMismatch,
				"%s is missing column %q", path, col)
		}
	}

	core := make(map[string]struct{}, len(domain.CoreColumns))
	for _, col := range domain.CoreColumns {
		core[col] = struct{}{}
	}
	var extraColumns []string
	for _, name := range header {
		name = strings.TrimSpace(name)
		if _, isCore := core[name]; !isCore {
			extraColumns = append(extraColumns, name)
		}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := domain.Record{
			TransactionID: cell(row, constants.ColumnTransactionID),
			AccountID:     cell(row, constants.ColumnAccountID),
			Amount:        parseAmount(cell(row, constants.ColumnAmount)),
			Currency:      cell(row, constants.ColumnCurrency),
			Timestamp:     cell(row, constants.ColumnTimestamp),
		}
		if len(extraColumns) > 0 {
			rec.Extra = make(map[string]string, len(extraColumns))
			for _, col := range extraColumns {
				rec.Extra[col] = cell(row, col)
			}
		}
		records = append(records, rec)
	}

	return domain.RecordSet{ExtraColumns: extraColumns, Records: records}, nil
}

// parseAmount converts a CSV cell into a nullable decimal. Empty and
// unparsable cells both yield null.
func parseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// WriteCSV writes a record set to a CSV file, core columns first and any
// extra columns after, matching the load order.
func WriteCSV(path string, set domain.RecordSet) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(set.Columns()); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, rec := range set.Records {
		if err := w.Write(recordRow(set, rec)); err != nil {
			return errors.Wrap(err, "failed to write record")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "failed to flush csv")
}

// WriteFailedCSV writes a check's failed records to a CSV file, appending
// the failure annotation columns after the record columns.
func WriteFailedCSV(path string, set domain.RecordSet, failed []domain.FailedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() { _ = f.Close() }()

	header := append(set.Columns(),
		"failure_reason", "failed_fields", "validation_check", "validation_timestamp")

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, fr := range failed {
		row := append(recordRow(set, fr.Record),
			fr.FailureReason,
			fr.FailedFields,
			fr.Check,
			fr.ValidatedAt.Format(constants.DefaultTimestampFormat),
		)
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "failed to write failed record")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "failed to flush csv")
}

// recordRow renders one record in the set's column order. Null cells render
// empty.
func recordRow(set domain.RecordSet, rec domain.Record) []string {
	row := []string{
		rec.TransactionID,
		rec.AccountID,
		"",
		rec.Currency,
		rec.Timestamp,
	}
	if rec.Amount.Valid {
		row[2] = rec.Amount.Decimal.String()
	}
	for _, col := range set.ExtraColumns {
		row = append(row, rec.Extra[col])
	}
	return row
}
