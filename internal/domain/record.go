// Package domain provides the shared domain types for the data quality
// framework: transaction records, per-check results, failed-record
// annotations, and the overall quality summary.
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
)

// CoreColumns is the fixed transaction schema every record set must carry,
// in canonical order.
var CoreColumns = []string{ //nolint:gochecknoglobals // Fixed schema definition
	constants.ColumnTransactionID,
	constants.ColumnAccountID,
	constants.ColumnAmount,
	constants.ColumnCurrency,
	constants.ColumnTimestamp,
}

// Record is a single financial transaction. No field is assumed well-formed;
// the validation pipeline exists precisely because any field may be missing
// or out of range.
//
// Null semantics: an empty string means the column is null (empty CSV cells
// and absent database values both load as empty strings). Amount carries its
// own validity flag so a null amount is distinguishable from zero.
type Record struct {
	TransactionID string              `json:"transaction_id"`
	AccountID     string              `json:"account_id"`
	Amount        decimal.NullDecimal `json:"amount"`
	Currency      string              `json:"currency"`
	Timestamp     string              `json:"timestamp"`

	// Extra holds any additional input columns, passed through unchanged.
	Extra map[string]string `json:"extra,omitempty"`
}

// IsNull reports whether the named column is null on this record.
// The caller is responsible for checking the column exists in the schema
// first (see RecordSet.HasColumn); unknown columns report null.
func (r Record) IsNull(column string) bool {
	switch column {
	case constants.ColumnTransactionID:
		return r.TransactionID == ""
	case constants.ColumnAccountID:
		return r.AccountID == ""
	case constants.ColumnAmount:
		return !r.Amount.Valid
	case constants.ColumnCurrency:
		return r.Currency == ""
	case constants.ColumnTimestamp:
		return r.Timestamp == ""
	default:
		v, ok := r.Extra[column]
		return !ok || v == ""
	}
}

// RecordSet is an ordered collection of Records sharing a uniform schema.
// Order is preserved for reproducible diagnostics but carries no validation
// meaning. Checks never mutate a set in place; each check produces fresh
// passed/failed partitions.
type RecordSet struct {
	// ExtraColumns names the non-core columns present on every record,
	// in input order.
	ExtraColumns []string `json:"extra_columns,omitempty"`

	Records []Record `json:"records"`
}

// NewRecordSet builds a RecordSet over the given records with no extra columns.
func NewRecordSet(records ...Record) RecordSet {
	return RecordSet{Records: records}
}

// Len returns the number of records in the set.
func (s RecordSet) Len() int {
	return len(s.Records)
}

// IsEmpty reports whether the set holds no records.
func (s RecordSet) IsEmpty() bool {
	return len(s.Records) == 0
}

// Columns returns the full schema: the five core columns followed by any
// extra columns.
func (s RecordSet) Columns() []string {
	cols := make([]string, 0, len(CoreColumns)+len(s.ExtraColumns))
	cols = append(cols, CoreColumns...)
	cols = append(cols, s.ExtraColumns...)
	return cols
}

// HasColumn reports whether the named column is part of the set's schema.
func (s RecordSet) HasColumn(name string) bool {
	for _, c := range s.Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// Derive returns a new RecordSet carrying the same schema over the given
// records. Checks use this to build passed partitions that keep the extra
// column declarations of their input.
func (s RecordSet) Derive(records []Record) RecordSet {
	return RecordSet{ExtraColumns: s.ExtraColumns, Records: records}
}

// FailedRecord is a Record that violated a validation rule, annotated with
// the reason and the offending field(s). The orchestrator additionally tags
// it with the claiming check's name and the run timestamp.
type FailedRecord struct {
	Record

	// FailureReason is a human-readable description of the violated rule.
	FailureReason string `json:"failure_reason"`

	// FailedFields names the offending field, or a comma-joined list when a
	// record misses several mandatory fields at once.
	FailedFields string `json:"failed_fields"`

	// Check is the name of the validation check that claimed this record.
	Check string `json:"validation_check,omitempty"`

	// ValidatedAt is when the claiming check ran.
	ValidatedAt time.Time `json:"validation_timestamp,omitempty"`
}
