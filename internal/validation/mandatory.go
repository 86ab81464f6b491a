// Package validation implements the data-quality rule checks and the
// pipeline that runs them.
//
// Each check is a pure function partitioning its input record set into a
// passed set and a failed set. The two partitions are disjoint and cover the
// input; failed rows carry a failure reason and the offending field name(s).
// Rule violations on present data are findings, never errors; a check only
// returns an error when a rule references a column absent from the input
// schema, which is a configuration problem.
package validation

import (
	"strings"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// mandatoryFieldsReason is the failure reason attached by CheckMandatoryFields.
const mandatoryFieldsReason = "Missing mandatory field(s)"

// CheckMandatoryFields fails every record with a null value in any of the
// given mandatory fields. FailedFields lists all null mandatory fields of
// the record, comma-joined, not just the first.
//
// Returns ErrColumnMissing when a mandatory field is not part of the input
// schema.
func CheckMandatoryFields(records domain.RecordSet, mandatoryFields []string) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	for _, field := range mandatoryFields {
		if !records.HasColumn(field) {
			return domain.RecordSet{}, nil, errors.Wrapf(errors.ErrColumnMissing, "%s", field)
		}
	}

	var passed []domain.Record
	var failed []domain.FailedRecord
	for _, rec := range records.Records {
		var nullFields []string
		for _, field := range mandatoryFields {
			if rec.IsNull(field) {
				nullFields = append(nullFields, field)
			}
		}
		if len(nullFields) > 0 {
			failed = append(failed, domain.FailedRecord{
				Record:        rec,
				FailureReason: mandatoryFieldsReason,
				FailedFields:  strings.Join(nullFields, ", "),
			})
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}
