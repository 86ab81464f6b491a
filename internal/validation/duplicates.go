package validation

import (
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// duplicateReason is the failure reason attached by CheckDuplicateTransactions.
const duplicateReason = "Duplicate transaction ID"

// CheckDuplicateTransactions fails every member of a transaction-id group
// that occurs more than once in the input. No occurrence is kept as "the
// original": a duplicated ID gives no way to tell which row is authoritative,
// so all members fail. Detection is independent of row order.
func CheckDuplicateTransactions(records domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	counts := make(map[string]int, records.Len())
	for _, rec := range records.Records {
		counts[rec.TransactionID]++
	}

	var passed []domain.Record
	var failed []domain.FailedRecord
	for _, rec := range records.Records {
		if counts[rec.TransactionID] > 1 {
			failed = append(failed, domain.FailedRecord{
				Record:        rec,
				FailureReason: duplicateReason,
				FailedFields:  constants.ColumnTransactionID,
			})
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}
