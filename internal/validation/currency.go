package validation

import (
	"fmt"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// CheckCurrencyCodes fails every record whose currency is null or not in the
// approved list. Matching is a case-sensitive exact comparison; no
// normalization is applied.
func CheckCurrencyCodes(records domain.RecordSet, approvedCurrencies []string) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	approved := make(map[string]struct{}, len(approvedCurrencies))
	for _, code := range approvedCurrencies {
		approved[code] = struct{}{}
	}
	reason := fmt.Sprintf("Currency not in approved list: %v", approvedCurrencies)

	var passed []domain.Record
	var failed []domain.FailedRecord
	for _, rec := range records.Records {
		_, ok := approved[rec.Currency]
		if rec.Currency == "" || !ok {
			failed = append(failed, domain.FailedRecord{
				Record:        rec,
				FailureReason: reason,
				FailedFields:  constants.ColumnCurrency,
			})
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}
