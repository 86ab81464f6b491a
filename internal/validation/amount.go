package validation

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// CheckAmountRange fails every record whose amount is null, not strictly
// positive, or greater than maxValue.
//
// minValue is accepted and reported in the failure reason, but the applied
// floor is a strict "greater than zero" regardless of minValue. This matches
// the observed behavior of the system this check was ported from; changing
// the floor to minValue is pending product clarification.
func CheckAmountRange(records domain.RecordSet, minValue, maxValue float64) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	maxAmount := decimal.NewFromFloat(maxValue)
	// Plain decimal notation in the user-facing reason; %v would render the
	// default upper bound in scientific notation.
	reason := fmt.Sprintf("Amount not in valid range (%s - %s)",
		strconv.FormatFloat(minValue, 'f', -1, 64),
		strconv.FormatFloat(maxValue, 'f', -1, 64))

	var passed []domain.Record
	var failed []domain.FailedRecord
	for _, rec := range records.Records {
		if !rec.Amount.Valid || rec.Amount.Decimal.Sign() <= 0 || rec.Amount.Decimal.GreaterThan(maxAmount) {
			failed = append(failed, domain.FailedRecord{
				Record:        rec,
				FailureReason: reason,
				FailedFields:  constants.ColumnAmount,
			})
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}
