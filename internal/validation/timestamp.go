package validation

import (
	"fmt"
	"time"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// Timestamp failure classes, evaluated in order on disjoint subsets: a null
// timestamp is never reported as unparsable, and an unparsable one is never
// reported as too far in the future.
const (
	nullTimestampReason = "Null timestamp"
)

// CheckTimestampFormat fails every record whose timestamp is null, does not
// parse against the expected layout, or lies more than maxFutureDays past
// now. Each record lands in exactly one failure class.
func CheckTimestampFormat(records domain.RecordSet, layout string, maxFutureDays int, now time.Time) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	futureBound := now.AddDate(0, 0, maxFutureDays)
	invalidFormatReason := fmt.Sprintf("Invalid timestamp format (expected: %s)", layout)
	tooFarFutureReason := fmt.Sprintf("Timestamp too far in future (max %d days)", maxFutureDays)

	var passed []domain.Record
	var failed []domain.FailedRecord
	fail := func(rec domain.Record, reason string) {
		failed = append(failed, domain.FailedRecord{
			Record:        rec,
			FailureReason: reason,
			FailedFields:  constants.ColumnTimestamp,
		})
	}

	for _, rec := range records.Records {
		if rec.Timestamp == "" {
			fail(rec, nullTimestampReason)
			continue
		}
		ts, err := time.ParseInLocation(layout, rec.Timestamp, now.Location())
		if err != nil {
			fail(rec, invalidFormatReason)
			continue
		}
		if ts.After(futureBound) {
			fail(rec, tooFarFutureReason)
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}
