package validation

import (
	"regexp"
	"strings"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// accountIDReason is the failure reason attached by CheckAccountIDFormat.
const accountIDReason = "Invalid account ID format"

// CheckAccountIDFormat fails every record whose account ID is null, or,
// when no pattern is given, blank after trimming. With a pattern, a
// non-null account ID fails unless the pattern matches at the start of the
// value.
func CheckAccountIDFormat(records domain.RecordSet, pattern *regexp.Regexp) (domain.RecordSet, []domain.FailedRecord, error) {
	if records.IsEmpty() {
		return records.Derive(nil), nil, nil
	}

	invalid := func(accountID string) bool {
		if accountID == "" {
			return true
		}
		if pattern == nil {
			return strings.TrimSpace(accountID) == ""
		}
		return !pattern.MatchString(accountID)
	}

	var passed []domain.Record
	var failed []domain.FailedRecord
	for _, rec := range records.Records {
		if invalid(rec.AccountID) {
			failed = append(failed, domain.FailedRecord{
				Record:        rec,
				FailureReason: accountIDReason,
				FailedFields:  constants.ColumnAccountID,
			})
			continue
		}
		passed = append(passed, rec)
	}

	return records.Derive(passed), failed, nil
}

// CompileAccountIDPattern compiles an optional account-id pattern, anchoring
// it at the start of the value. An empty pattern yields nil, selecting the
// default blank/null-only validation.
func CompileAccountIDPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile("^(?:" + pattern + ")")
}
