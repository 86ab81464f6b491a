package domain

import "time"

// Check names, keyed exactly as they appear in pipeline result maps and
// persisted reports. The pipeline runs them in this order.
const (
	CheckMandatoryFields       = "mandatory_fields"
	CheckAmountRange           = "amount_range"
	CheckCurrencyCodes         = "currency_codes"
	CheckDuplicateTransactions = "duplicate_transactions"
	CheckTimestampFormat       = "timestamp_format"
	CheckAccountIDFormat       = "account_id_format"
)

// CheckOrder is the fixed execution order of the validation checks.
// The first failing check claims a record; later checks never see it.
var CheckOrder = []string{ //nolint:gochecknoglobals // Fixed pipeline definition
	CheckMandatoryFields,
	CheckAmountRange,
	CheckCurrencyCodes,
	CheckDuplicateTransactions,
	CheckTimestampFormat,
	CheckAccountIDFormat,
}

// CheckResult holds the per-check pass/fail statistics.
// TotalRecords is the size of the input to that particular check (the
// survivors of all prior checks), not the size of the original batch.
type CheckResult struct {
	TotalRecords int     `json:"total_records"`
	PassedCount  int     `json:"passed_count"`
	FailedCount  int     `json:"failed_count"`
	PassRate     float64 `json:"pass_rate"`
}

// NewCheckResult builds a CheckResult from partition sizes.
// The pass rate is defined as 0 when the check saw no records.
func NewCheckResult(total, passed, failed int) CheckResult {
	r := CheckResult{
		TotalRecords: total,
		PassedCount:  passed,
		FailedCount:  failed,
	}
	if total > 0 {
		r.PassRate = float64(passed) / float64(total)
	}
	return r
}

// Summary aggregates a full pipeline run.
//
// TotalPassedRecords is derived as TotalInputRecords - TotalFailedRecords
// rather than recomputed from the clean set. The two agree exactly when the
// per-check failed sets are disjoint, which the pipeline guarantees by
// construction; deriving rather than recounting keeps that invariant honest.
type Summary struct {
	TotalInputRecords  int           `json:"total_input_records"`
	TotalPassedRecords int           `json:"total_passed_records"`
	TotalFailedRecords int           `json:"total_failed_records"`
	OverallPassRate    float64       `json:"overall_pass_rate"`
	QualityScore       float64       `json:"quality_score"`
	QualityStatus      QualityStatus `json:"quality_status"`
	ValidatedAt        time.Time     `json:"validation_timestamp"`
	ChecksPerformed    []string      `json:"checks_performed"`
}
