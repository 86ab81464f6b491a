package domain

// QualityStatus is the three-level classification of a batch derived from
// the overall pass rate.
type QualityStatus string

const (
	// StatusExcellent means the overall pass rate reached the critical
	// threshold (the higher of the two configured thresholds; the naming
	// follows the reporting convention of the quality thresholds config).
	StatusExcellent QualityStatus = "EXCELLENT"

	// StatusWarning means the pass rate reached the warning threshold but
	// not the critical one.
	StatusWarning QualityStatus = "WARNING"

	// StatusCritical means the pass rate fell below the warning threshold.
	StatusCritical QualityStatus = "CRITICAL"
)

// StatusForPassRate classifies an overall pass rate against the configured
// thresholds. criticalThreshold is the bar for EXCELLENT and is expected to
// be the higher of the two; threshold ordering is not validated here.
func StatusForPassRate(passRate, criticalThreshold, warningThreshold float64) QualityStatus {
	switch {
	case passRate >= criticalThreshold:
		return StatusExcellent
	case passRate >= warningThreshold:
		return StatusWarning
	default:
		return StatusCritical
	}
}
