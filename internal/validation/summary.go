package validation

import (
	"time"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/config"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// checkWeights sets how much each check contributes to the overall quality
// score. Missing mandatory fields hurt the score three times as much as a
// malformed timestamp.
var checkWeights = map[string]float64{ //nolint:gochecknoglobals // Fixed scoring definition
	domain.CheckMandatoryFields:       0.30,
	domain.CheckAmountRange:           0.20,
	domain.CheckCurrencyCodes:         0.15,
	domain.CheckDuplicateTransactions: 0.20,
	domain.CheckTimestampFormat:       0.10,
	domain.CheckAccountIDFormat:       0.05,
}

// defaultCheckWeight applies to any check name without an explicit weight.
const defaultCheckWeight = 0.10

// QualityScore reduces per-check results to a single 0-100 figure: the
// weighted average of the per-check pass rates, normalized over the weights
// of the checks that actually ran. An empty result map scores 0.
func QualityScore(results map[string]domain.CheckResult) float64 {
	var weighted, totalWeight float64
	for name, r := range results {
		w, ok := checkWeights[name]
		if !ok {
			w = defaultCheckWeight
		}
		weighted += r.PassRate * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight * 100
}

// ComputeSummary aggregates per-check results into the run summary.
//
// TotalFailedRecords is the sum of every check's failed count; the sum is
// valid because the per-check failed sets are disjoint by construction.
// TotalPassedRecords is derived as totalInput minus the failures rather
// than recounted from the clean set; the derivation and a recount agree
// exactly when disjointness holds, so deriving doubles as a consistency
// check on the pipeline.
func ComputeSummary(totalInput int, results map[string]domain.CheckResult, thresholds config.ThresholdsConfig, now time.Time) domain.Summary {
	totalFailed := 0
	for _, r := range results {
		totalFailed += r.FailedCount
	}
	totalPassed := totalInput - totalFailed

	var passRate float64
	if totalInput > 0 {
		passRate = float64(totalPassed) / float64(totalInput)
	}

	// Checks performed, reported in pipeline order regardless of map
	// iteration order.
	var performed []string
	for _, name := range domain.CheckOrder {
		if _, ok := results[name]; ok {
			performed = append(performed, name)
		}
	}

	return domain.Summary{
		TotalInputRecords:  totalInput,
		TotalPassedRecords: totalPassed,
		TotalFailedRecords: totalFailed,
		OverallPassRate:    passRate,
		QualityScore:       QualityScore(results),
		QualityStatus:      domain.StatusForPassRate(passRate, thresholds.CriticalPassRate, thresholds.WarningPassRate),
		ValidatedAt:        now,
		ChecksPerformed:    performed,
	}
}
