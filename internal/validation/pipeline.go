package validation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/clock"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/config"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// step pairs a check name with its parameter-bound check function. The
// pipeline is a fold over an ordered list of steps, threading the current
// survivor set through each one.
type step struct {
	name string
	run  func(domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error)
}

// Pipeline runs the six data-quality checks in fixed order, feeding each
// check only the survivors of the prior one. It is strictly sequential: no
// check starts before the previous one finished, and no shared state exists
// between checks.
type Pipeline struct {
	steps      []step
	thresholds config.ThresholdsConfig
	clk        clock.Clock
}

// Result is the complete output of one pipeline run.
//
// The first check always runs; checks after it are skipped once the survivor
// set is empty, and skipped checks are absent from CheckResults and
// FailedRecords. Callers must not assume all six check names are present as
// keys.
type Result struct {
	// RunID uniquely identifies this pipeline run.
	RunID string `json:"run_id"`

	// CheckResults holds per-check statistics keyed by check name.
	CheckResults map[string]domain.CheckResult `json:"check_results"`

	// FailedRecords maps check names to the records that check claimed.
	// Only checks with at least one failure appear. A record appears under
	// at most one check and never in CleanRecords.
	FailedRecords map[string][]domain.FailedRecord `json:"failed_records"`

	// CleanRecords are the records that survived every check.
	CleanRecords domain.RecordSet `json:"clean_records"`

	// Summary aggregates the run.
	Summary domain.Summary `json:"summary"`
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock replaces the system clock, fixing "now" for the timestamp
// future-bound and the failed-record run timestamps. Used by tests.
func WithClock(clk clock.Clock) Option {
	return func(p *Pipeline) {
		p.clk = clk
	}
}

// New builds a Pipeline from a validated configuration.
// Returns ErrConfigNil for a nil config and ErrConfigInvalid when the
// account-id pattern does not compile.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}

	accountPattern, err := CompileAccountIDPattern(cfg.Validation.AccountIDPattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "account_id_pattern does not compile")
	}

	p := &Pipeline{
		thresholds: cfg.Thresholds,
		clk:        clock.RealClock{},
	}

	vc := cfg.Validation
	approved := cfg.Currencies.Approved
	p.steps = []step{
		{
			name: domain.CheckMandatoryFields,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckMandatoryFields(rs, vc.MandatoryFields)
			},
		},
		{
			name: domain.CheckAmountRange,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckAmountRange(rs, vc.Amount.MinValue, vc.Amount.MaxValue)
			},
		},
		{
			name: domain.CheckCurrencyCodes,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckCurrencyCodes(rs, approved)
			},
		},
		{
			name: domain.CheckDuplicateTransactions,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckDuplicateTransactions(rs)
			},
		},
		{
			name: domain.CheckTimestampFormat,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckTimestampFormat(rs, vc.Timestamp.Format, vc.Timestamp.MaxFutureDays, p.clk.Now())
			},
		},
		{
			name: domain.CheckAccountIDFormat,
			run: func(rs domain.RecordSet) (domain.RecordSet, []domain.FailedRecord, error) {
				return CheckAccountIDFormat(rs, accountPattern)
			},
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Run executes all checks against the record set and aggregates the results.
//
// A check sees only the survivors of every prior check; the first failing
// check claims a record and later checks never re-inspect it. When the
// survivor set becomes empty the remaining checks are skipped entirely and
// do not appear in the result maps. An empty input batch still gets a
// mandatory-fields entry (total 0, pass rate 0) before the short-circuit
// kicks in.
//
// The input set is never mutated. The context carries the logger; the run
// itself is synchronous with no suspension points, so cancellation between
// checks is not observed.
func (p *Pipeline) Run(ctx context.Context, records domain.RecordSet) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "pipeline").Logger()

	result := &Result{
		RunID:         uuid.NewString(),
		CheckResults:  make(map[string]domain.CheckResult, len(p.steps)),
		FailedRecords: make(map[string][]domain.FailedRecord),
	}

	logger.Info().
		Str("run_id", result.RunID).
		Int("records", records.Len()).
		Msg("starting data quality validation")

	// The first check always runs, even against an empty batch, so every run
	// carries at least one check entry. Later checks are skipped once the
	// survivor set is empty.
	current := records
	for i, st := range p.steps {
		if i > 0 && current.IsEmpty() {
			logger.Debug().Str("check", st.name).Msg("no survivors left, skipping remaining checks")
			break
		}

		passed, failed, err := st.run(current)
		if err != nil {
			return nil, errors.Wrapf(err, "check %s", st.name)
		}

		result.CheckResults[st.name] = domain.NewCheckResult(current.Len(), passed.Len(), len(failed))

		if len(failed) > 0 {
			ranAt := p.clk.Now()
			for i := range failed {
				failed[i].Check = st.name
				failed[i].ValidatedAt = ranAt
			}
			result.FailedRecords[st.name] = failed
		}

		logger.Debug().
			Str("check", st.name).
			Int("total", current.Len()).
			Int("passed", passed.Len()).
			Int("failed", len(failed)).
			Msg("check complete")

		current = passed
	}

	result.CleanRecords = current
	result.Summary = ComputeSummary(records.Len(), result.CheckResults, p.thresholds, p.clk.Now())

	logger.Info().
		Str("run_id", result.RunID).
		Int("clean", result.CleanRecords.Len()).
		Int("failed", result.Summary.TotalFailedRecords).
		Str("status", string(result.Summary.QualityStatus)).
		Msg("validation complete")

	return result, nil
}
