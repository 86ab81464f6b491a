// Package config provides configuration management for the data quality
// framework with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (DQ_* prefix)
//  2. Project config (.dataquality/config.yaml)
//  3. Global config (~/.dataquality/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
// The approved currency list may additionally be sourced from a separate
// currencies.yaml next to either config file.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for the data quality framework.
type Config struct {
	// Validation contains the rule parameters for the six data-quality checks.
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`

	// Currencies contains the approved currency code list.
	Currencies CurrenciesConfig `yaml:"currencies" mapstructure:"currencies"`

	// Thresholds contains the pass-rate bounds for quality classification.
	Thresholds ThresholdsConfig `yaml:"data_quality_thresholds" mapstructure:"data_quality_thresholds"`

	// Report contains settings for report generation.
	Report ReportConfig `yaml:"report" mapstructure:"report"`

	// Store contains settings for the results database.
	Store StoreConfig `yaml:"store" mapstructure:"store"`
}

// ValidationConfig contains the rule parameters consumed by the validation
// pipeline.
type ValidationConfig struct {
	// MandatoryFields lists the columns that may not be null.
	// A record missing any of them fails the mandatory-fields check.
	MandatoryFields []string `yaml:"mandatory_fields" mapstructure:"mandatory_fields"`

	// Amount holds the bounds for the amount-range check.
	Amount AmountConfig `yaml:"amount_validation" mapstructure:"amount_validation"`

	// Timestamp holds the parameters for the timestamp-format check.
	Timestamp TimestampConfig `yaml:"timestamp_validation" mapstructure:"timestamp_validation"`

	// AccountIDPattern is an optional regular expression for the account-id
	// check. When empty, the check only rejects null or blank account IDs.
	AccountIDPattern string `yaml:"account_id_pattern,omitempty" mapstructure:"account_id_pattern"`
}

// AmountConfig holds the configured amount bounds.
//
// MinValue is accepted and reported in failure reasons, but the floor the
// check actually applies is a strict "greater than zero". Changing the
// applied floor to MinValue is pending product clarification; do not assume
// the two agree.
type AmountConfig struct {
	MinValue float64 `yaml:"min_value" mapstructure:"min_value"`
	MaxValue float64 `yaml:"max_value" mapstructure:"max_value"`
}

// TimestampConfig holds the parameters for timestamp validation.
type TimestampConfig struct {
	// Format is the Go reference layout timestamps must parse against.
	Format string `yaml:"format" mapstructure:"format"`

	// MaxFutureDays is how far past "now" a timestamp may lie.
	MaxFutureDays int `yaml:"max_future_days" mapstructure:"max_future_days"`
}

// CurrenciesConfig holds the approved currency list.
type CurrenciesConfig struct {
	// Approved lists the accepted 3-letter currency codes. Matching is
	// case-sensitive and exact.
	Approved []string `yaml:"approved_currencies" mapstructure:"approved_currencies"`
}

// ThresholdsConfig holds the quality classification bounds.
//
// CriticalPassRate is the HIGHER of the two thresholds: it is the bar a
// batch must reach to be classified EXCELLENT. WarningPassRate is the bar
// for WARNING. The naming is kept from the original reporting convention.
// Threshold ordering is deliberately not validated.
type ThresholdsConfig struct {
	CriticalPassRate float64 `yaml:"critical_pass_rate" mapstructure:"critical_pass_rate"`
	WarningPassRate  float64 `yaml:"warning_pass_rate" mapstructure:"warning_pass_rate"`
}

// ReportConfig contains settings for report generation.
type ReportConfig struct {
	// OutputDir is where generated reports are written.
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`

	// Excel enables the multi-sheet Excel report.
	Excel bool `yaml:"excel" mapstructure:"excel"`

	// HTML enables the HTML summary page.
	HTML bool `yaml:"html" mapstructure:"html"`
}

// StoreConfig contains settings for the results database.
type StoreConfig struct {
	// Enabled turns persistence of failed records and quality reports on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file location.
	Path string `yaml:"path" mapstructure:"path"`
}
