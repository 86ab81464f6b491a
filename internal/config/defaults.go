package config

import (
	"github.com/spf13/viper"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			// MandatoryFields: the three columns no transaction can do
			// without. Currency and timestamp nullability is handled by
			// their dedicated checks.
			MandatoryFields: []string{
				constants.ColumnTransactionID,
				constants.ColumnAccountID,
				constants.ColumnAmount,
			},
			Amount: AmountConfig{
				MinValue: constants.DefaultMinAmount,
				MaxValue: constants.DefaultMaxAmount,
			},
			Timestamp: TimestampConfig{
				Format:        constants.DefaultTimestampFormat,
				MaxFutureDays: constants.DefaultMaxFutureDays,
			},
		},
		Currencies: CurrenciesConfig{
			// Approved: the majors handled by the sample ledgers. Extend per
			// deployment via currencies.yaml.
			Approved: []string{"USD", "EUR", "GBP", "JPY", "CAD"},
		},
		Thresholds: ThresholdsConfig{
			CriticalPassRate: constants.DefaultCriticalPassRate,
			WarningPassRate:  constants.DefaultWarningPassRate,
		},
		Report: ReportConfig{
			OutputDir: constants.ReportsDir,
			Excel:     true,
			HTML:      true,
		},
		Store: StoreConfig{
			// Enabled: off by default; the validation run itself never needs
			// a database.
			Enabled: false,
			Path:    "data/quality.db",
		},
	}
}

// setDefaults registers the default configuration values on a Viper instance
// so that config files and environment variables only need to override what
// differs.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("validation.mandatory_fields", def.Validation.MandatoryFields)
	v.SetDefault("validation.amount_validation.min_value", def.Validation.Amount.MinValue)
	v.SetDefault("validation.amount_validation.max_value", def.Validation.Amount.MaxValue)
	v.SetDefault("validation.timestamp_validation.format", def.Validation.Timestamp.Format)
	v.SetDefault("validation.timestamp_validation.max_future_days", def.Validation.Timestamp.MaxFutureDays)
	v.SetDefault("validation.account_id_pattern", def.Validation.AccountIDPattern)

	v.SetDefault("currencies.approved_currencies", def.Currencies.Approved)

	v.SetDefault("data_quality_thresholds.critical_pass_rate", def.Thresholds.CriticalPassRate)
	v.SetDefault("data_quality_thresholds.warning_pass_rate", def.Thresholds.WarningPassRate)

	v.SetDefault("report.output_dir", def.Report.OutputDir)
	v.SetDefault("report.excel", def.Report.Excel)
	v.SetDefault("report.html", def.Report.HTML)

	v.SetDefault("store.enabled", def.Store.Enabled)
	v.SetDefault("store.path", def.Store.Path)
}
