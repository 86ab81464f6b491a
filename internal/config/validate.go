package config

import (
	"regexp"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// Validate checks the configuration for missing required keys and invalid
// values. It returns an error describing the first failure found.
//
// Validation rules:
//   - mandatory_fields must not be empty
//   - amount max_value must be positive
//   - timestamp format must not be empty
//   - max_future_days must not be negative
//   - pass-rate thresholds must lie in [0, 1]
//   - approved currency list must not be empty
//   - account_id_pattern, when set, must compile
//   - store path must be set when the store is enabled
//
// Threshold ordering (critical vs warning) is deliberately not validated:
// misordered thresholds are a product decision, not a configuration error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateValidationConfig(&cfg.Validation); err != nil {
		return err
	}

	if len(cfg.Currencies.Approved) == 0 {
		return errors.Wrap(errors.ErrConfigMissingKey,
			"currencies.approved_currencies must not be empty")
	}

	if err := validateThresholds(&cfg.Thresholds); err != nil {
		return err
	}

	if cfg.Store.Enabled && cfg.Store.Path == "" {
		return errors.Wrap(errors.ErrConfigInvalid,
			"store.path must be set when store.enabled is true")
	}

	return nil
}

// validateValidationConfig checks the rule parameters for the six checks.
func validateValidationConfig(cfg *ValidationConfig) error {
	if len(cfg.MandatoryFields) == 0 {
		return errors.Wrap(errors.ErrConfigMissingKey,
			"validation.mandatory_fields must not be empty")
	}

	if cfg.Amount.MaxValue <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"validation.amount_validation.max_value must be positive, got %v", cfg.Amount.MaxValue)
	}

	if cfg.Timestamp.Format == "" {
		return errors.Wrap(errors.ErrConfigMissingKey,
			"validation.timestamp_validation.format must not be empty")
	}

	if cfg.Timestamp.MaxFutureDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"validation.timestamp_validation.max_future_days cannot be negative, got %d", cfg.Timestamp.MaxFutureDays)
	}

	if cfg.AccountIDPattern != "" {
		if _, err := regexp.Compile(cfg.AccountIDPattern); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalid,
				"validation.account_id_pattern does not compile: %v", err)
		}
	}

	return nil
}

// validateThresholds checks the quality classification bounds.
func validateThresholds(cfg *ThresholdsConfig) error {
	if cfg.CriticalPassRate < 0 || cfg.CriticalPassRate > 1 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"data_quality_thresholds.critical_pass_rate must be in [0, 1], got %v", cfg.CriticalPassRate)
	}
	if cfg.WarningPassRate < 0 || cfg.WarningPassRate > 1 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"data_quality_thresholds.warning_pass_rate must be in [0, 1], got %v", cfg.WarningPassRate)
	}
	return nil
}
