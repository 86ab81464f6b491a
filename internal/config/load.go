package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// newViperInstance creates a new Viper instance with standard configuration:
// defaults, the DQ_ environment prefix, and key replacement for nested keys.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. This helps consolidate the common pattern of checking for
// missing config files.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decode hooks used when unmarshaling config.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (DQ_* prefix)
//  2. Project config (.dataquality/config.yaml) and currencies.yaml
//  3. Global config (~/.dataquality/config.yaml) and currencies.yaml
//  4. Built-in defaults
//
// The function returns an error only for actual configuration problems, not
// for missing config files (which are expected in many scenarios).
//
// The context parameter is used for logging; config file reads are fast
// local I/O and need no cancellation.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), project config merges over it.
	if err := mergeConfigFile(v, globalPathIfExists(GlobalConfigPath)); err != nil {
		return nil, errors.Wrap(err, "failed to read global config file")
	}
	if err := mergeConfigFile(v, pathIfExists(ProjectConfigPath())); err != nil {
		return nil, errors.Wrap(err, "failed to read project config file")
	}

	// The approved-currency list may live in its own file next to either
	// config, mirroring the separate currencies configuration contract.
	if err := mergeConfigFile(v, globalPathIfExists(GlobalCurrenciesPath)); err != nil {
		return nil, errors.Wrap(err, "failed to read global currencies file")
	}
	if err := mergeConfigFile(v, pathIfExists(ProjectCurrenciesPath())); err != nil {
		return nil, errors.Wrap(err, "failed to read project currencies file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Strs("validation.mandatory_fields", cfg.Validation.MandatoryFields).
		Float64("thresholds.critical_pass_rate", cfg.Thresholds.CriticalPassRate).
		Float64("thresholds.warning_pass_rate", cfg.Thresholds.WarningPassRate).
		Int("currencies.approved", len(cfg.Currencies.Approved)).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// LoadFromFile reads a single explicit config file over the built-in
// defaults, skipping the layered lookup. Used when the user passes --config.
func LoadFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigNotFound, "%s", path)
	}

	v := newViperInstance()
	if err := mergeConfigFile(v, path); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// mergeConfigFile merges the given file into the Viper instance.
// An empty path is a no-op; a missing file is silently skipped.
func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return err
	}
	return nil
}

// pathIfExists returns the path when the file exists, empty string otherwise.
func pathIfExists(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// globalPathIfExists resolves a global path and returns it only when the
// file exists. Resolution failures (no home directory) are skipped silently.
func globalPathIfExists(resolve func() (string, error)) string {
	path, err := resolve()
	if err != nil {
		return ""
	}
	return pathIfExists(path)
}
