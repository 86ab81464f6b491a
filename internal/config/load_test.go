package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dqerrors "github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

func TestLoadFromFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	require.ErrorIs(t, err, dqerrors.ErrConfigNotFound)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
validation:
  mandatory_fields:
    - transaction_id
    - account_id
  amount_validation:
    min_value: 1.00
    max_value: 50000.00
  timestamp_validation:
    format: "2006-01-02"
    max_future_days: 3
currencies:
  approved_currencies:
    - USD
    - CHF
data_quality_thresholds:
  critical_pass_rate: 0.99
  warning_pass_rate: 0.80
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"transaction_id", "account_id"}, cfg.Validation.MandatoryFields)
	assert.InDelta(t, 50000.00, cfg.Validation.Amount.MaxValue, 1e-9)
	assert.Equal(t, "2006-01-02", cfg.Validation.Timestamp.Format)
	assert.Equal(t, 3, cfg.Validation.Timestamp.MaxFutureDays)
	assert.Equal(t, []string{"USD", "CHF"}, cfg.Currencies.Approved)
	assert.InDelta(t, 0.99, cfg.Thresholds.CriticalPassRate, 1e-9)
	assert.InDelta(t, 0.80, cfg.Thresholds.WarningPassRate, 1e-9)
}

func TestLoadFromFile_DefaultsFillGaps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
report:
  excel: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.Validation.MandatoryFields, cfg.Validation.MandatoryFields)
	assert.Equal(t, def.Currencies.Approved, cfg.Currencies.Approved)
	assert.False(t, cfg.Report.Excel)
	assert.True(t, cfg.Report.HTML)
}

func TestLoadFromFile_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
validation:
  amount_validation:
    max_value: -5
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := LoadFromFile(path)

	require.Error(t, err)
	require.ErrorIs(t, err, dqerrors.ErrConfigInvalid)
}

func TestProjectConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(".dataquality", "config.yaml"), ProjectConfigPath())
	assert.Equal(t, filepath.Join(".dataquality", "currencies.yaml"), ProjectCurrenciesPath())
}
