package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// executeCommand runs the root command with args and captures stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// writeBatch writes a CSV batch and returns its path.
func writeBatch(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const cleanBatch = `transaction_id,account_id,amount,currency,timestamp
TXN001,ACC001,100.50,USD,2025-01-15 10:30:00
TXN002,ACC002,250.00,EUR,2025-01-15 11:00:00
TXN003,ACC003,75.25,GBP,2025-01-15 11:30:00
`

const dirtyBatch = `transaction_id,account_id,amount,currency,timestamp
TXN001,ACC001,100.50,USD,2025-01-15 10:30:00
TXN002,,250.00,EUR,2025-01-15 11:00:00
TXN003,ACC003,-75.25,GBP,2025-01-15 11:30:00
TXN004,ACC004,50.00,XXX,2025-01-15 12:00:00
`

func TestRunCommand_CleanBatch(t *testing.T) {
	// Not parallel: overrides HOME so layered config lookup stays hermetic.
	t.Setenv("HOME", t.TempDir())

	workDir := t.TempDir()
	out, err := executeCommand(t,
		"run", writeBatch(t, cleanBatch),
		"--failed-dir", filepath.Join(workDir, "failed"),
		"--no-reports",
		"--output", "json",
	)
	require.NoError(t, err)

	var result resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Summary.TotalInputRecords)
	assert.Equal(t, 0, result.Summary.TotalFailedRecords)
	assert.Equal(t, domain.StatusExcellent, result.Summary.QualityStatus)
	assert.Len(t, result.CheckResults, 6)
}

func TestRunCommand_DirtyBatchExportsAndReports(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	failedDir := filepath.Join(t.TempDir(), "failed")
	reportDir := filepath.Join(t.TempDir(), "reports")
	out, err := executeCommand(t,
		"run", writeBatch(t, dirtyBatch),
		"--failed-dir", failedDir,
		"--report-dir", reportDir,
		"--output", "json",
	)
	require.NoError(t, err)

	var result resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Summary.TotalFailedRecords)
	assert.Equal(t, domain.StatusCritical, result.Summary.QualityStatus)

	// One failed-record CSV per failing check.
	failedFiles, err := filepath.Glob(filepath.Join(failedDir, "failed_*.csv"))
	require.NoError(t, err)
	assert.Len(t, failedFiles, 3)

	// Excel and HTML reports are enabled by default.
	xlsx, err := filepath.Glob(filepath.Join(reportDir, "quality_report_*.xlsx"))
	require.NoError(t, err)
	assert.Len(t, xlsx, 1)
	html, err := filepath.Glob(filepath.Join(reportDir, "quality_report_*.html"))
	require.NoError(t, err)
	assert.Len(t, html, 1)
}

func TestRunCommand_StrictFailsOnCritical(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand(t,
		"run", writeBatch(t, dirtyBatch),
		"--failed-dir", filepath.Join(t.TempDir(), "failed"),
		"--no-reports",
		"--strict",
	)
	require.ErrorIs(t, err, errors.ErrQualityCritical)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestRunCommand_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand(t, "run", filepath.Join(t.TempDir(), "nope.csv"), "--no-reports")
	require.Error(t, err)
}

func TestRunCommand_ExplicitConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// A config that rejects every currency in the batch.
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
validation:
  mandatory_fields: [transaction_id, account_id, amount]
  amount_validation:
    min_value: 0.01
    max_value: 1000000
  timestamp_validation:
    format: "2006-01-02 15:04:05"
    max_future_days: 1
currencies:
  approved_currencies: [CHF]
data_quality_thresholds:
  critical_pass_rate: 0.95
  warning_pass_rate: 0.90
`), 0o600))

	out, err := executeCommand(t,
		"run", writeBatch(t, cleanBatch),
		"--config", cfgPath,
		"--failed-dir", filepath.Join(t.TempDir(), "failed"),
		"--no-reports",
		"--output", "json",
	)
	require.NoError(t, err)

	var result resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.FailedCounts[domain.CheckCurrencyCodes])
}

// writeStoreConfig writes a config file whose store points at dbPath and
// whose approved currencies match the sample generator's palette.
func writeStoreConfig(t *testing.T, dbPath string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`
validation:
  mandatory_fields: [transaction_id, account_id, amount]
  amount_validation:
    min_value: 0.01
    max_value: 1000000
  timestamp_validation:
    format: "2006-01-02 15:04:05"
    max_future_days: 1
currencies:
  approved_currencies: [USD, EUR, GBP, JPY, CAD]
data_quality_thresholds:
  critical_pass_rate: 0.95
  warning_pass_rate: 0.90
store:
  enabled: false
  path: %s
`, dbPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	return cfgPath
}

func TestRunCommand_FromStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfgPath := writeStoreConfig(t, filepath.Join(t.TempDir(), "quality.db"))

	_, err := executeCommand(t,
		"generate", "--to-store", "--clean", "--rows", "20", "--seed", "7",
		"--config", cfgPath,
	)
	require.NoError(t, err)

	out, err := executeCommand(t,
		"run", "--from-store",
		"--config", cfgPath,
		"--failed-dir", filepath.Join(t.TempDir(), "failed"),
		"--no-reports",
		"--output", "json",
	)
	require.NoError(t, err)

	var result resultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 20, result.Summary.TotalInputRecords)
	assert.Equal(t, domain.StatusExcellent, result.Summary.QualityStatus)

	// --limit caps the loaded batch.
	out, err = executeCommand(t,
		"run", "--from-store", "--limit", "5",
		"--config", cfgPath,
		"--failed-dir", filepath.Join(t.TempDir(), "failed"),
		"--no-reports",
		"--output", "json",
	)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 5, result.Summary.TotalInputRecords)
}

func TestRunCommand_FromStoreMissingDatabase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfgPath := writeStoreConfig(t, filepath.Join(t.TempDir(), "nope.db"))

	_, err := executeCommand(t,
		"run", "--from-store",
		"--config", cfgPath,
		"--no-reports",
	)
	require.ErrorIs(t, err, errors.ErrStoreUnavailable)
}

func TestRunCommand_SourceArgValidation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand(t, "run", "batch.csv", "--from-store", "--no-reports")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	_, err = executeCommand(t, "run", "--no-reports")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunCommand_InvalidOutputFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand(t, "run", "whatever.csv", "--output", "yaml")
	require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
