// Package constants provides centralized constant values used throughout the
// data quality framework. This package is the single source of truth for all
// shared constants and MUST NOT import any other internal packages.
package constants

// Directory and file names used for organizing data on disk.
const (
	// AppHome is the hidden directory name where global configuration and
	// logs are stored. This directory is created in the user's home directory.
	AppHome = ".dataquality"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// CurrenciesFileName is the name of the YAML file holding the approved
	// currency list. It lives next to the main config file.
	CurrenciesFileName = "currencies.yaml"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// LogFileName is the name of the rotating application log file.
	LogFileName = "dataquality.log"

	// FailedRecordsDir is the default output directory for failed-record CSV
	// exports.
	FailedRecordsDir = "data/failed_records"

	// ReportsDir is the default output directory for generated reports.
	ReportsDir = "data/reports"
)

// Transaction record column names. Every input record set must carry exactly
// these columns; additional columns are tolerated and passed through.
const (
	ColumnTransactionID = "transaction_id"
	ColumnAccountID     = "account_id"
	ColumnAmount        = "amount"
	ColumnCurrency      = "currency"
	ColumnTimestamp     = "timestamp"
)

// Validation defaults. These mirror the built-in configuration and can be
// overridden via config files, environment variables, or CLI flags.
const (
	// DefaultTimestampFormat is the Go reference layout expected for the
	// timestamp column.
	DefaultTimestampFormat = "2006-01-02 15:04:05"

	// DefaultMaxFutureDays is how far in the future a timestamp may be before
	// it is considered invalid.
	DefaultMaxFutureDays = 1

	// DefaultMinAmount is the configured lower bound for the amount column.
	DefaultMinAmount = 0.01

	// DefaultMaxAmount is the configured upper bound for the amount column.
	DefaultMaxAmount = 1000000.00

	// DefaultCriticalPassRate is the overall pass rate at or above which the
	// batch is classified EXCELLENT. This is the higher of the two thresholds;
	// the name follows the original reporting convention.
	DefaultCriticalPassRate = 0.95

	// DefaultWarningPassRate is the overall pass rate at or above which the
	// batch is classified WARNING rather than CRITICAL.
	DefaultWarningPassRate = 0.90
)

// Log rotation settings for the rotating application log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// EnvPrefix is the prefix for environment variable configuration overrides
// (e.g. DQ_OUTPUT, DQ_VERBOSE).
const EnvPrefix = "DQ"
