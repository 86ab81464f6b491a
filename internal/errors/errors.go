// Package errors provides centralized error handling for the data quality
// framework.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be checked
// using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigNotFound indicates that the configuration file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigMissingKey indicates that a required configuration key is
	// absent. This is a fatal configuration error, not a data-quality finding.
	ErrConfigMissingKey = errors.New("required configuration key missing")

	// ErrConfigInvalid indicates a configuration value outside its valid range.
	ErrConfigInvalid = errors.New("invalid configuration value")

	// ErrColumnMissing indicates that a column referenced by a validation rule
	// is absent from the input schema. Rule violations on present data are
	// findings, never errors; a missing column is a configuration problem and
	// aborts the run.
	ErrColumnMissing = errors.New("column missing from input schema")

	// ErrSchemaMismatch indicates that an input file does not carry the
	// expected transaction columns.
	ErrSchemaMismatch = errors.New("input schema mismatch")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrStoreUnavailable indicates that the persistence store could not be
	// opened or reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrQualityCritical indicates a batch was classified CRITICAL while
	// running in strict mode.
	ErrQualityCritical = errors.New("batch quality is critical")
)
