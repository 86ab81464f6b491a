package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrConfigNotFound,
		info: ErrorInfo{
			Message: "Configuration file not found.",
			Action:  "Run 'dataquality init' to create a starter configuration.",
		},
	},
	{
		err: ErrConfigMissingKey,
		info: ErrorInfo{
			Message: "A required configuration key is missing.",
			Action:  "Check validation.mandatory_fields, amount, timestamp and threshold settings in config.yaml.",
		},
	},
	{
		err: ErrConfigInvalid,
		info: ErrorInfo{
			Message: "A configuration value is outside its valid range.",
			Action:  "Review the reported key in config.yaml and correct its value.",
		},
	},
	{
		err: ErrColumnMissing,
		info: ErrorInfo{
			Message: "A validation rule references a column that is not in the input schema.",
			Action:  "Align validation.mandatory_fields with the columns of the input file.",
		},
	},
	{
		err: ErrSchemaMismatch,
		info: ErrorInfo{
			Message: "The input file does not carry the expected transaction columns.",
			Action:  "Ensure the CSV header includes transaction_id, account_id, amount, currency, timestamp.",
		},
	},
	{
		err: ErrStoreUnavailable,
		info: ErrorInfo{
			Message: "The results database could not be opened.",
			Action:  "Check the store.path setting and file permissions, or disable persistence with store.enabled=false.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
}

// UserMessage returns a user-friendly message for known sentinel errors.
// Unknown errors fall back to their Error() string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for known sentinel errors, or an
// empty string when no suggestion exists.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
