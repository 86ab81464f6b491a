package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dqerrors "github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// txn builds a fully populated test record.
func txn(id, account string, amount float64, currency, ts string) domain.Record {
	return domain.Record{
		TransactionID: id,
		AccountID:     account,
		Amount:        decimal.NewNullDecimal(decimal.NewFromFloat(amount)),
		Currency:      currency,
		Timestamp:     ts,
	}
}

// nullAmount clears the amount on a record, leaving it null.
func nullAmount(r domain.Record) domain.Record {
	r.Amount = decimal.NullDecimal{}
	return r
}

func validSet(ids ...string) domain.RecordSet {
	records := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, txn(id, "ACC123456", 100.50, "USD", "2025-01-15 10:30:00"))
	}
	return domain.NewRecordSet(records...)
}

func TestCheckMandatoryFields(t *testing.T) {
	t.Parallel()

	// Row 3 has a null account_id; every other row is complete.
	set := validSet("T1", "T2", "T3", "T4", "T5")
	set.Records[2].AccountID = ""

	passed, failed, err := CheckMandatoryFields(set, []string{"transaction_id", "account_id", "amount"})

	require.NoError(t, err)
	assert.Equal(t, 4, passed.Len())
	require.Len(t, failed, 1)
	assert.Equal(t, "T3", failed[0].TransactionID)
	assert.Equal(t, "Missing mandatory field(s)", failed[0].FailureReason)
	assert.Contains(t, failed[0].FailedFields, "account_id")
}

func TestCheckMandatoryFields_ListsAllNullFields(t *testing.T) {
	t.Parallel()

	rec := txn("T1", "", 10, "USD", "2025-01-15 10:30:00")
	rec = nullAmount(rec)
	set := domain.NewRecordSet(rec)

	_, failed, err := CheckMandatoryFields(set, []string{"transaction_id", "account_id", "amount"})

	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "account_id, amount", failed[0].FailedFields)
}

func TestCheckMandatoryFields_UnknownColumn(t *testing.T) {
	t.Parallel()

	_, _, err := CheckMandatoryFields(validSet("T1"), []string{"transaction_id", "branch_code"})

	require.Error(t, err)
	require.ErrorIs(t, err, dqerrors.ErrColumnMissing)
}

func TestCheckMandatoryFields_ExtraColumn(t *testing.T) {
	t.Parallel()

	set := validSet("T1", "T2")
	set.ExtraColumns = []string{"channel"}
	set.Records[0].Extra = map[string]string{"channel": "web"}
	// Record T2 has a null channel.

	passed, failed, err := CheckMandatoryFields(set, []string{"transaction_id", "channel"})

	require.NoError(t, err)
	assert.Equal(t, 1, passed.Len())
	require.Len(t, failed, 1)
	assert.Equal(t, "channel", failed[0].FailedFields)
}

func TestCheckAmountRange(t *testing.T) {
	t.Parallel()

	amounts := []float64{100.50, -50.00, 200.75, 0.00, 1500000.00}
	records := make([]domain.Record, 0, len(amounts))
	for i, a := range amounts {
		records = append(records, txn("T"+string(rune('1'+i)), "ACC1", a, "USD", "2025-01-15 10:30:00"))
	}
	set := domain.NewRecordSet(records...)

	passed, failed, err := CheckAmountRange(set, 0.01, 1000000.00)

	require.NoError(t, err)
	assert.Equal(t, 2, passed.Len())
	require.Len(t, failed, 3)
	for _, f := range failed {
		assert.Equal(t, "amount", f.FailedFields)
		assert.Equal(t, "Amount not in valid range (0.01 - 1000000)", f.FailureReason,
			"bounds render in plain decimal notation, not scientific")
	}
}

func TestCheckAmountRange_NullAmountFails(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(nullAmount(txn("T1", "ACC1", 0, "USD", "x")))

	passed, failed, err := CheckAmountRange(set, 0.01, 1000000.00)

	require.NoError(t, err)
	assert.Zero(t, passed.Len())
	assert.Len(t, failed, 1)
}

// TestCheckAmountRange_MinValueNotApplied pins the observed floor: amounts
// between zero and the configured min_value still pass. Do not "fix" this
// without product sign-off.
func TestCheckAmountRange_MinValueNotApplied(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(txn("T1", "ACC1", 0.005, "USD", "x"))

	passed, failed, err := CheckAmountRange(set, 0.01, 1000000.00)

	require.NoError(t, err)
	assert.Equal(t, 1, passed.Len())
	assert.Empty(t, failed)
}

func TestCheckCurrencyCodes(t *testing.T) {
	t.Parallel()

	codes := []string{"USD", "EUR", "XXX", "GBP", "USD"}
	records := make([]domain.Record, 0, len(codes))
	for i, c := range codes {
		records = append(records, txn("T"+string(rune('1'+i)), "ACC1", 10, c, "x"))
	}
	set := domain.NewRecordSet(records...)

	passed, failed, err := CheckCurrencyCodes(set, []string{"USD", "EUR", "GBP", "JPY", "CAD"})

	require.NoError(t, err)
	assert.Equal(t, 4, passed.Len())
	require.Len(t, failed, 1)
	assert.Equal(t, "XXX", failed[0].Currency)
	assert.Equal(t, "currency", failed[0].FailedFields)
}

func TestCheckCurrencyCodes_CaseSensitive(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(txn("T1", "ACC1", 10, "usd", "x"))

	passed, failed, err := CheckCurrencyCodes(set, []string{"USD"})

	require.NoError(t, err)
	assert.Zero(t, passed.Len())
	assert.Len(t, failed, 1, "matching is exact, no normalization")
}

func TestCheckCurrencyCodes_NullFails(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(txn("T1", "ACC1", 10, "", "x"))

	_, failed, err := CheckCurrencyCodes(set, []string{"USD"})

	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestCheckDuplicateTransactions(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(
		txn("T1", "A", 1, "USD", "x"),
		txn("T2", "B", 2, "USD", "x"),
		txn("T1", "C", 3, "USD", "x"),
		txn("T3", "D", 4, "USD", "x"),
	)

	passed, failed, err := CheckDuplicateTransactions(set)

	require.NoError(t, err)
	assert.Equal(t, 2, passed.Len())
	require.Len(t, failed, 2, "every member of a duplicate group fails, none is kept")
	for _, f := range failed {
		assert.Equal(t, "T1", f.TransactionID)
		assert.Equal(t, "Duplicate transaction ID", f.FailureReason)
		assert.Equal(t, "transaction_id", f.FailedFields)
	}
	assert.Equal(t, "T2", passed.Records[0].TransactionID)
	assert.Equal(t, "T3", passed.Records[1].TransactionID)
}

func TestCheckTimestampFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	set := domain.NewRecordSet(
		txn("T1", "A", 1, "USD", "2025-05-30 08:00:00"), // valid, in the past
		txn("T2", "B", 2, "USD", ""),                    // null
		txn("T3", "C", 3, "USD", "30/05/2025"),          // wrong layout
		txn("T4", "D", 4, "USD", "2025-06-05 00:00:00"), // beyond now+1d
		txn("T5", "E", 5, "USD", "2025-06-02 11:00:00"), // within the future bound
	)

	passed, failed, err := CheckTimestampFormat(set, "2006-01-02 15:04:05", 1, now)

	require.NoError(t, err)
	assert.Equal(t, 2, passed.Len())
	require.Len(t, failed, 3)

	reasons := map[string]string{}
	for _, f := range failed {
		reasons[f.TransactionID] = f.FailureReason
		assert.Equal(t, "timestamp", f.FailedFields)
	}
	assert.Equal(t, "Null timestamp", reasons["T2"])
	assert.Equal(t, "Invalid timestamp format (expected: 2006-01-02 15:04:05)", reasons["T3"])
	assert.Equal(t, "Timestamp too far in future (max 1 days)", reasons["T4"])
}

func TestCheckAccountIDFormat_Default(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(
		txn("T1", "ACC123456", 1, "USD", "x"),
		txn("T2", "", 2, "USD", "x"),
		txn("T3", "   ", 3, "USD", "x"),
	)

	passed, failed, err := CheckAccountIDFormat(set, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, passed.Len())
	require.Len(t, failed, 2)
	for _, f := range failed {
		assert.Equal(t, "Invalid account ID format", f.FailureReason)
		assert.Equal(t, "account_id", f.FailedFields)
	}
}

func TestCheckAccountIDFormat_Pattern(t *testing.T) {
	t.Parallel()

	pattern, err := CompileAccountIDPattern(`ACC\d{6}`)
	require.NoError(t, err)

	set := domain.NewRecordSet(
		txn("T1", "ACC123456", 1, "USD", "x"),
		txn("T2", "XYZ999", 2, "USD", "x"),
		txn("T3", "", 3, "USD", "x"),
	)

	passed, failed, checkErr := CheckAccountIDFormat(set, pattern)

	require.NoError(t, checkErr)
	assert.Equal(t, 1, passed.Len())
	assert.Len(t, failed, 2)
}

// TestChecks_EmptyInput verifies all six checks return two empty partitions
// and no error on an empty record set.
func TestChecks_EmptyInput(t *testing.T) {
	t.Parallel()

	empty := domain.RecordSet{}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	checks := map[string]func() (domain.RecordSet, []domain.FailedRecord, error){
		"mandatory_fields": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckMandatoryFields(empty, []string{"transaction_id"})
		},
		"amount_range": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckAmountRange(empty, 0.01, 1000000)
		},
		"currency_codes": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckCurrencyCodes(empty, []string{"USD"})
		},
		"duplicate_transactions": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckDuplicateTransactions(empty)
		},
		"timestamp_format": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckTimestampFormat(empty, "2006-01-02 15:04:05", 1, now)
		},
		"account_id_format": func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckAccountIDFormat(empty, nil)
		},
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			passed, failed, err := check()

			require.NoError(t, err)
			assert.Zero(t, passed.Len())
			assert.Empty(t, failed)
		})
	}
}

// TestChecks_PartitionCompleteness verifies passed+failed covers the input
// for a mixed batch on every check.
func TestChecks_PartitionCompleteness(t *testing.T) {
	t.Parallel()

	set := domain.NewRecordSet(
		txn("T1", "ACC1", 100, "USD", "2025-01-15 10:30:00"),
		txn("T2", "", -5, "XXX", "bad"),
		txn("T3", "ACC3", 50, "EUR", ""),
		txn("T3", "ACC4", 60, "GBP", "2025-01-16 10:30:00"),
	)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	type partition struct {
		passed domain.RecordSet
		failed []domain.FailedRecord
	}
	run := func(f func() (domain.RecordSet, []domain.FailedRecord, error)) partition {
		passed, failed, err := f()
		require.NoError(t, err)
		return partition{passed, failed}
	}

	parts := []partition{
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckMandatoryFields(set, []string{"account_id"})
		}),
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckAmountRange(set, 0.01, 1000000)
		}),
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckCurrencyCodes(set, []string{"USD", "EUR", "GBP"})
		}),
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckDuplicateTransactions(set)
		}),
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckTimestampFormat(set, "2006-01-02 15:04:05", 1, now)
		}),
		run(func() (domain.RecordSet, []domain.FailedRecord, error) {
			return CheckAccountIDFormat(set, nil)
		}),
	}

	for _, p := range parts {
		assert.Equal(t, set.Len(), p.passed.Len()+len(p.failed))
	}
}
