// Package store persists validation output to a SQLite database and can also
// serve as the transaction source for a run. It is an optional collaborator:
// the validation pipeline has zero dependency on it, and callers inject it
// behind the Persister and Loader interfaces where a database is wanted.
package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver registration
	"github.com/shopspring/decimal"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// Persister is the capability consumed by callers that want validation
// output persisted. Store implements it; callers without persistence simply
// pass nil.
type Persister interface {
	SaveFailedRecords(ctx context.Context, runID, check string, failed []domain.FailedRecord) error
	SaveQualityReport(ctx context.Context, runID string, summary domain.Summary, results map[string]domain.CheckResult) error
}

// Loader is the capability consumed by callers that validate transactions
// sourced from the database instead of a CSV file.
type Loader interface {
	LoadTransactions(ctx context.Context, limit int) (domain.RecordSet, error)
}

// Store is a SQLite-backed Persister and Loader.
type Store struct {
	db *sql.DB
}

// Ensure Store implements both capabilities.
var (
	_ Persister = (*Store)(nil)
	_ Loader    = (*Store)(nil)
)

// The transactions table puts no uniqueness constraint on transaction_id;
// duplicate and missing IDs are data-quality findings, not insert errors.
const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	transaction_id TEXT,
	account_id TEXT,
	amount TEXT,
	currency TEXT,
	record_timestamp TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS failed_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	validation_check TEXT NOT NULL,
	transaction_id TEXT,
	account_id TEXT,
	amount TEXT,
	currency TEXT,
	record_timestamp TEXT,
	failure_reason TEXT NOT NULL,
	failed_fields TEXT NOT NULL,
	failed_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS quality_reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	report_date DATETIME NOT NULL,
	total_records INTEGER NOT NULL,
	passed_records INTEGER NOT NULL,
	failed_records INTEGER NOT NULL,
	pass_rate REAL NOT NULL,
	quality_score REAL NOT NULL,
	quality_status TEXT NOT NULL,
	validation_details TEXT NOT NULL
);
`

// Open opens (or creates) the database at path and ensures the schema
// exists. Returns ErrStoreUnavailable when the database cannot be opened.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrStoreUnavailable, "open %s: %v", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(errors.ErrStoreUnavailable, "create tables: %v", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "failed to close store")
}

// ImportTransactions appends a batch of transactions to the transactions
// table. Null amounts persist as empty strings, matching the CSV convention.
func (s *Store) ImportTransactions(ctx context.Context, records domain.RecordSet) error {
	if records.IsEmpty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions
			(transaction_id, account_id, amount, currency, record_timestamp)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records.Records {
		amount := ""
		if rec.Amount.Valid {
			amount = rec.Amount.Decimal.String()
		}
		if _, err := stmt.ExecContext(ctx,
			rec.TransactionID, rec.AccountID, amount, rec.Currency, rec.Timestamp,
		); err != nil {
			return errors.Wrapf(err, "failed to insert record %s", rec.TransactionID)
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit transactions")
}

// LoadTransactions reads transactions back out of the database in insertion
// order, as a batch ready for validation. A limit of zero or less loads the
// whole table. Empty and unparsable amount cells come back null; the amount
// checks decide what to make of them.
func (s *Store) LoadTransactions(ctx context.Context, limit int) (domain.RecordSet, error) {
	query := `
		SELECT transaction_id, account_id, amount, currency, record_timestamp
		FROM transactions ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.RecordSet{}, errors.Wrap(err, "failed to query transactions")
	}
	defer func() { _ = rows.Close() }()

	var records []domain.Record
	for rows.Next() {
		var txnID, accountID, amount, currency, timestamp sql.NullString
		if err := rows.Scan(&txnID, &accountID, &amount, &currency, &timestamp); err != nil {
			return domain.RecordSet{}, errors.Wrap(err, "failed to scan transaction row")
		}
		rec := domain.Record{
			TransactionID: txnID.String,
			AccountID:     accountID.String,
			Currency:      currency.String,
			Timestamp:     timestamp.String,
		}
		if amount.Valid && amount.String != "" {
			if d, perr := decimal.NewFromString(amount.String); perr == nil {
				rec.Amount = decimal.NewNullDecimal(d)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.RecordSet{}, errors.Wrap(err, "failed to iterate transactions")
	}

	return domain.NewRecordSet(records...), nil
}

// SaveFailedRecords appends the failed records of one check to the
// failed_records table. An empty slice is a no-op.
func (s *Store) SaveFailedRecords(ctx context.Context, runID, check string, failed []domain.FailedRecord) error {
	if len(failed) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO failed_records
			(run_id, validation_check, transaction_id, account_id, amount, currency, record_timestamp, failure_reason, failed_fields, failed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, fr := range failed {
		amount := ""
		if fr.Amount.Valid {
			amount = fr.Amount.Decimal.String()
		}
		if _, err := stmt.ExecContext(ctx,
			runID, check,
			fr.TransactionID, fr.AccountID, amount, fr.Currency, fr.Timestamp,
			fr.FailureReason, fr.FailedFields, fr.ValidatedAt,
		); err != nil {
			return errors.Wrapf(err, "failed to insert record %s", fr.TransactionID)
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit failed records")
}

// SaveQualityReport appends the run summary to the quality_reports table,
// with the per-check results serialized into the validation_details column.
func (s *Store) SaveQualityReport(ctx context.Context, runID string, summary domain.Summary, results map[string]domain.CheckResult) error {
	details, err := json.Marshal(results)
	if err != nil {
		return errors.Wrap(err, "failed to marshal check results")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quality_reports
			(run_id, report_date, total_records, passed_records, failed_records, pass_rate, quality_score, quality_status, validation_details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		summary.ValidatedAt,
		summary.TotalInputRecords,
		summary.TotalPassedRecords,
		summary.TotalFailedRecords,
		summary.OverallPassRate,
		summary.QualityScore,
		string(summary.QualityStatus),
		string(details),
	)
	return errors.Wrap(err, "failed to insert quality report")
}
