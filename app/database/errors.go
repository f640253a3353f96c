package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by the ledger engine. Handlers match these with
// errors.Is; driver error types never escape this package.
var (
	// ErrDuplicateKey: a create hit a natural-key uniqueness constraint
	// (NEMIS number, account name, fee structure composite key).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceNotFound: a natural-key lookup (NEMIS number, account
	// name) matched no row. The whole operation is aborted before any write.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrInvalidInput: amount not positive, term outside 1..3, or a
	// required field missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadySettled: settle was called on an item that is not Pending,
	// or does not exist. The balance is untouched.
	ErrAlreadySettled = errors.New("already settled or not found")

	// ErrNoAccountConfigured: the batch generator found no account to
	// attach receivables to.
	ErrNoAccountConfigured = errors.New("no account configured")

	// ErrNoScheduleForTerm: no student matched a fee structure row for the
	// requested term.
	ErrNoScheduleForTerm = errors.New("no fee schedule for term")

	// ErrStoreUnavailable: the store failed while opening or committing a
	// unit of work. The engine never retries; that is the caller's call.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// begin opens a transaction, mapping connection-level failures to
// ErrStoreUnavailable.
func begin(db *sql.DB) (*sql.Tx, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrStoreUnavailable, err)
	}
	return tx, nil
}

// commit finishes a transaction, mapping failures to ErrStoreUnavailable.
func commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrStoreUnavailable, err)
	}
	return nil
}
