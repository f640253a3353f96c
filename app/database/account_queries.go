package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// CreateAccount opens a new school account. The current balance starts at
// the opening balance; a duplicate account name fails with ErrDuplicateKey
// and writes nothing.
func CreateAccount(db *sql.DB, account *models.Account) error {
	if account.AccountName == "" || account.BankName == "" || account.AccountNumber == "" {
		return fmt.Errorf("%w: account name, bank name and account number are required", ErrInvalidInput)
	}

	account.ID = uuid.NewString()
	account.CurrentBalance = account.OpeningBalance
	account.DateCreated = time.Now()

	query := `INSERT INTO accounts (id, account_name, bank_name, account_number, opening_balance, current_balance, date_created)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.Exec(query,
		account.ID, account.AccountName, account.BankName, account.AccountNumber,
		account.OpeningBalance, account.CurrentBalance, account.DateCreated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: an account named %q already exists", ErrDuplicateKey, account.AccountName)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// AdjustBalance applies a signed delta to an account's current balance.
// This is the only statement in the codebase that writes current_balance;
// the transaction recorder and the obligation lifecycle call it inside
// their own transactions so the balance and its history commit together.
func AdjustBalance(q Querier, accountID string, delta decimal.Decimal) error {
	res, err := q.Exec(`UPDATE accounts SET current_balance = current_balance + $1 WHERE id = $2`, delta, accountID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", ErrReferenceNotFound, accountID)
	}
	return nil
}

// GetAccounts returns all accounts in creation order. The batch generator
// relies on this order to pick its default account.
func GetAccounts(db *sql.DB) ([]*models.Account, error) {
	query := `SELECT id, account_name, bank_name, account_number, opening_balance, current_balance, date_created
			  FROM accounts
			  ORDER BY date_created, id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		a := &models.Account{}
		err := rows.Scan(
			&a.ID, &a.AccountName, &a.BankName, &a.AccountNumber,
			&a.OpeningBalance, &a.CurrentBalance, &a.DateCreated,
		)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetAccountByID returns a single account.
func GetAccountByID(db *sql.DB, id string) (*models.Account, error) {
	return scanAccount(db.QueryRow(`SELECT id, account_name, bank_name, account_number, opening_balance, current_balance, date_created
		FROM accounts WHERE id = $1`, id))
}

// GetAccountByName returns a single account by its natural key.
func GetAccountByName(db *sql.DB, name string) (*models.Account, error) {
	return scanAccount(db.QueryRow(`SELECT id, account_name, bank_name, account_number, opening_balance, current_balance, date_created
		FROM accounts WHERE account_name = $1`, name))
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(
		&a.ID, &a.AccountName, &a.BankName, &a.AccountNumber,
		&a.OpeningBalance, &a.CurrentBalance, &a.DateCreated,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: account", ErrReferenceNotFound)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
