package database

import (
	"database/sql"
	"fmt"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// UpsertFeeStructureItem creates or replaces the rate for a
// (year, grade, term, fee type) key. The fee structure is a pure catalog:
// changing a rate never touches receivables that were already generated
// from it.
func UpsertFeeStructureItem(db *sql.DB, item *models.FeeStructureItem) error {
	if item.Year == "" || item.Grade == "" || item.FeeType == "" {
		return fmt.Errorf("%w: year, grade and fee type are required", ErrInvalidInput)
	}
	if !models.ValidTerm(item.Term) {
		return fmt.Errorf("%w: term must be 1, 2 or 3", ErrInvalidInput)
	}
	if !item.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}

	query := `INSERT INTO fee_structure (year, grade, term, fee_type, amount, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (year, grade, term, fee_type)
			  DO UPDATE SET amount = excluded.amount, description = excluded.description`
	_, err := db.Exec(query, item.Year, item.Grade, item.Term, item.FeeType, item.Amount, item.Description)
	if err != nil {
		return fmt.Errorf("failed to save fee structure item: %w", err)
	}
	return nil
}

// DeleteFeeStructureItem removes one rate by its composite key.
func DeleteFeeStructureItem(db *sql.DB, year, grade string, term int, feeType string) error {
	res, err := db.Exec(`DELETE FROM fee_structure WHERE year = $1 AND grade = $2 AND term = $3 AND fee_type = $4`,
		year, grade, term, feeType)
	if err != nil {
		return fmt.Errorf("failed to delete fee structure item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: fee structure item (%s, %s, %d, %s)", ErrReferenceNotFound, year, grade, term, feeType)
	}
	return nil
}

// GetFeeStructure returns the whole rate table, newest year first.
func GetFeeStructure(db *sql.DB) ([]*models.FeeStructureItem, error) {
	query := `SELECT year, grade, term, fee_type, amount, COALESCE(description, '')
			  FROM fee_structure
			  ORDER BY year DESC, grade, term, fee_type`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.FeeStructureItem{}
	for rows.Next() {
		item := &models.FeeStructureItem{}
		err := rows.Scan(&item.Year, &item.Grade, &item.Term, &item.FeeType, &item.Amount, &item.Description)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
