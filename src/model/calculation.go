package model

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/username/taxclarity/backend/src/models"
)

var ErrCalculationNotFound = errors.New("calculation not found")

// StoredCalculation is one saved tax calculation. The headline figures are
// denormalized into their own columns for cheap listing; the full input and
// result live as JSON blobs.
type StoredCalculation struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	TaxYear      int                 `json:"taxYear"`
	FilingStatus models.FilingStatus `json:"filingStatus"`
	TotalIncome  float64             `json:"totalIncome"`
	AGI          float64             `json:"agi"`
	TaxableIncome float64            `json:"taxableIncome"`
	TotalTax     float64             `json:"totalTax"`
	RefundOrOwed float64             `json:"refundOrOwed"`
	CreatedAt    time.Time           `json:"createdAt"`

	// Populated only by GetCalculation, not by listings.
	Input  *models.TaxReturnInput          `json:"input,omitempty"`
	Result *models.FullTaxCalculationResult `json:"result,omitempty"`
}

// SaveCalculation persists a calculation for a user and returns the new row ID.
func SaveCalculation(db *sql.DB, userID int64, taxYear int, input *models.TaxReturnInput, result *models.FullTaxCalculationResult) (int64, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal calculation input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal calculation result: %w", err)
	}

	query := `
	INSERT INTO tax_calculations (user_id, tax_year, filing_status, total_income, agi, taxable_income, total_tax, refund_or_owed, input_json, result_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := db.Prepare(query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	summary := result.Summary
	res, err := stmt.Exec(
		userID,
		taxYear,
		string(summary.FilingStatus),
		summary.TotalIncome.InexactFloat64(),
		summary.AGI.InexactFloat64(),
		summary.TaxableIncome.InexactFloat64(),
		summary.TotalTax.InexactFloat64(),
		summary.RefundOrOwed.InexactFloat64(),
		string(inputJSON),
		string(resultJSON),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListCalculations returns a user's saved calculations, newest first, without
// the JSON blobs.
func ListCalculations(db *sql.DB, userID int64) ([]StoredCalculation, error) {
	query := `
	SELECT id, user_id, tax_year, filing_status, total_income, agi, taxable_income, total_tax, refund_or_owed, created_at
	FROM tax_calculations
	WHERE user_id = ?
	ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []StoredCalculation
	for rows.Next() {
		var c StoredCalculation
		var filingStatus string
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.TaxYear,
			&filingStatus,
			&c.TotalIncome,
			&c.AGI,
			&c.TaxableIncome,
			&c.TotalTax,
			&c.RefundOrOwed,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.FilingStatus = models.FilingStatus(filingStatus)
		calcs = append(calcs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return calcs, nil
}

// GetCalculation returns one saved calculation with the full input and result
// decoded. The user ID is part of the lookup so users cannot read each
// other's rows.
func GetCalculation(db *sql.DB, userID, calcID int64) (*StoredCalculation, error) {
	query := `
	SELECT id, user_id, tax_year, filing_status, total_income, agi, taxable_income, total_tax, refund_or_owed, input_json, result_json, created_at
	FROM tax_calculations
	WHERE id = ? AND user_id = ?`

	row := db.QueryRow(query, calcID, userID)

	var c StoredCalculation
	var filingStatus, inputJSON, resultJSON string
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.TaxYear,
		&filingStatus,
		&c.TotalIncome,
		&c.AGI,
		&c.TaxableIncome,
		&c.TotalTax,
		&c.RefundOrOwed,
		&inputJSON,
		&resultJSON,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCalculationNotFound
		}
		return nil, err
	}
	c.FilingStatus = models.FilingStatus(filingStatus)

	var input models.TaxReturnInput
	if err := json.Unmarshal([]byte(inputJSON), &input); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored calculation input: %w", err)
	}
	var result models.FullTaxCalculationResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored calculation result: %w", err)
	}
	c.Input = &input
	c.Result = &result
	return &c, nil
}

// DeleteCalculation removes a user's saved calculation.
func DeleteCalculation(db *sql.DB, userID, calcID int64) error {
	res, err := db.Exec(`DELETE FROM tax_calculations WHERE id = ? AND user_id = ?`, calcID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCalculationNotFound
	}
	return nil
}
