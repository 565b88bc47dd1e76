package services

import (
	"errors"

	"github.com/username/taxclarity/backend/src/model"
	"github.com/username/taxclarity/backend/src/models"
)

var (
	ErrValidationFailed    = errors.New("input validation failed")
	ErrCalculationNotFound = errors.New("calculation not found")
)

// ReferenceData is the public rate-table view served by the reference
// endpoints: the bracket schedules and deduction amounts for the active year.
type ReferenceData struct {
	TaxYear              int                                          `json:"taxYear"`
	Brackets             map[models.FilingStatus][]ReferenceBracket   `json:"brackets,omitempty"`
	CapitalGainsBrackets map[models.FilingStatus][]ReferenceBracket   `json:"capitalGainsBrackets,omitempty"`
	StandardDeductions   map[models.FilingStatus]string               `json:"standardDeductions,omitempty"`
	AdditionalDeductions map[string]string                            `json:"additionalDeductions,omitempty"`
}

// ReferenceBracket is one tier of a published schedule. UpperBound is empty
// for the unbounded top tier.
type ReferenceBracket struct {
	UpperBound string `json:"upperBound,omitempty"`
	Rate       string `json:"rate"`
}

// CalculationService is the core tax calculation API used by the HTTP layer.
type CalculationService interface {
	// Calculate validates, runs the full pipeline, and saves the result for
	// the user. Persistence is best-effort: a storage failure never fails
	// the calculation.
	Calculate(userID int64, input *models.TaxReturnInput) (*models.FullTaxCalculationResult, error)

	// Estimate answers the public quick estimate: standard deduction plus
	// bracket tax on gross income, with no FICA or credits. Nothing is
	// persisted.
	Estimate(input *models.EstimateInput) (*models.EstimateResult, error)

	ListCalculations(userID int64) ([]model.StoredCalculation, error)
	GetCalculation(userID, calcID int64) (*model.StoredCalculation, error)
	DeleteCalculation(userID, calcID int64) error

	BracketReference() ReferenceData
	DeductionReference() ReferenceData
}
