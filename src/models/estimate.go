package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EstimateInput is the quick-estimate request: gross income and filing
// status only. No income breakdown, deductions, or credits.
type EstimateInput struct {
	GrossIncome  decimal.Decimal `json:"grossIncome"`
	FilingStatus FilingStatus    `json:"filingStatus"`
}

func (in *EstimateInput) Validate() error {
	if in == nil {
		return fmt.Errorf("%w: estimate input is required", ErrIncompleteInput)
	}
	if !in.FilingStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilingStatus, in.FilingStatus)
	}
	if in.GrossIncome.IsNegative() {
		return newValidationError("grossIncome", -1, "must be non-negative")
	}
	return nil
}

// EstimateResult is the simplified summary produced by a quick estimate:
// standard deduction plus bracket tax. FICA, credits, and preferential
// rates are not applied; the effective rate is over taxable income.
type EstimateResult struct {
	GrossIncome       decimal.Decimal `json:"grossIncome"`
	FilingStatus      FilingStatus    `json:"filingStatus"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	EstimatedTax      decimal.Decimal `json:"estimatedTax"`
	EffectiveRate     decimal.Decimal `json:"effectiveRate"`
	MarginalRate      decimal.Decimal `json:"marginalRate"`
}
