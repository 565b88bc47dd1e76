package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
)

// Pipeline stage interfaces. Each stage is a pure function of its arguments:
// no stage reads or writes anything outside what it is handed, which is what
// makes the orchestrator idempotent and safe under concurrent use.

// IncomeProcessor sums income records into category totals.
type IncomeProcessor interface {
	Aggregate(in *models.TaxReturnInput) models.IncomeResult
}

// FicaProcessor computes payroll and self-employment tax. It runs before the
// AGI stage because half the SE tax is an above-the-line deduction.
type FicaProcessor interface {
	Calculate(income models.IncomeResult, filingStatus models.FilingStatus) models.FicaResult
}

// AGIProcessor computes adjusted gross income.
type AGIProcessor interface {
	Calculate(in *models.TaxReturnInput, income models.IncomeResult, fica models.FicaResult) models.AGIResult
}

// DeductionProcessor selects standard vs. itemized and partitions taxable
// income into ordinary and preferential components.
type DeductionProcessor interface {
	Select(in *models.TaxReturnInput, income models.IncomeResult, agi models.AGIResult) models.DeductionResult
}

// TaxComputationProcessor applies bracket tax, preferential stacking, and NIIT.
type TaxComputationProcessor interface {
	Compute(income models.IncomeResult, agi models.AGIResult, deductions models.DeductionResult, filingStatus models.FilingStatus) models.TaxComputationResult
}

// CreditsProcessor applies the Child Tax Credit.
type CreditsProcessor interface {
	Apply(in *models.TaxReturnInput, agi models.AGIResult, taxComputation models.TaxComputationResult) models.CreditsResult
}

// SummaryProcessor composes the headline figures.
type SummaryProcessor interface {
	Compose(in *models.TaxReturnInput, income models.IncomeResult, agi models.AGIResult,
		deductions models.DeductionResult, taxComputation models.TaxComputationResult,
		credits models.CreditsResult, fica models.FicaResult) models.TaxSummary
}

// Rounding is applied at stage boundaries, never mid-expression, so results
// are reproducible regardless of evaluation order inside a stage.
func roundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

func roundRate(v decimal.Decimal) decimal.Decimal {
	return v.Round(6)
}
