package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// Orchestrator runs the full calculation pipeline in statutory order:
// income aggregation, FICA/SE tax, AGI, deduction selection, income tax,
// credits, summary. It holds no mutable state, so a single instance is safe
// for concurrent use.
type Orchestrator struct {
	rates    *taxdata.RateTable
	brackets *BracketCalculator

	income  IncomeProcessor
	fica    FicaProcessor
	agi     AGIProcessor
	deduct  DeductionProcessor
	tax     TaxComputationProcessor
	credits CreditsProcessor
	summary SummaryProcessor
}

func New(rates *taxdata.RateTable) *Orchestrator {
	return &Orchestrator{
		rates:    rates,
		brackets: NewBracketCalculator(rates),
		income:   NewIncomeProcessor(),
		fica:     NewFicaProcessor(rates),
		agi:      NewAGIProcessor(),
		deduct:   NewDeductionProcessor(rates),
		tax:      NewTaxComputationProcessor(rates),
		credits:  NewCreditsProcessor(rates),
		summary:  NewSummaryProcessor(rates),
	}
}

// Calculate runs the pipeline over a validated input. Every stage is a pure
// function of the stage results before it, so calling Calculate twice with
// the same input yields identical results.
// Estimate answers the quick-estimate question: gross income and filing
// status in, standard deduction and bracket tax out. FICA, credits, and
// preferential rates are skipped; the effective rate is over taxable income.
func (o *Orchestrator) Estimate(in *models.EstimateInput) models.EstimateResult {
	standardDeduction := o.rates.StandardDeduction[in.FilingStatus]
	taxableIncome := decimal.Max(in.GrossIncome.Sub(standardDeduction), decimal.Zero)
	tax, _ := o.brackets.Tax(taxableIncome, in.FilingStatus)

	effectiveRate := decimal.Zero
	if taxableIncome.IsPositive() {
		effectiveRate = roundRate(tax.Div(taxableIncome))
	}

	return models.EstimateResult{
		GrossIncome:       in.GrossIncome,
		FilingStatus:      in.FilingStatus,
		StandardDeduction: standardDeduction,
		TaxableIncome:     taxableIncome,
		EstimatedTax:      tax,
		EffectiveRate:     effectiveRate,
		MarginalRate:      o.brackets.MarginalRate(taxableIncome, in.FilingStatus),
	}
}

func (o *Orchestrator) Calculate(in *models.TaxReturnInput) models.FullTaxCalculationResult {
	income := o.income.Aggregate(in)
	fica := o.fica.Calculate(income, in.FilingStatus)
	agi := o.agi.Calculate(in, income, fica)
	deductions := o.deduct.Select(in, income, agi)
	taxComputation := o.tax.Compute(income, agi, deductions, in.FilingStatus)
	credits := o.credits.Apply(in, agi, taxComputation)
	summary := o.summary.Compose(in, income, agi, deductions, taxComputation, credits, fica)

	return models.FullTaxCalculationResult{
		Income:         income,
		Fica:           fica,
		AGI:            agi,
		Deductions:     deductions,
		TaxComputation: taxComputation,
		Credits:        credits,
		Summary:        summary,
	}
}
