package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// summaryProcessorImpl composes the headline figures — the Form 1040 bottom
// line.
type summaryProcessorImpl struct {
	brackets *BracketCalculator
}

func NewSummaryProcessor(rates *taxdata.RateTable) SummaryProcessor {
	return &summaryProcessorImpl{brackets: NewBracketCalculator(rates)}
}

func (p *summaryProcessorImpl) Compose(in *models.TaxReturnInput, income models.IncomeResult, agi models.AGIResult,
	deductions models.DeductionResult, taxComputation models.TaxComputationResult,
	credits models.CreditsResult, fica models.FicaResult) models.TaxSummary {

	totalWithholding := decimal.Zero
	for _, w2 := range in.W2s {
		totalWithholding = totalWithholding.Add(w2.FederalWithholding)
	}
	totalPayments := totalWithholding.Add(in.EstimatedPayments)

	totalTax := credits.TaxAfterCredits.Add(fica.TotalFica)

	// Positive means refund. Refundable credits count toward the taxpayer's
	// side of the ledger alongside withholding and estimated payments.
	refundOrOwed := totalPayments.Add(credits.RefundableCTCApplied).Sub(totalTax)

	effectiveRate := decimal.Zero
	if income.TotalGrossIncome.GreaterThan(decimal.Zero) {
		effectiveRate = roundRate(totalTax.Div(income.TotalGrossIncome))
	}

	// Marginal rate of the ordinary brackets only; crossing into NIIT or
	// additional-Medicare territory is deliberately not modeled here.
	marginalRate := p.brackets.MarginalRate(deductions.TaxableIncome, in.FilingStatus)

	return models.TaxSummary{
		FilingStatus:  in.FilingStatus,
		TotalIncome:   income.TotalGrossIncome,
		AGI:           agi.AGI,
		TaxableIncome: deductions.TaxableIncome,

		TotalIncomeTaxBeforeCredits: taxComputation.TotalIncomeTax,
		TotalCredits:                credits.TotalCreditsApplied,
		IncomeTaxAfterCredits:       credits.TaxAfterCredits,
		TotalFica:                   fica.TotalFica,
		TotalTax:                    roundMoney(totalTax),

		EffectiveRate: effectiveRate,
		MarginalRate:  marginalRate,

		TotalWithholding:  roundMoney(totalWithholding),
		EstimatedPayments: roundMoney(in.EstimatedPayments),
		TotalPayments:     roundMoney(totalPayments),
		RefundOrOwed:      roundMoney(refundOrOwed),
	}
}
