package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// creditsProcessorImpl applies the Child Tax Credit — IRC §24, Form 1040
// Lines 19-28. The nonrefundable portion is capped at the pre-credit income
// tax; the unused remainder becomes refundable up to the per-child cap.
type creditsProcessorImpl struct {
	rates *taxdata.RateTable
}

func NewCreditsProcessor(rates *taxdata.RateTable) CreditsProcessor {
	return &creditsProcessorImpl{rates: rates}
}

// childTaxCredit computes the total CTC before the refundable split,
// including the AGI phase-out: the per-child amount is reduced by $50 per
// $1,000 (rounded half-up to whole units) of AGI over the threshold.
func (p *creditsProcessorImpl) childTaxCredit(numChildren int, agi decimal.Decimal, filingStatus models.FilingStatus) decimal.Decimal {
	if numChildren <= 0 {
		return decimal.Zero
	}

	maxCredit := p.rates.ChildTaxCreditPerChild.Mul(decimal.NewFromInt(int64(numChildren)))
	threshold := p.rates.ChildTaxCreditPhaseoutThresholds[filingStatus]
	excess := decimal.Max(agi.Sub(threshold), decimal.Zero)

	phaseoutUnits := excess.Div(p.rates.ChildTaxCreditPhaseoutStep).Round(0)
	phaseout := phaseoutUnits.Mul(p.rates.ChildTaxCreditPhaseoutAmount)

	return decimal.Max(maxCredit.Sub(phaseout), decimal.Zero)
}

func (p *creditsProcessorImpl) Apply(in *models.TaxReturnInput, agi models.AGIResult, taxComputation models.TaxComputationResult) models.CreditsResult {
	taxBefore := taxComputation.TotalIncomeTax
	numChildren := in.Credits.NumQualifyingChildren

	ctcTotal := p.childTaxCredit(numChildren, agi.AGI, in.FilingStatus)

	// Nonrefundable first: cannot reduce liability below zero.
	nonrefundableApplied := decimal.Min(ctcTotal, decimal.Max(taxBefore, decimal.Zero))
	taxAfter := decimal.Max(taxBefore.Sub(nonrefundableApplied), decimal.Zero)

	// The unused remainder is refundable up to the per-child cap.
	unused := ctcTotal.Sub(nonrefundableApplied)
	refundableCap := p.rates.ChildTaxCreditRefundableCap.Mul(decimal.NewFromInt(int64(numChildren)))
	refundableApplied := decimal.Min(unused, refundableCap)

	totalApplied := nonrefundableApplied.Add(refundableApplied)

	return models.CreditsResult{
		ChildTaxCredit:          roundMoney(ctcTotal),
		NonrefundableCTCApplied: roundMoney(nonrefundableApplied),
		RefundableCTCApplied:    roundMoney(refundableApplied),
		TotalCreditsApplied:     roundMoney(totalApplied),
		TaxAfterCredits:         roundMoney(taxAfter),
	}
}
