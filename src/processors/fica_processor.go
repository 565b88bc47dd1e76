package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// ficaProcessorImpl computes payroll and self-employment tax — Schedule SE
// and Form 8959. The 15.3% combined SE rate is split into a capped Social
// Security component and an uncapped Medicare component.
type ficaProcessorImpl struct {
	rates *taxdata.RateTable
}

func NewFicaProcessor(rates *taxdata.RateTable) FicaProcessor {
	return &ficaProcessorImpl{rates: rates}
}

func (p *ficaProcessorImpl) Calculate(income models.IncomeResult, filingStatus models.FilingStatus) models.FicaResult {
	wages := income.Wages
	seIncome := income.SelfEmploymentIncome

	// W-2 employee side.
	ssWages := decimal.Min(wages, p.rates.SocialSecurityWageBase)
	w2SSTax := roundMoney(ssWages.Mul(p.rates.SocialSecurityRate))
	w2MedicareTax := roundMoney(wages.Mul(p.rates.MedicareRate))

	// Self-employment tax on 92.35% of net SE income — IRC §1402(a).
	seTax := decimal.Zero
	seSSTax := decimal.Zero
	seMedicareTax := decimal.Zero
	seBase := decimal.Zero

	if seIncome.GreaterThan(decimal.Zero) {
		seBase = roundMoney(seIncome.Mul(p.rates.SETaxableFraction))

		// SS portion is capped at the wage-base room left after W-2 wages.
		remainingSSBase := decimal.Max(p.rates.SocialSecurityWageBase.Sub(wages), decimal.Zero)
		seSSWages := decimal.Min(seBase, remainingSSBase)
		seSSTax = roundMoney(seSSWages.Mul(p.rates.SESocialSecurityRate))

		// Medicare portion is uncapped.
		seMedicareTax = roundMoney(seBase.Mul(p.rates.SEMedicareRate))

		seTax = seSSTax.Add(seMedicareTax)
	}

	// Additional Medicare tax is evaluated once against the combined
	// W-2 wage + SE base amount, so the threshold is not double-counted.
	threshold := p.rates.AdditionalMedicareThresholds[filingStatus]
	combinedForMedicare := wages.Add(seBase)
	excessMedicare := decimal.Max(combinedForMedicare.Sub(threshold), decimal.Zero)
	additionalMedicare := roundMoney(excessMedicare.Mul(p.rates.AdditionalMedicareRate))

	// Half the SE tax becomes an above-the-line deduction; the AGI stage
	// consumes it, which is why FICA always runs first.
	seTaxDeduction := roundMoney(seTax.Mul(p.rates.SEDeductibleFraction))

	totalFica := w2SSTax.Add(w2MedicareTax).Add(seTax).Add(additionalMedicare)

	return models.FicaResult{
		SocialSecurityTax:     roundMoney(w2SSTax.Add(seSSTax)),
		MedicareTax:           roundMoney(w2MedicareTax.Add(seMedicareTax)),
		AdditionalMedicareTax: additionalMedicare,
		SelfEmploymentTax:     roundMoney(seTax),
		SETaxDeduction:        seTaxDeduction,
		TotalFica:             roundMoney(totalFica),
	}
}
