package processors

import (
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// taxComputationImpl produces income tax before credits — Form 1040 Line 16
// plus Form 8960.
//
// Statutory ordering (IRC §1(h)): qualified dividends stack directly above
// ordinary taxable income, and net long-term gains stack above ordinary
// income plus qualified dividends. The two tranches occupy disjoint slices
// of the breakpoint intervals, so reporting them separately never
// double-taxes the overlap.
type taxComputationImpl struct {
	brackets *BracketCalculator
	stacker  *PreferentialStacker
}

func NewTaxComputationProcessor(rates *taxdata.RateTable) TaxComputationProcessor {
	return &taxComputationImpl{
		brackets: NewBracketCalculator(rates),
		stacker:  NewPreferentialStacker(rates),
	}
}

func (p *taxComputationImpl) Compute(income models.IncomeResult, agi models.AGIResult, deductions models.DeductionResult, filingStatus models.FilingStatus) models.TaxComputationResult {
	// 1. Bracket tax on the ordinary component.
	ordinaryTax, ordinaryBreakdown := p.brackets.Tax(deductions.OrdinaryTaxableIncome, filingStatus)

	// 2. Qualified dividends stacked on ordinary income.
	qualifiedDivTax, divBreakdown := p.stacker.StackedTax(
		deductions.PreferentialQualifiedDividends,
		deductions.OrdinaryTaxableIncome,
		filingStatus,
	)

	// 3. Long-term gains stacked above ordinary income + qualified dividends.
	stackingBase := deductions.OrdinaryTaxableIncome.Add(deductions.PreferentialQualifiedDividends)
	capitalGainsTax, gainsBreakdown := p.stacker.StackedTax(
		deductions.PreferentialLongTermGains,
		stackingBase,
		filingStatus,
	)

	// 4. NIIT. MAGI is taken as AGI: no foreign-income exclusions are modeled.
	niit := p.stacker.NIIT(agi.AGI, income.NetInvestmentIncome, filingStatus)

	total := roundMoney(ordinaryTax.Add(qualifiedDivTax).Add(capitalGainsTax).Add(niit))

	return models.TaxComputationResult{
		OrdinaryTax:          ordinaryTax,
		QualifiedDividendTax: qualifiedDivTax,
		CapitalGainsTax:      capitalGainsTax,
		NIIT:                 niit,
		TotalIncomeTax:       total,
		OrdinaryBreakdown:    ordinaryBreakdown,
		DividendBreakdown:    divBreakdown,
		GainsBreakdown:       gainsBreakdown,
	}
}
