package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// deductionProcessorImpl selects standard vs. itemized deduction and
// partitions taxable income into its ordinary and preferential components —
// Form 1040 Lines 12-15.
type deductionProcessorImpl struct {
	rates *taxdata.RateTable
}

func NewDeductionProcessor(rates *taxdata.RateTable) DeductionProcessor {
	return &deductionProcessorImpl{rates: rates}
}

// StandardDeduction returns the table amount plus the fixed add-on per
// over-65/blind flag; each flag adds independently.
func (p *deductionProcessorImpl) StandardDeduction(filingStatus models.FilingStatus, isOver65, isBlind bool) decimal.Decimal {
	base := p.rates.StandardDeduction[filingStatus]

	perCondition := p.rates.AdditionalDeductionMarried
	if filingStatus == models.Single || filingStatus == models.HeadOfHousehold {
		perCondition = p.rates.AdditionalDeductionSingleHOH
	}

	conditions := int64(0)
	if isOver65 {
		conditions++
	}
	if isBlind {
		conditions++
	}

	return base.Add(perCondition.Mul(decimal.NewFromInt(conditions)))
}

// itemizedTotal sums the six Schedule A categories, applying the medical
// 7.5%-of-AGI floor and the SALT cap.
func (p *deductionProcessorImpl) itemizedTotal(in *models.TaxReturnInput, agi decimal.Decimal) decimal.Decimal {
	if in.ItemizedDeductions == nil {
		return decimal.Zero
	}
	item := in.ItemizedDeductions

	medicalFloor := roundMoney(agi.Mul(p.rates.MedicalAGIFloor))
	medical := decimal.Max(item.Medical.Sub(medicalFloor), decimal.Zero)

	saltCap := p.rates.SALTCap
	if in.FilingStatus == models.MarriedFilingSeparately {
		saltCap = p.rates.SALTCapMFS
	}
	salt := decimal.Min(item.StateAndLocalTaxes, saltCap)

	total := medical.
		Add(salt).
		Add(item.MortgageInterest).
		Add(item.Charitable).
		Add(item.Casualty).
		Add(item.Other)

	return roundMoney(total)
}

func (p *deductionProcessorImpl) Select(in *models.TaxReturnInput, income models.IncomeResult, agi models.AGIResult) models.DeductionResult {
	standardAmount := p.StandardDeduction(in.FilingStatus, in.IsOver65, in.IsBlind)
	itemizedTotal := p.itemizedTotal(in, agi.AGI)

	var usedStandard bool
	var deductionAmount decimal.Decimal
	switch {
	case in.ForceStandardDeduction:
		usedStandard = true
		deductionAmount = standardAmount
	case in.ItemizedDeductions != nil && itemizedTotal.GreaterThan(standardAmount):
		usedStandard = false
		deductionAmount = itemizedTotal
	default:
		usedStandard = true
		deductionAmount = standardAmount
	}

	taxableIncome := decimal.Max(agi.AGI.Sub(deductionAmount), decimal.Zero)

	// Preferential pool: qualified dividends plus net long-term gain (if
	// positive). Short-term gains stay ordinary; they are already inside
	// gross income.
	prefQualifiedDivs := income.QualifiedDividends
	prefLTGains := decimal.Max(income.LongTermGains, decimal.Zero)
	totalPreferential := prefQualifiedDivs.Add(prefLTGains)

	// The deduction may shrink taxable income below the preferential pool;
	// cap the components proportionally so the partition still sums.
	if totalPreferential.GreaterThan(taxableIncome) && totalPreferential.GreaterThan(decimal.Zero) {
		ratio := taxableIncome.Div(totalPreferential)
		prefQualifiedDivs = roundMoney(prefQualifiedDivs.Mul(ratio))
		prefLTGains = roundMoney(taxableIncome.Sub(prefQualifiedDivs))
	}

	ordinaryTaxable := decimal.Max(taxableIncome.Sub(prefQualifiedDivs).Sub(prefLTGains), decimal.Zero)

	return models.DeductionResult{
		StandardDeductionAmount: roundMoney(standardAmount),
		ItemizedTotal:           itemizedTotal,
		UsedStandard:            usedStandard,
		DeductionAmount:         roundMoney(deductionAmount),
		TaxableIncome:           roundMoney(taxableIncome),

		OrdinaryTaxableIncome:          roundMoney(ordinaryTaxable),
		PreferentialQualifiedDividends: roundMoney(prefQualifiedDivs),
		PreferentialLongTermGains:      roundMoney(prefLTGains),
	}
}
