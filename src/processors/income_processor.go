package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
)

// incomeProcessorImpl sums income records into category totals — Form 1040
// Lines 1-9.
type incomeProcessorImpl struct{}

func NewIncomeProcessor() IncomeProcessor {
	return &incomeProcessorImpl{}
}

func (p *incomeProcessorImpl) Aggregate(in *models.TaxReturnInput) models.IncomeResult {
	wages := decimal.Zero
	for _, w2 := range in.W2s {
		wages = wages.Add(w2.Wages)
	}

	seIncome := decimal.Zero
	for _, nec := range in.NEC1099 {
		seIncome = seIncome.Add(nec.Compensation)
	}

	interest := decimal.Zero
	for _, form := range in.INT1099 {
		interest = interest.Add(form.Interest)
	}

	ordinaryDivs := decimal.Zero
	qualifiedDivs := decimal.Zero
	for _, form := range in.DIV1099 {
		ordinaryDivs = ordinaryDivs.Add(form.OrdinaryDividends)
		qualifiedDivs = qualifiedDivs.Add(form.QualifiedDividends)
	}

	stGains := decimal.Zero
	ltGains := decimal.Zero
	for _, form := range in.B1099 {
		stGains = stGains.Add(form.ShortTermGains)
		ltGains = ltGains.Add(form.LongTermGains)
	}

	totalGross := wages.Add(seIncome).Add(interest).Add(ordinaryDivs).Add(stGains).Add(ltGains)

	// Net investment income for NIIT: interest + ordinary dividends + net
	// capital gain. Losses reduce it without flooring; the NIIT stage floors
	// its taxable base.
	nii := interest.Add(ordinaryDivs).Add(stGains.Add(ltGains))

	return models.IncomeResult{
		Wages:                roundMoney(wages),
		SelfEmploymentIncome: roundMoney(seIncome),
		InterestIncome:       roundMoney(interest),
		OrdinaryDividends:    roundMoney(ordinaryDivs),
		QualifiedDividends:   roundMoney(qualifiedDivs),
		ShortTermGains:       roundMoney(stGains),
		LongTermGains:        roundMoney(ltGains),
		TotalGrossIncome:     roundMoney(totalGross),
		NetInvestmentIncome:  roundMoney(nii),
	}
}
