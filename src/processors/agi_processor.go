package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
)

// agiProcessorImpl computes adjusted gross income — Form 1040 Line 11.
// Total income minus above-the-line deductions, floored at zero.
type agiProcessorImpl struct{}

func NewAGIProcessor() AGIProcessor {
	return &agiProcessorImpl{}
}

func (p *agiProcessorImpl) Calculate(in *models.TaxReturnInput, income models.IncomeResult, fica models.FicaResult) models.AGIResult {
	totalIncome := income.TotalGrossIncome

	totalDeductions := in.HSADeduction.
		Add(in.StudentLoanInterest).
		Add(in.EducatorExpenses).
		Add(in.IRADeduction).
		Add(in.SelfEmployedHealthInsurance).
		Add(fica.SETaxDeduction)

	agi := decimal.Max(totalIncome.Sub(totalDeductions), decimal.Zero)

	return models.AGIResult{
		TotalGrossIncome:         roundMoney(totalIncome),
		TotalAboveLineDeductions: roundMoney(totalDeductions),
		AGI:                      roundMoney(agi),
	}
}
