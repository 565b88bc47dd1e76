package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/taxclarity/backend/src/models"
)

func TestAGISubtractsAboveLineDeductions(t *testing.T) {
	proc := NewAGIProcessor()

	in := &models.TaxReturnInput{
		FilingStatus:        models.Single,
		HSADeduction:        d(t, "3000"),
		StudentLoanInterest: d(t, "2500"),
		EducatorExpenses:    d(t, "300"),
		IRADeduction:        d(t, "6000"),
	}
	income := models.IncomeResult{TotalGrossIncome: d(t, "80000")}
	fica := models.FicaResult{SETaxDeduction: d(t, "1200")}

	agi := proc.Calculate(in, income, fica)

	assert.Equal(t, "13000.00", agi.TotalAboveLineDeductions.StringFixed(2))
	assert.Equal(t, "67000.00", agi.AGI.StringFixed(2))
	assert.Equal(t, "80000.00", agi.TotalGrossIncome.StringFixed(2))
}

func TestAGIFlooredAtZero(t *testing.T) {
	proc := NewAGIProcessor()

	in := &models.TaxReturnInput{
		FilingStatus: models.Single,
		IRADeduction: d(t, "7000"),
	}
	income := models.IncomeResult{TotalGrossIncome: d(t, "5000")}

	agi := proc.Calculate(in, income, models.FicaResult{})
	assert.Equal(t, "0.00", agi.AGI.StringFixed(2))
}
