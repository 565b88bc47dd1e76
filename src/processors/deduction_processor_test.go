package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/taxclarity/backend/src/models"
)

func newDeductionProcessor(t *testing.T) *deductionProcessorImpl {
	t.Helper()
	return NewDeductionProcessor(rates2024(t)).(*deductionProcessorImpl)
}

func TestStandardDeductionAddOns(t *testing.T) {
	proc := newDeductionProcessor(t)

	tests := []struct {
		name     string
		status   models.FilingStatus
		over65   bool
		blind    bool
		want     string
	}{
		{"single base", models.Single, false, false, "14600.00"},
		{"single over 65", models.Single, true, false, "16550.00"},
		{"single over 65 and blind", models.Single, true, true, "18500.00"},
		{"hoh uses the single add-on", models.HeadOfHousehold, true, false, "23850.00"},
		{"joint base", models.MarriedFilingJointly, false, false, "29200.00"},
		{"joint over 65 uses married add-on", models.MarriedFilingJointly, true, false, "30750.00"},
		{"separate blind", models.MarriedFilingSeparately, false, true, "16150.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proc.StandardDeduction(tt.status, tt.over65, tt.blind)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestDeductionSelection(t *testing.T) {
	proc := newDeductionProcessor(t)

	income := models.IncomeResult{}
	agi := models.AGIResult{AGI: d(t, "100000")}

	t.Run("standard when no itemized provided", func(t *testing.T) {
		in := &models.TaxReturnInput{FilingStatus: models.Single}
		result := proc.Select(in, income, agi)
		assert.True(t, result.UsedStandard)
		assert.Equal(t, "14600.00", result.DeductionAmount.StringFixed(2))
		assert.Equal(t, "85400.00", result.TaxableIncome.StringFixed(2))
	})

	t.Run("itemized wins when larger", func(t *testing.T) {
		in := &models.TaxReturnInput{
			FilingStatus: models.Single,
			ItemizedDeductions: &models.ItemizedDeductions{
				MortgageInterest: d(t, "12000"),
				Charitable:       d(t, "8000"),
			},
		}
		result := proc.Select(in, income, agi)
		assert.False(t, result.UsedStandard)
		assert.Equal(t, "20000.00", result.DeductionAmount.StringFixed(2))
	})

	t.Run("standard wins when itemized is smaller", func(t *testing.T) {
		in := &models.TaxReturnInput{
			FilingStatus: models.Single,
			ItemizedDeductions: &models.ItemizedDeductions{
				Charitable: d(t, "5000"),
			},
		}
		result := proc.Select(in, income, agi)
		assert.True(t, result.UsedStandard)
		assert.Equal(t, "14600.00", result.DeductionAmount.StringFixed(2))
	})

	t.Run("force standard overrides larger itemized", func(t *testing.T) {
		in := &models.TaxReturnInput{
			FilingStatus:           models.Single,
			ForceStandardDeduction: true,
			ItemizedDeductions: &models.ItemizedDeductions{
				MortgageInterest: d(t, "30000"),
			},
		}
		result := proc.Select(in, income, agi)
		assert.True(t, result.UsedStandard)
		assert.Equal(t, "14600.00", result.DeductionAmount.StringFixed(2))
	})
}

func TestItemizedMedicalFloorAndSALTCap(t *testing.T) {
	proc := newDeductionProcessor(t)

	income := models.IncomeResult{}
	agi := models.AGIResult{AGI: d(t, "100000")}

	// Medical 10000 - floor 7500 = 2500. SALT capped at 10000.
	in := &models.TaxReturnInput{
		FilingStatus: models.Single,
		ItemizedDeductions: &models.ItemizedDeductions{
			Medical:            d(t, "10000"),
			StateAndLocalTaxes: d(t, "18000"),
			MortgageInterest:   d(t, "9000"),
		},
	}
	result := proc.Select(in, income, agi)
	assert.Equal(t, "21500.00", result.ItemizedTotal.StringFixed(2))
	assert.False(t, result.UsedStandard)

	// MFS halves the SALT cap.
	in.FilingStatus = models.MarriedFilingSeparately
	result = proc.Select(in, income, agi)
	assert.Equal(t, "16500.00", result.ItemizedTotal.StringFixed(2))
}

func TestTaxableIncomePartition(t *testing.T) {
	proc := newDeductionProcessor(t)

	t.Run("ordinary plus preferential", func(t *testing.T) {
		income := models.IncomeResult{
			QualifiedDividends: d(t, "5000"),
			LongTermGains:      d(t, "10000"),
		}
		agi := models.AGIResult{AGI: d(t, "100000")}
		in := &models.TaxReturnInput{FilingStatus: models.Single}

		result := proc.Select(in, income, agi)
		assert.Equal(t, "85400.00", result.TaxableIncome.StringFixed(2))
		assert.Equal(t, "5000.00", result.PreferentialQualifiedDividends.StringFixed(2))
		assert.Equal(t, "10000.00", result.PreferentialLongTermGains.StringFixed(2))
		assert.Equal(t, "70400.00", result.OrdinaryTaxableIncome.StringFixed(2))
	})

	t.Run("long term losses stay out of the preferential pool", func(t *testing.T) {
		income := models.IncomeResult{
			QualifiedDividends: d(t, "5000"),
			LongTermGains:      d(t, "-3000"),
		}
		agi := models.AGIResult{AGI: d(t, "50000")}
		in := &models.TaxReturnInput{FilingStatus: models.Single}

		result := proc.Select(in, income, agi)
		assert.Equal(t, "5000.00", result.PreferentialQualifiedDividends.StringFixed(2))
		assert.Equal(t, "0.00", result.PreferentialLongTermGains.StringFixed(2))
	})

	t.Run("preferential capped proportionally at taxable income", func(t *testing.T) {
		// Deduction shrinks taxable income below the preferential pool.
		income := models.IncomeResult{
			QualifiedDividends: d(t, "6000"),
			LongTermGains:      d(t, "4000"),
		}
		agi := models.AGIResult{AGI: d(t, "19600")}
		in := &models.TaxReturnInput{FilingStatus: models.Single}

		result := proc.Select(in, income, agi)
		// Taxable income = 19600 - 14600 = 5000 against a 10000 pool.
		assert.Equal(t, "5000.00", result.TaxableIncome.StringFixed(2))
		assert.Equal(t, "3000.00", result.PreferentialQualifiedDividends.StringFixed(2))
		assert.Equal(t, "2000.00", result.PreferentialLongTermGains.StringFixed(2))
		assert.Equal(t, "0.00", result.OrdinaryTaxableIncome.StringFixed(2))

		sum := result.PreferentialQualifiedDividends.
			Add(result.PreferentialLongTermGains).
			Add(result.OrdinaryTaxableIncome)
		assert.True(t, sum.Equal(result.TaxableIncome), "partition must sum to taxable income")
	})

	t.Run("zero taxable income", func(t *testing.T) {
		income := models.IncomeResult{QualifiedDividends: d(t, "1000")}
		agi := models.AGIResult{AGI: d(t, "5000")}
		in := &models.TaxReturnInput{FilingStatus: models.Single}

		result := proc.Select(in, income, agi)
		assert.Equal(t, "0.00", result.TaxableIncome.StringFixed(2))
		assert.Equal(t, "0.00", result.PreferentialQualifiedDividends.StringFixed(2))
		assert.Equal(t, "0.00", result.OrdinaryTaxableIncome.StringFixed(2))
	})
}
