package processors

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/taxclarity/backend/src/models"
)

func TestCalculateWagesOnlySingle(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{
		FilingStatus: models.Single,
		W2s: []models.W2Income{
			{Wages: d(t, "50000"), FederalWithholding: d(t, "5000")},
		},
	}
	require.NoError(t, in.Validate())

	result := orch.Calculate(in)

	assert.Equal(t, "50000.00", result.Summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "50000.00", result.AGI.AGI.StringFixed(2))
	// 50000 - 14600 standard deduction.
	assert.Equal(t, "35400.00", result.Summary.TaxableIncome.StringFixed(2))
	// 11600 * 10% + 23800 * 12%.
	assert.Equal(t, "4016.00", result.TaxComputation.OrdinaryTax.StringFixed(2))
	assert.Equal(t, "0.00", result.TaxComputation.NIIT.StringFixed(2))
	// Income tax 4016 + FICA 3825.
	assert.Equal(t, "7841.00", result.Summary.TotalTax.StringFixed(2))
	assert.Equal(t, "0.12", result.Summary.MarginalRate.String())
	// Payments 5000 - total tax 7841: the filer owes.
	assert.Equal(t, "-2841.00", result.Summary.RefundOrOwed.StringFixed(2))
}

func TestCalculateNIITOnInvestmentIncome(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{
		FilingStatus: models.Single,
		W2s: []models.W2Income{
			{Wages: d(t, "200000")},
		},
		INT1099: []models.Income1099INT{
			{Interest: d(t, "30000")},
		},
	}
	require.NoError(t, in.Validate())

	result := orch.Calculate(in)

	assert.Equal(t, "230000.00", result.AGI.AGI.StringFixed(2))
	assert.Equal(t, "30000.00", result.Income.NetInvestmentIncome.StringFixed(2))
	// min(NII 30000, MAGI excess 30000) * 3.8%.
	assert.Equal(t, "1140.00", result.TaxComputation.NIIT.StringFixed(2))
}

func TestCalculatePreferentialIncomeTaxedAtCapitalGainsRates(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{
		FilingStatus: models.MarriedFilingJointly,
		W2s: []models.W2Income{
			{Wages: d(t, "109200")},
		},
		DIV1099: []models.Income1099DIV{
			{OrdinaryDividends: d(t, "8000"), QualifiedDividends: d(t, "8000")},
		},
		B1099: []models.Income1099B{
			{LongTermGains: d(t, "12000")},
		},
	}
	require.NoError(t, in.Validate())

	result := orch.Calculate(in)

	// AGI 129200 - 29200 standard = 100000 taxable: 80000 ordinary,
	// 8000 QD stacked on 80000, 12000 LTCG stacked on 88000.
	assert.Equal(t, "100000.00", result.Deductions.TaxableIncome.StringFixed(2))
	assert.Equal(t, "80000.00", result.Deductions.OrdinaryTaxableIncome.StringFixed(2))

	// QD fits entirely under the 94050 breakpoint: 0%.
	assert.Equal(t, "0.00", result.TaxComputation.QualifiedDividendTax.StringFixed(2))
	// LTCG: 94050-88000 = 6050 at 0%, 5950 at 15% = 892.50.
	assert.Equal(t, "892.50", result.TaxComputation.CapitalGainsTax.StringFixed(2))
}

func TestCalculateSelfEmploymentFeedsAGI(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{
		FilingStatus: models.Single,
		NEC1099: []models.Income1099NEC{
			{Compensation: d(t, "40000")},
		},
	}
	require.NoError(t, in.Validate())

	result := orch.Calculate(in)

	assert.Equal(t, "5651.82", result.Fica.SelfEmploymentTax.StringFixed(2))
	assert.Equal(t, "2825.91", result.Fica.SETaxDeduction.StringFixed(2))
	// 40000 - half the SE tax.
	assert.Equal(t, "37174.09", result.AGI.AGI.StringFixed(2))
}

func TestCalculateIsIdempotent(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{
		FilingStatus: models.HeadOfHousehold,
		W2s: []models.W2Income{
			{Wages: d(t, "87250.33"), FederalWithholding: d(t, "9100")},
		},
		NEC1099: []models.Income1099NEC{{Compensation: d(t, "12000")}},
		DIV1099: []models.Income1099DIV{
			{OrdinaryDividends: d(t, "3000"), QualifiedDividends: d(t, "2500")},
		},
		Credits: models.TaxCredits{NumQualifyingChildren: 1},
	}
	require.NoError(t, in.Validate())

	first := orch.Calculate(in)
	second := orch.Calculate(in)
	assert.Equal(t, first, second)

	// The orchestrator holds no mutable state: concurrent runs over the
	// same input must all produce the sequential result.
	var wg sync.WaitGroup
	results := make([]models.FullTaxCalculationResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = orch.Calculate(in)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		assert.Equal(t, first, r, "concurrent run %d diverged", i)
	}
}

func TestCalculateZeroIncome(t *testing.T) {
	orch := New(rates2024(t))

	in := &models.TaxReturnInput{FilingStatus: models.Single}
	require.NoError(t, in.Validate())

	result := orch.Calculate(in)

	assert.Equal(t, "0.00", result.Summary.TotalTax.StringFixed(2))
	assert.Equal(t, "0", result.Summary.EffectiveRate.String())
	assert.Equal(t, "0.00", result.Summary.RefundOrOwed.StringFixed(2))
}
