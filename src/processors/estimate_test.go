package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/taxclarity/backend/src/models"
)

func TestEstimateStandardDeductionAndBracketTaxOnly(t *testing.T) {
	orch := New(rates2024(t))

	tests := []struct {
		name          string
		gross         string
		status        models.FilingStatus
		wantDeduction string
		wantTaxable   string
		wantTax       string
		wantEffective string
		wantMarginal  string
	}{
		{
			// 50000 - 14600 = 35400; 11600*10% + 23800*12% = 4016.
			name:          "single wage earner",
			gross:         "50000",
			status:        models.Single,
			wantDeduction: "14600.00",
			wantTaxable:   "35400.00",
			wantTax:       "4016.00",
			wantEffective: "0.113446",
			wantMarginal:  "0.12",
		},
		{
			// 60000 - 21900 = 38100; 16550*10% + 21550*12% = 4241.
			name:          "head of household",
			gross:         "60000",
			status:        models.HeadOfHousehold,
			wantDeduction: "21900.00",
			wantTaxable:   "38100.00",
			wantTax:       "4241.00",
			wantEffective: "0.111312",
			wantMarginal:  "0.12",
		},
		{
			name:          "gross income below the standard deduction",
			gross:         "10000",
			status:        models.Single,
			wantDeduction: "14600.00",
			wantTaxable:   "0.00",
			wantTax:       "0.00",
			wantEffective: "0.000000",
			wantMarginal:  "0.1",
		},
		{
			name:          "zero income",
			gross:         "0",
			status:        models.MarriedFilingJointly,
			wantDeduction: "29200.00",
			wantTaxable:   "0.00",
			wantTax:       "0.00",
			wantEffective: "0.000000",
			wantMarginal:  "0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := orch.Estimate(&models.EstimateInput{
				GrossIncome:  d(t, tt.gross),
				FilingStatus: tt.status,
			})

			assert.Equal(t, tt.status, result.FilingStatus)
			assert.Equal(t, tt.gross, result.GrossIncome.String())
			assert.Equal(t, tt.wantDeduction, result.StandardDeduction.StringFixed(2))
			assert.Equal(t, tt.wantTaxable, result.TaxableIncome.StringFixed(2))
			assert.Equal(t, tt.wantTax, result.EstimatedTax.StringFixed(2))
			assert.Equal(t, tt.wantEffective, result.EffectiveRate.StringFixed(6))
			assert.Equal(t, tt.wantMarginal, result.MarginalRate.String())
		})
	}
}

func TestEstimateMatchesFullPipelineForWageOnlyReturn(t *testing.T) {
	orch := New(rates2024(t))

	estimate := orch.Estimate(&models.EstimateInput{
		GrossIncome:  d(t, "87000"),
		FilingStatus: models.Single,
	})

	full := orch.Calculate(&models.TaxReturnInput{
		FilingStatus: models.Single,
		W2s:          []models.W2Income{{Wages: d(t, "87000")}},
	})

	// With wages only and the standard deduction, the quick estimate's
	// bracket tax equals the full pipeline's ordinary income tax. The full
	// run additionally carries FICA.
	assert.Equal(t, full.Deductions.TaxableIncome.StringFixed(2), estimate.TaxableIncome.StringFixed(2))
	assert.Equal(t, full.TaxComputation.OrdinaryTax.StringFixed(2), estimate.EstimatedTax.StringFixed(2))
	assert.True(t, full.Summary.TotalTax.GreaterThan(estimate.EstimatedTax))
}
