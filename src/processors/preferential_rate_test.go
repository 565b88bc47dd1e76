package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/username/taxclarity/backend/src/models"
)

func TestStackedTax(t *testing.T) {
	stacker := NewPreferentialStacker(rates2024(t))

	tests := []struct {
		name     string
		amount   string
		ordinary string
		status   models.FilingStatus
		wantTax  string
	}{
		// 94050 - 80000 = 14050 at 0%, remaining 5950 at 15%.
		{"joint straddling zero breakpoint", "20000", "80000", models.MarriedFilingJointly, "892.50"},
		{"entirely inside zero tier", "10000", "20000", models.MarriedFilingJointly, "0.00"},
		{"entirely at 15 percent", "10000", "100000", models.MarriedFilingJointly, "1500.00"},
		// Ordinary income above the top breakpoint pushes everything to 20%.
		{"entirely at 20 percent", "10000", "600000", models.MarriedFilingJointly, "2000.00"},
		// 518900 - 500000 = 18900 at 15%, remaining 1100 at 20%.
		{"single straddling top breakpoint", "20000", "500000", models.Single, "3055.00"},
		{"no ordinary income", "30000", "0", models.Single, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, _ := stacker.StackedTax(
				decimal.RequireFromString(tt.amount),
				decimal.RequireFromString(tt.ordinary),
				tt.status,
			)
			assert.Equal(t, tt.wantTax, tax.StringFixed(2))
		})
	}
}

func TestStackedTaxZeroAmount(t *testing.T) {
	stacker := NewPreferentialStacker(rates2024(t))

	tax, breakdown := stacker.StackedTax(decimal.Zero, decimal.RequireFromString("50000"), models.Single)
	assert.Equal(t, "0.00", tax.StringFixed(2))
	assert.Nil(t, breakdown)

	tax, breakdown = stacker.StackedTax(decimal.RequireFromString("-100"), decimal.Zero, models.Single)
	assert.Equal(t, "0.00", tax.StringFixed(2))
	assert.Nil(t, breakdown)
}

func TestStackedTranchesAreDisjoint(t *testing.T) {
	stacker := NewPreferentialStacker(rates2024(t))

	// Qualified dividends stack on ordinary income, gains on ordinary + QD.
	// Taxing the combined pool in one pass must equal the two-pass sum, which
	// holds only when the tranches occupy disjoint slices.
	ordinary := decimal.RequireFromString("85000")
	qd := decimal.RequireFromString("6000")
	lt := decimal.RequireFromString("10000")

	qdTax, _ := stacker.StackedTax(qd, ordinary, models.MarriedFilingJointly)
	ltTax, _ := stacker.StackedTax(lt, ordinary.Add(qd), models.MarriedFilingJointly)
	combinedTax, _ := stacker.StackedTax(qd.Add(lt), ordinary, models.MarriedFilingJointly)

	assert.True(t, qdTax.Add(ltTax).Equal(combinedTax),
		"split %s + %s != combined %s", qdTax, ltTax, combinedTax)
}

func TestNIIT(t *testing.T) {
	stacker := NewPreferentialStacker(rates2024(t))

	tests := []struct {
		name   string
		magi   string
		nii    string
		status models.FilingStatus
		want   string
	}{
		{"magi below threshold", "150000", "30000", models.Single, "0.00"},
		{"nii below excess", "250000", "10000", models.Single, "380.00"},
		{"excess below nii", "230000", "100000", models.Single, "1140.00"},
		{"exactly at threshold", "200000", "30000", models.Single, "0.00"},
		{"negative nii", "300000", "-5000", models.Single, "0.00"},
		{"separate threshold", "150000", "30000", models.MarriedFilingSeparately, "950.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			niit := stacker.NIIT(
				decimal.RequireFromString(tt.magi),
				decimal.RequireFromString(tt.nii),
				tt.status,
			)
			assert.Equal(t, tt.want, niit.StringFixed(2))
		})
	}
}
