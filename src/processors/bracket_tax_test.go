package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

func rates2024(t *testing.T) *taxdata.RateTable {
	t.Helper()
	rates, err := taxdata.ForYear(2024)
	require.NoError(t, err)
	return rates
}

func TestBracketTaxSingle(t *testing.T) {
	calc := NewBracketCalculator(rates2024(t))

	tests := []struct {
		name    string
		income  string
		wantTax string
	}{
		{"zero income", "0", "0.00"},
		{"inside first bracket", "10000", "1000.00"},
		{"exactly at first boundary", "11600", "1160.00"},
		{"spanning two brackets", "35400", "4016.00"},
		{"exactly at second boundary", "47150", "5426.00"},
		{"top bracket", "700000", "217187.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, _ := calc.Tax(decimal.RequireFromString(tt.income), models.Single)
			assert.Equal(t, tt.wantTax, tax.StringFixed(2))
		})
	}
}

func TestBracketTaxBreakdownSums(t *testing.T) {
	calc := NewBracketCalculator(rates2024(t))

	income := decimal.RequireFromString("123456.78")
	tax, breakdown := calc.Tax(income, models.MarriedFilingJointly)

	require.NotEmpty(t, breakdown)

	sumTaxable := decimal.Zero
	sumTax := decimal.Zero
	for _, tier := range breakdown {
		assert.True(t, tier.TaxableInBracket.GreaterThanOrEqual(decimal.Zero))
		sumTaxable = sumTaxable.Add(tier.TaxableInBracket)
		sumTax = sumTax.Add(tier.TaxInBracket)
	}
	assert.True(t, sumTaxable.Equal(income), "per-tier amounts must partition the income, got %s", sumTaxable)
	assert.True(t, sumTax.Equal(tax), "per-tier taxes must sum to the total")
}

func TestBracketTaxMonotonicAndContinuous(t *testing.T) {
	calc := NewBracketCalculator(rates2024(t))

	// Tax just below, at, and just above each boundary must be
	// non-decreasing with no jump larger than the step times the top rate.
	boundaries := []string{"11600", "47150", "100525", "191950", "243725", "609350"}
	step := decimal.RequireFromString("0.01")

	prevTax := decimal.Zero
	for _, b := range boundaries {
		bound := decimal.RequireFromString(b)
		for _, income := range []decimal.Decimal{bound.Sub(step), bound, bound.Add(step)} {
			tax, _ := calc.Tax(income, models.Single)
			assert.True(t, tax.GreaterThanOrEqual(prevTax),
				"tax decreased at income %s: %s < %s", income, tax, prevTax)
			prevTax = tax
		}
	}
}

func TestMarginalRate(t *testing.T) {
	calc := NewBracketCalculator(rates2024(t))

	tests := []struct {
		name     string
		income   string
		status   models.FilingStatus
		wantRate string
	}{
		{"zero income uses first tier", "0", models.Single, "0.1"},
		{"inside first tier", "5000", models.Single, "0.1"},
		{"boundary belongs to the tier it completes", "11600", models.Single, "0.1"},
		{"just above boundary", "11600.01", models.Single, "0.12"},
		{"middle tier", "150000", models.Single, "0.24"},
		{"top tier", "1000000", models.Single, "0.37"},
		{"joint schedule differs", "150000", models.MarriedFilingJointly, "0.22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := calc.MarginalRate(decimal.RequireFromString(tt.income), tt.status)
			assert.Equal(t, tt.wantRate, rate.String())
		})
	}
}
