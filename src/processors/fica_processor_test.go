package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/username/taxclarity/backend/src/models"
)

func incomeWith(wages, seIncome string) models.IncomeResult {
	return models.IncomeResult{
		Wages:                decimal.RequireFromString(wages),
		SelfEmploymentIncome: decimal.RequireFromString(seIncome),
	}
}

func TestFicaWagesOnly(t *testing.T) {
	proc := NewFicaProcessor(rates2024(t))

	tests := []struct {
		name           string
		wages          string
		wantSS         string
		wantMedicare   string
		wantAdditional string
		wantTotal      string
	}{
		{"typical wages", "50000", "3100.00", "725.00", "0.00", "3825.00"},
		// SS capped at the 168600 wage base.
		{"above wage base", "200000", "10453.20", "2900.00", "0.00", "13353.20"},
		// Additional medicare on the 50000 over the single threshold.
		{"above additional medicare threshold", "250000", "10453.20", "3625.00", "450.00", "14528.20"},
		{"zero wages", "0", "0.00", "0.00", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fica := proc.Calculate(incomeWith(tt.wages, "0"), models.Single)
			assert.Equal(t, tt.wantSS, fica.SocialSecurityTax.StringFixed(2))
			assert.Equal(t, tt.wantMedicare, fica.MedicareTax.StringFixed(2))
			assert.Equal(t, tt.wantAdditional, fica.AdditionalMedicareTax.StringFixed(2))
			assert.Equal(t, tt.wantTotal, fica.TotalFica.StringFixed(2))
			assert.Equal(t, "0.00", fica.SelfEmploymentTax.StringFixed(2))
			assert.Equal(t, "0.00", fica.SETaxDeduction.StringFixed(2))
		})
	}
}

func TestFicaSelfEmploymentOnly(t *testing.T) {
	proc := NewFicaProcessor(rates2024(t))

	tests := []struct {
		name          string
		seIncome      string
		wantSETax     string
		wantDeduction string
	}{
		// 40000 * 0.9235 = 36940; 36940 * 15.3% = 5651.82.
		{"modest se income", "40000", "5651.82", "2825.91"},
		// 100000 * 0.9235 = 92350; 92350 * 15.3% = 14129.55.
		{"six figure se income", "100000", "14129.55", "7064.78"},
		// 200000 * 0.9235 = 184700; SS capped at 168600 * 12.4% = 20906.40,
		// medicare uncapped 184700 * 2.9% = 5356.30.
		{"se income above wage base", "200000", "26262.70", "13131.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fica := proc.Calculate(incomeWith("0", tt.seIncome), models.Single)
			assert.Equal(t, tt.wantSETax, fica.SelfEmploymentTax.StringFixed(2))
			assert.Equal(t, tt.wantDeduction, fica.SETaxDeduction.StringFixed(2))
			assert.Equal(t, tt.wantSETax, fica.TotalFica.StringFixed(2))
		})
	}
}

func TestFicaMixedWagesAndSE(t *testing.T) {
	proc := NewFicaProcessor(rates2024(t))

	// Wages consume most of the wage base; the SE social security portion
	// only gets the 18600 of room left. SE base = 50000 * 0.9235 = 46175.
	fica := proc.Calculate(incomeWith("150000", "50000"), models.Single)

	// SE SS: min(46175, 168600-150000=18600) * 12.4% = 2306.40
	// SE medicare: 46175 * 2.9% = 1339.08 (rounded)
	// SE tax total: 3645.48
	assert.Equal(t, "3645.48", fica.SelfEmploymentTax.StringFixed(2))

	// W-2 SS 9300.00 + SE SS 2306.40
	assert.Equal(t, "11606.40", fica.SocialSecurityTax.StringFixed(2))

	// Half the SE tax.
	assert.Equal(t, "1822.74", fica.SETaxDeduction.StringFixed(2))
}

func TestFicaAdditionalMedicareCombinesWagesAndSEBase(t *testing.T) {
	proc := NewFicaProcessor(rates2024(t))

	// Neither source crosses the 200000 single threshold alone, but
	// 150000 + 100000*0.9235 = 242350 does. Excess 42350 * 0.9% = 381.15.
	fica := proc.Calculate(incomeWith("150000", "100000"), models.Single)
	assert.Equal(t, "381.15", fica.AdditionalMedicareTax.StringFixed(2))

	// The joint threshold is higher; the same income owes nothing.
	fica = proc.Calculate(incomeWith("150000", "100000"), models.MarriedFilingJointly)
	assert.Equal(t, "0.00", fica.AdditionalMedicareTax.StringFixed(2))
}
