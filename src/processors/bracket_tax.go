package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// BracketCalculator applies a filing status's progressive bracket schedule
// to ordinary taxable income. Tax is monotonic non-decreasing in income and
// continuous at every bracket boundary: each tier taxes only the portion of
// income strictly inside [lower, upper).
type BracketCalculator struct {
	rates *taxdata.RateTable
}

func NewBracketCalculator(rates *taxdata.RateTable) *BracketCalculator {
	return &BracketCalculator{rates: rates}
}

// Tax computes the bracket tax on non-negative taxable income and returns
// the per-tier breakdown alongside the total.
func (c *BracketCalculator) Tax(taxableIncome decimal.Decimal, filingStatus models.FilingStatus) (decimal.Decimal, []models.BracketDetail) {
	brackets := c.rates.Brackets[filingStatus]

	var breakdown []models.BracketDetail
	totalTax := decimal.Zero
	prevTop := decimal.Zero

	for _, b := range brackets {
		if taxableIncome.LessThanOrEqual(prevTop) {
			break
		}

		var taxableInBracket decimal.Decimal
		if b.UpperBound == nil {
			taxableInBracket = taxableIncome.Sub(prevTop)
		} else {
			taxableInBracket = decimal.Min(taxableIncome, *b.UpperBound).Sub(prevTop)
		}

		taxInBracket := roundMoney(taxableInBracket.Mul(b.Rate))
		breakdown = append(breakdown, models.BracketDetail{
			Rate:             b.Rate,
			BracketBottom:    prevTop,
			BracketTop:       b.UpperBound,
			TaxableInBracket: taxableInBracket,
			TaxInBracket:     taxInBracket,
		})

		totalTax = totalTax.Add(taxInBracket)
		if b.UpperBound == nil {
			break
		}
		prevTop = *b.UpperBound
	}

	return roundMoney(totalTax), breakdown
}

// MarginalRate returns the rate of the tier containing the given income.
// Income exactly at a boundary belongs to the tier it completes, not the
// next one; zero income sits in the first tier.
func (c *BracketCalculator) MarginalRate(income decimal.Decimal, filingStatus models.FilingStatus) decimal.Decimal {
	brackets := c.rates.Brackets[filingStatus]
	if len(brackets) == 0 {
		return decimal.Zero
	}

	rate := brackets[0].Rate
	prevTop := decimal.Zero
	for _, b := range brackets {
		if income.LessThanOrEqual(prevTop) {
			break
		}
		rate = b.Rate
		if b.UpperBound == nil {
			break
		}
		prevTop = *b.UpperBound
	}
	return rate
}
