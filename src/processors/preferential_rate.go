package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/taxdata"
)

// PreferentialStacker applies the IRC §1(h)-style stacking of qualified
// dividends and net long-term gains atop ordinary income across the
// 0%/15%/20% breakpoints, and evaluates NIIT.
type PreferentialStacker struct {
	rates *taxdata.RateTable
}

func NewPreferentialStacker(rates *taxdata.RateTable) *PreferentialStacker {
	return &PreferentialStacker{rates: rates}
}

// StackedTax taxes amount as though stacked directly above ordinaryIncome:
// income already placed fills the lower breakpoint intervals, and each
// tranche is the overlap between [ordinaryIncome, ordinaryIncome+amount)
// and a breakpoint interval, taxed at that interval's rate.
//
// With amount <= 0 this returns zero and no breakdown, so the stacker
// degenerates to plain bracket tax on the ordinary component. When
// ordinaryIncome already sits at or above the top breakpoint, the entire
// amount lands in the 20% tier.
func (s *PreferentialStacker) StackedTax(amount, ordinaryIncome decimal.Decimal, filingStatus models.FilingStatus) (decimal.Decimal, []models.PreferentialRateDetail) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero.Round(2), nil
	}

	thresholds := s.rates.CapitalGainsBrackets[filingStatus]

	var breakdown []models.PreferentialRateDetail
	totalTax := decimal.Zero
	remaining := amount
	incomeSoFar := ordinaryIncome // cursor: total income already placed

	for _, tier := range thresholds {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		// Room left in this tier above the income already placed.
		var room decimal.Decimal
		if tier.UpperBound == nil {
			room = remaining
		} else {
			room = decimal.Max(tier.UpperBound.Sub(incomeSoFar), decimal.Zero)
		}

		if room.LessThanOrEqual(decimal.Zero) {
			// Income already placed exceeds this tier entirely.
			if tier.UpperBound != nil {
				incomeSoFar = decimal.Max(incomeSoFar, *tier.UpperBound)
			}
			continue
		}

		taxableInBracket := decimal.Min(remaining, room)
		taxInBracket := roundMoney(taxableInBracket.Mul(tier.Rate))

		breakdown = append(breakdown, models.PreferentialRateDetail{
			Rate:             tier.Rate,
			BracketBottom:    incomeSoFar,
			BracketTop:       tier.UpperBound,
			TaxableInBracket: taxableInBracket,
			TaxInBracket:     taxInBracket,
		})

		totalTax = totalTax.Add(taxInBracket)
		remaining = remaining.Sub(taxableInBracket)
		incomeSoFar = incomeSoFar.Add(taxableInBracket)
	}

	return roundMoney(totalTax), breakdown
}

// NIIT computes the 3.8% net investment income tax: the lesser of net
// investment income and the MAGI excess over the filing-status threshold,
// floored at zero here (the aggregator deliberately does not floor NII).
func (s *PreferentialStacker) NIIT(magi, netInvestmentIncome decimal.Decimal, filingStatus models.FilingStatus) decimal.Decimal {
	threshold := s.rates.NIITThresholds[filingStatus]
	excessMAGI := decimal.Max(magi.Sub(threshold), decimal.Zero)
	taxableBase := decimal.Max(decimal.Min(netInvestmentIncome, excessMAGI), decimal.Zero)
	return roundMoney(taxableBase.Mul(s.rates.NIITRate))
}
