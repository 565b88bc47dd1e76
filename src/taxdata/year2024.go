package taxdata

import (
	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
)

// Tax year 2024 constants.
//
// Sources:
//   - Rev. Proc. 2023-34 (inflation adjustments for 2024)
//   - IRS Publication 17 / Publication 501
//   - IRC §1(j) (brackets), §1(h) (capital gains), §1411 (NIIT),
//     §§3101/3111/1401 (FICA and SE tax), §24 (Child Tax Credit)
//   - SSA 2024 fact sheet (wage base)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bound(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func schedule(pairs ...Bracket) []Bracket {
	return pairs
}

func year2024() *RateTable {
	singleBrackets := schedule(
		Bracket{bound("11600"), d("0.10")},
		Bracket{bound("47150"), d("0.12")},
		Bracket{bound("100525"), d("0.22")},
		Bracket{bound("191950"), d("0.24")},
		Bracket{bound("243725"), d("0.32")},
		Bracket{bound("609350"), d("0.35")},
		Bracket{nil, d("0.37")},
	)
	jointBrackets := schedule(
		Bracket{bound("23200"), d("0.10")},
		Bracket{bound("94300"), d("0.12")},
		Bracket{bound("201050"), d("0.22")},
		Bracket{bound("383900"), d("0.24")},
		Bracket{bound("487450"), d("0.32")},
		Bracket{bound("731200"), d("0.35")},
		Bracket{nil, d("0.37")},
	)

	return &RateTable{
		Year: 2024,

		Brackets: map[models.FilingStatus][]Bracket{
			models.Single: singleBrackets,
			models.MarriedFilingJointly: jointBrackets,
			models.MarriedFilingSeparately: schedule(
				Bracket{bound("11600"), d("0.10")},
				Bracket{bound("47150"), d("0.12")},
				Bracket{bound("100525"), d("0.22")},
				Bracket{bound("191950"), d("0.24")},
				Bracket{bound("243725"), d("0.32")},
				Bracket{bound("365600"), d("0.35")},
				Bracket{nil, d("0.37")},
			),
			models.HeadOfHousehold: schedule(
				Bracket{bound("16550"), d("0.10")},
				Bracket{bound("63100"), d("0.12")},
				Bracket{bound("100500"), d("0.22")},
				Bracket{bound("191950"), d("0.24")},
				Bracket{bound("243700"), d("0.32")},
				Bracket{bound("609350"), d("0.35")},
				Bracket{nil, d("0.37")},
			),
			models.QualifyingSurvivingSpouse: jointBrackets,
		},

		StandardDeduction: map[models.FilingStatus]decimal.Decimal{
			models.Single:                    d("14600"),
			models.MarriedFilingJointly:      d("29200"),
			models.MarriedFilingSeparately:   d("14600"),
			models.HeadOfHousehold:           d("21900"),
			models.QualifyingSurvivingSpouse: d("29200"),
		},
		// Per qualifying condition (age 65+ and blindness add independently).
		AdditionalDeductionSingleHOH: d("1950"),
		AdditionalDeductionMarried:   d("1550"),

		CapitalGainsBrackets: map[models.FilingStatus][]Bracket{
			models.Single: schedule(
				Bracket{bound("47025"), d("0.00")},
				Bracket{bound("518900"), d("0.15")},
				Bracket{nil, d("0.20")},
			),
			models.MarriedFilingJointly: schedule(
				Bracket{bound("94050"), d("0.00")},
				Bracket{bound("583750"), d("0.15")},
				Bracket{nil, d("0.20")},
			),
			models.MarriedFilingSeparately: schedule(
				Bracket{bound("47025"), d("0.00")},
				Bracket{bound("291850"), d("0.15")},
				Bracket{nil, d("0.20")},
			),
			models.HeadOfHousehold: schedule(
				Bracket{bound("63000"), d("0.00")},
				Bracket{bound("551350"), d("0.15")},
				Bracket{nil, d("0.20")},
			),
			models.QualifyingSurvivingSpouse: schedule(
				Bracket{bound("94050"), d("0.00")},
				Bracket{bound("583750"), d("0.15")},
				Bracket{nil, d("0.20")},
			),
		},

		NIITRate: d("0.038"),
		NIITThresholds: map[models.FilingStatus]decimal.Decimal{
			models.Single:                    d("200000"),
			models.MarriedFilingJointly:      d("250000"),
			models.MarriedFilingSeparately:   d("125000"),
			models.HeadOfHousehold:           d("200000"),
			models.QualifyingSurvivingSpouse: d("250000"),
		},

		SocialSecurityWageBase: d("168600"),
		SocialSecurityRate:     d("0.062"),
		MedicareRate:           d("0.0145"),
		AdditionalMedicareRate: d("0.009"),
		AdditionalMedicareThresholds: map[models.FilingStatus]decimal.Decimal{
			models.Single:                    d("200000"),
			models.MarriedFilingJointly:      d("250000"),
			models.MarriedFilingSeparately:   d("125000"),
			models.HeadOfHousehold:           d("200000"),
			models.QualifyingSurvivingSpouse: d("250000"),
		},

		SETaxableFraction:    d("0.9235"),
		SESocialSecurityRate: d("0.124"),
		SEMedicareRate:       d("0.029"),
		SEDeductibleFraction: d("0.5"),

		ChildTaxCreditPerChild:      d("2000"),
		ChildTaxCreditRefundableCap: d("1700"),
		ChildTaxCreditPhaseoutThresholds: map[models.FilingStatus]decimal.Decimal{
			models.Single:                    d("200000"),
			models.MarriedFilingJointly:      d("400000"),
			models.MarriedFilingSeparately:   d("200000"),
			models.HeadOfHousehold:           d("200000"),
			models.QualifyingSurvivingSpouse: d("400000"),
		},
		ChildTaxCreditPhaseoutStep:   d("1000"),
		ChildTaxCreditPhaseoutAmount: d("50"),

		SALTCap:         d("10000"),
		SALTCapMFS:      d("5000"),
		MedicalAGIFloor: d("0.075"),
	}
}
