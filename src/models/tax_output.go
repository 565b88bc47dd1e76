package models

import "github.com/shopspring/decimal"

// IncomeResult holds the aggregated income category totals. Produced once by
// the income aggregation stage and never mutated afterwards.
type IncomeResult struct {
	Wages                decimal.Decimal `json:"wages"`
	SelfEmploymentIncome decimal.Decimal `json:"selfEmploymentIncome"`
	InterestIncome       decimal.Decimal `json:"interestIncome"`
	OrdinaryDividends    decimal.Decimal `json:"ordinaryDividends"`
	QualifiedDividends   decimal.Decimal `json:"qualifiedDividends"`
	ShortTermGains       decimal.Decimal `json:"shortTermGains"`
	LongTermGains        decimal.Decimal `json:"longTermGains"`
	TotalGrossIncome     decimal.Decimal `json:"totalGrossIncome"`
	// NetInvestmentIncome is interest + ordinary dividends + net capital
	// gain. Capital losses reduce it; flooring happens at NIIT evaluation,
	// not here.
	NetInvestmentIncome decimal.Decimal `json:"netInvestmentIncome"`
}

// FicaResult holds payroll and self-employment tax amounts.
type FicaResult struct {
	SocialSecurityTax     decimal.Decimal `json:"socialSecurityTax"`
	MedicareTax           decimal.Decimal `json:"medicareTax"`
	AdditionalMedicareTax decimal.Decimal `json:"additionalMedicareTax"`
	SelfEmploymentTax     decimal.Decimal `json:"selfEmploymentTax"`
	// SETaxDeduction is half the SE tax, consumed as an above-the-line
	// deduction by the AGI stage. FICA must therefore run before AGI.
	SETaxDeduction decimal.Decimal `json:"seTaxDeduction"`
	TotalFica      decimal.Decimal `json:"totalFica"`
}

// AGIResult is Form 1040 Line 11 plus its two inputs.
type AGIResult struct {
	TotalGrossIncome         decimal.Decimal `json:"totalGrossIncome"`
	TotalAboveLineDeductions decimal.Decimal `json:"totalAboveLineDeductions"`
	AGI                      decimal.Decimal `json:"agi"`
}

// DeductionResult records the standard-vs-itemized choice and the
// ordinary/preferential partition of taxable income.
type DeductionResult struct {
	StandardDeductionAmount decimal.Decimal `json:"standardDeductionAmount"`
	ItemizedTotal           decimal.Decimal `json:"itemizedTotal"`
	UsedStandard            bool            `json:"usedStandard"`
	DeductionAmount         decimal.Decimal `json:"deductionAmount"`
	TaxableIncome           decimal.Decimal `json:"taxableIncome"`

	OrdinaryTaxableIncome          decimal.Decimal `json:"ordinaryTaxableIncome"`
	PreferentialQualifiedDividends decimal.Decimal `json:"preferentialQualifiedDividends"`
	PreferentialLongTermGains      decimal.Decimal `json:"preferentialLongTermGains"`
}

// BracketDetail is one tier of the progressive bracket breakdown. A nil
// BracketTop marks the unbounded top tier.
type BracketDetail struct {
	Rate             decimal.Decimal  `json:"rate"`
	BracketBottom    decimal.Decimal  `json:"bracketBottom"`
	BracketTop       *decimal.Decimal `json:"bracketTop"`
	TaxableInBracket decimal.Decimal  `json:"taxableInBracket"`
	TaxInBracket     decimal.Decimal  `json:"taxInBracket"`
}

// PreferentialRateDetail is one tranche of the 0/15/20% stacking breakdown.
type PreferentialRateDetail struct {
	Rate             decimal.Decimal  `json:"rate"`
	BracketBottom    decimal.Decimal  `json:"bracketBottom"`
	BracketTop       *decimal.Decimal `json:"bracketTop"`
	TaxableInBracket decimal.Decimal  `json:"taxableInBracket"`
	TaxInBracket     decimal.Decimal  `json:"taxInBracket"`
}

// TaxComputationResult is the income tax before credits, itemized by source.
type TaxComputationResult struct {
	OrdinaryTax          decimal.Decimal          `json:"ordinaryTax"`
	QualifiedDividendTax decimal.Decimal          `json:"qualifiedDividendTax"`
	CapitalGainsTax      decimal.Decimal          `json:"capitalGainsTax"`
	NIIT                 decimal.Decimal          `json:"niit"`
	TotalIncomeTax       decimal.Decimal          `json:"totalIncomeTax"`
	OrdinaryBreakdown    []BracketDetail          `json:"ordinaryBreakdown,omitempty"`
	DividendBreakdown    []PreferentialRateDetail `json:"dividendBreakdown,omitempty"`
	GainsBreakdown       []PreferentialRateDetail `json:"gainsBreakdown,omitempty"`
}

// CreditsResult records the Child Tax Credit split.
type CreditsResult struct {
	ChildTaxCredit          decimal.Decimal `json:"childTaxCredit"`
	NonrefundableCTCApplied decimal.Decimal `json:"nonrefundableCtcApplied"`
	RefundableCTCApplied    decimal.Decimal `json:"refundableCtcApplied"`
	TotalCreditsApplied     decimal.Decimal `json:"totalCreditsApplied"`
	TaxAfterCredits         decimal.Decimal `json:"taxAfterCredits"`
}

// TaxSummary carries the headline figures of the whole calculation.
type TaxSummary struct {
	FilingStatus  FilingStatus    `json:"filingStatus"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	AGI           decimal.Decimal `json:"agi"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`

	TotalIncomeTaxBeforeCredits decimal.Decimal `json:"totalIncomeTaxBeforeCredits"`
	TotalCredits                decimal.Decimal `json:"totalCredits"`
	IncomeTaxAfterCredits       decimal.Decimal `json:"incomeTaxAfterCredits"`
	TotalFica                   decimal.Decimal `json:"totalFica"`
	TotalTax                    decimal.Decimal `json:"totalTax"`

	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	MarginalRate  decimal.Decimal `json:"marginalRate"`

	TotalWithholding  decimal.Decimal `json:"totalWithholding"`
	EstimatedPayments decimal.Decimal `json:"estimatedPayments"`
	TotalPayments     decimal.Decimal `json:"totalPayments"`
	// RefundOrOwed is payments (plus refundable credits) minus total tax;
	// positive means refund.
	RefundOrOwed decimal.Decimal `json:"refundOrOwed"`
}

// FullTaxCalculationResult bundles every stage result plus the summary —
// a complete, self-describing breakdown suitable for direct serialization.
type FullTaxCalculationResult struct {
	Income         IncomeResult         `json:"income"`
	Fica           FicaResult           `json:"fica"`
	AGI            AGIResult            `json:"agi"`
	Deductions     DeductionResult      `json:"deductions"`
	TaxComputation TaxComputationResult `json:"taxComputation"`
	Credits        CreditsResult        `json:"credits"`
	Summary        TaxSummary           `json:"summary"`
}
