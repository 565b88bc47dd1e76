package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// W2Income holds the wage and withholding boxes of a single Form W-2.
type W2Income struct {
	Wages               decimal.Decimal `json:"wages"`               // Box 1
	FederalWithholding  decimal.Decimal `json:"federalWithholding"`  // Box 2
	SocialSecurityWages decimal.Decimal `json:"socialSecurityWages"` // Box 3
	MedicareWages       decimal.Decimal `json:"medicareWages"`       // Box 5
}

// Income1099NEC is non-employee (self-employment) compensation.
type Income1099NEC struct {
	Compensation decimal.Decimal `json:"compensation"` // Box 1
}

// Income1099INT is interest income.
type Income1099INT struct {
	Interest decimal.Decimal `json:"interest"` // Box 1
}

// Income1099DIV is dividend income. Qualified dividends are a subset of
// ordinary dividends and may never exceed them.
type Income1099DIV struct {
	OrdinaryDividends  decimal.Decimal `json:"ordinaryDividends"`  // Box 1a
	QualifiedDividends decimal.Decimal `json:"qualifiedDividends"` // Box 1b
}

// Income1099B is net capital gain/loss by holding period. Both fields may
// be negative (losses).
type Income1099B struct {
	ShortTermGains decimal.Decimal `json:"shortTermGains"`
	LongTermGains  decimal.Decimal `json:"longTermGains"`
}

// ItemizedDeductions is the Schedule A breakdown. A nil pointer on
// TaxReturnInput means the standard-deduction path.
type ItemizedDeductions struct {
	Medical            decimal.Decimal `json:"medical"`
	StateAndLocalTaxes decimal.Decimal `json:"stateAndLocalTaxes"`
	MortgageInterest   decimal.Decimal `json:"mortgageInterest"`
	Charitable         decimal.Decimal `json:"charitable"`
	Casualty           decimal.Decimal `json:"casualty"`
	Other              decimal.Decimal `json:"other"`
}

// TaxCredits holds the credit inputs.
type TaxCredits struct {
	NumQualifyingChildren int `json:"numQualifyingChildren"`
}

// TaxReturnInput is the immutable snapshot of one tax return. It is created
// once per calculation and never mutated by any pipeline stage.
type TaxReturnInput struct {
	// TaxYear is optional; zero means the server's configured year. Any
	// other year is rejected, since only one year's rules are loaded.
	TaxYear int `json:"taxYear,omitempty"`

	FilingStatus FilingStatus `json:"filingStatus"`
	IsOver65     bool         `json:"isOver65"`
	IsBlind      bool         `json:"isBlind"`

	W2s     []W2Income      `json:"w2s"`
	NEC1099 []Income1099NEC `json:"income1099Nec"`
	INT1099 []Income1099INT `json:"income1099Int"`
	DIV1099 []Income1099DIV `json:"income1099Div"`
	B1099   []Income1099B   `json:"income1099B"`

	ItemizedDeductions     *ItemizedDeductions `json:"itemizedDeductions,omitempty"`
	ForceStandardDeduction bool                `json:"forceStandardDeduction"`

	// Above-the-line deductions besides the auto-computed SE deduction.
	HSADeduction                decimal.Decimal `json:"hsaDeduction"`
	StudentLoanInterest         decimal.Decimal `json:"studentLoanInterest"`
	EducatorExpenses            decimal.Decimal `json:"educatorExpenses"`
	IRADeduction                decimal.Decimal `json:"iraDeduction"`
	SelfEmployedHealthInsurance decimal.Decimal `json:"selfEmployedHealthInsurance"`

	Credits TaxCredits `json:"credits"`

	EstimatedPayments decimal.Decimal `json:"estimatedPayments"`
}

// Validate enforces the boundary constraints: recognized filing status,
// non-negative monetary fields (capital gains excepted), and qualified
// dividends bounded by ordinary dividends per 1099-DIV record. The pipeline
// must only ever see inputs that passed this check.
func (in *TaxReturnInput) Validate() error {
	if in == nil {
		return fmt.Errorf("%w: tax return is required", ErrIncompleteInput)
	}
	if !in.FilingStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilingStatus, in.FilingStatus)
	}

	for i, w2 := range in.W2s {
		if w2.Wages.IsNegative() {
			return newValidationError("W-2", i, "wages must be non-negative")
		}
		if w2.FederalWithholding.IsNegative() {
			return newValidationError("W-2", i, "federal withholding must be non-negative")
		}
		if w2.SocialSecurityWages.IsNegative() {
			return newValidationError("W-2", i, "social security wages must be non-negative")
		}
		if w2.MedicareWages.IsNegative() {
			return newValidationError("W-2", i, "medicare wages must be non-negative")
		}
	}
	for i, nec := range in.NEC1099 {
		if nec.Compensation.IsNegative() {
			return newValidationError("1099-NEC", i, "compensation must be non-negative")
		}
	}
	for i, intForm := range in.INT1099 {
		if intForm.Interest.IsNegative() {
			return newValidationError("1099-INT", i, "interest must be non-negative")
		}
	}
	for i, div := range in.DIV1099 {
		if div.OrdinaryDividends.IsNegative() {
			return newValidationError("1099-DIV", i, "ordinary dividends must be non-negative")
		}
		if div.QualifiedDividends.IsNegative() {
			return newValidationError("1099-DIV", i, "qualified dividends must be non-negative")
		}
		if div.QualifiedDividends.GreaterThan(div.OrdinaryDividends) {
			return newValidationError("1099-DIV", i, "qualified dividends cannot exceed ordinary dividends")
		}
	}
	// 1099-B gains may be negative (losses); no sign constraint.

	if in.ItemizedDeductions != nil {
		item := in.ItemizedDeductions
		categories := []struct {
			name  string
			value decimal.Decimal
		}{
			{"medical", item.Medical},
			{"stateAndLocalTaxes", item.StateAndLocalTaxes},
			{"mortgageInterest", item.MortgageInterest},
			{"charitable", item.Charitable},
			{"casualty", item.Casualty},
			{"other", item.Other},
		}
		for _, c := range categories {
			if c.value.IsNegative() {
				return newValidationError("itemizedDeductions."+c.name, -1, "must be non-negative")
			}
		}
	}

	aboveLine := []struct {
		name  string
		value decimal.Decimal
	}{
		{"hsaDeduction", in.HSADeduction},
		{"studentLoanInterest", in.StudentLoanInterest},
		{"educatorExpenses", in.EducatorExpenses},
		{"iraDeduction", in.IRADeduction},
		{"selfEmployedHealthInsurance", in.SelfEmployedHealthInsurance},
		{"estimatedPayments", in.EstimatedPayments},
	}
	for _, f := range aboveLine {
		if f.value.IsNegative() {
			return newValidationError(f.name, -1, "must be non-negative")
		}
	}

	if in.Credits.NumQualifyingChildren < 0 {
		return newValidationError("credits.numQualifyingChildren", -1, "must be non-negative")
	}

	return nil
}
