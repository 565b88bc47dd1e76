package taxdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/username/taxclarity/backend/src/models"
)

// Bracket is one tier of a progressive schedule. A nil UpperBound marks the
// unbounded top tier. Tiers are ordered by ascending upper bound.
type Bracket struct {
	UpperBound *decimal.Decimal `json:"upperBound"`
	Rate       decimal.Decimal  `json:"rate"`
}

// RateTable is the complete static configuration for one tax year. It is
// pure data: every calculator receives it by injection and no component
// hardcodes an amount out of it, so multiple years (or test fixtures) can
// coexist in one process.
type RateTable struct {
	Year int `json:"year"`

	Brackets map[models.FilingStatus][]Bracket `json:"brackets"`

	StandardDeduction            map[models.FilingStatus]decimal.Decimal `json:"standardDeduction"`
	AdditionalDeductionSingleHOH decimal.Decimal                         `json:"additionalDeductionSingleHoh"`
	AdditionalDeductionMarried   decimal.Decimal                         `json:"additionalDeductionMarried"`

	// 0%/15%/20% breakpoints for long-term gains and qualified dividends.
	CapitalGainsBrackets map[models.FilingStatus][]Bracket `json:"capitalGainsBrackets"`

	NIITRate       decimal.Decimal                          `json:"niitRate"`
	NIITThresholds map[models.FilingStatus]decimal.Decimal `json:"niitThresholds"`

	SocialSecurityWageBase       decimal.Decimal                          `json:"socialSecurityWageBase"`
	SocialSecurityRate           decimal.Decimal                          `json:"socialSecurityRate"` // employee side
	MedicareRate                 decimal.Decimal                          `json:"medicareRate"`       // employee side
	AdditionalMedicareRate       decimal.Decimal                          `json:"additionalMedicareRate"`
	AdditionalMedicareThresholds map[models.FilingStatus]decimal.Decimal `json:"additionalMedicareThresholds"`

	SETaxableFraction    decimal.Decimal `json:"seTaxableFraction"`    // 92.35% of net SE income
	SESocialSecurityRate decimal.Decimal `json:"seSocialSecurityRate"` // combined 12.4%
	SEMedicareRate       decimal.Decimal `json:"seMedicareRate"`       // combined 2.9%
	SEDeductibleFraction decimal.Decimal `json:"seDeductibleFraction"` // half of SE tax

	ChildTaxCreditPerChild           decimal.Decimal                          `json:"childTaxCreditPerChild"`
	ChildTaxCreditRefundableCap      decimal.Decimal                          `json:"childTaxCreditRefundableCap"` // per child
	ChildTaxCreditPhaseoutThresholds map[models.FilingStatus]decimal.Decimal `json:"childTaxCreditPhaseoutThresholds"`
	ChildTaxCreditPhaseoutStep       decimal.Decimal                          `json:"childTaxCreditPhaseoutStep"`
	ChildTaxCreditPhaseoutAmount     decimal.Decimal                          `json:"childTaxCreditPhaseoutAmount"`

	SALTCap         decimal.Decimal `json:"saltCap"`
	SALTCapMFS      decimal.Decimal `json:"saltCapMfs"`
	MedicalAGIFloor decimal.Decimal `json:"medicalAgiFloor"`
}

// Validate checks the table is usable: every filing status has an ordered
// bracket list ending in an unbounded tier, plus deduction and threshold
// entries.
func (t *RateTable) Validate() error {
	if t.Year == 0 {
		return fmt.Errorf("rate table: year is required")
	}
	for _, fs := range models.AllFilingStatuses() {
		if err := validateSchedule(t.Brackets[fs]); err != nil {
			return fmt.Errorf("rate table %d: brackets for %s: %w", t.Year, fs, err)
		}
		if err := validateSchedule(t.CapitalGainsBrackets[fs]); err != nil {
			return fmt.Errorf("rate table %d: capital gains brackets for %s: %w", t.Year, fs, err)
		}
		if _, ok := t.StandardDeduction[fs]; !ok {
			return fmt.Errorf("rate table %d: missing standard deduction for %s", t.Year, fs)
		}
		if _, ok := t.NIITThresholds[fs]; !ok {
			return fmt.Errorf("rate table %d: missing NIIT threshold for %s", t.Year, fs)
		}
		if _, ok := t.AdditionalMedicareThresholds[fs]; !ok {
			return fmt.Errorf("rate table %d: missing additional medicare threshold for %s", t.Year, fs)
		}
		if _, ok := t.ChildTaxCreditPhaseoutThresholds[fs]; !ok {
			return fmt.Errorf("rate table %d: missing child tax credit phaseout threshold for %s", t.Year, fs)
		}
	}
	return nil
}

func validateSchedule(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("schedule is empty")
	}
	prev := decimal.Zero
	for i, b := range brackets {
		if b.UpperBound == nil {
			if i != len(brackets)-1 {
				return fmt.Errorf("unbounded tier must be last (tier %d)", i)
			}
			continue
		}
		if !b.UpperBound.GreaterThan(prev) {
			return fmt.Errorf("tier %d upper bound %s does not increase", i, b.UpperBound)
		}
		prev = *b.UpperBound
	}
	if brackets[len(brackets)-1].UpperBound != nil {
		return fmt.Errorf("top tier must be unbounded")
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = map[int]*RateTable{}
)

func init() {
	registry[2024] = year2024()
}

// ForYear returns the registered rate table for a year.
func ForYear(year int) (*RateTable, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[year]
	if !ok {
		return nil, fmt.Errorf("no rate table registered for year %d", year)
	}
	return t, nil
}

// Register validates and registers a table, replacing any table already
// registered for that year.
func Register(t *RateTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t.Year] = t
	return nil
}

// LoadRateTable reads a JSON rate table from disk, validates it, and
// registers it. Called at startup with the configured path so future years
// are a data change, not a code change.
func LoadRateTable(path string) (*RateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rate table %s: %w", path, err)
	}
	var t RateTable
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing rate table %s: %w", path, err)
	}
	if err := Register(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
