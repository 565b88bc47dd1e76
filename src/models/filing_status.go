package models

// FilingStatus is the closed set of federal filing statuses. It is a plain
// tag used to index rate-table lookups, never a dispatch hierarchy.
type FilingStatus string

const (
	Single                    FilingStatus = "SINGLE"
	MarriedFilingJointly      FilingStatus = "MARRIED_FILING_JOINTLY"
	MarriedFilingSeparately   FilingStatus = "MARRIED_FILING_SEPARATELY"
	HeadOfHousehold           FilingStatus = "HEAD_OF_HOUSEHOLD"
	QualifyingSurvivingSpouse FilingStatus = "QUALIFYING_SURVIVING_SPOUSE"
)

// AllFilingStatuses returns the five recognized statuses in a stable order.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{
		Single,
		MarriedFilingJointly,
		MarriedFilingSeparately,
		HeadOfHousehold,
		QualifyingSurvivingSpouse,
	}
}

// Valid reports whether fs is one of the five recognized statuses.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparately, HeadOfHousehold, QualifyingSurvivingSpouse:
		return true
	}
	return false
}
