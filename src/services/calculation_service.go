package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/taxclarity/backend/src/database"
	"github.com/username/taxclarity/backend/src/logger"
	"github.com/username/taxclarity/backend/src/model"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/processors"
	"github.com/username/taxclarity/backend/src/taxdata"
	"github.com/username/taxclarity/backend/src/utils"
)

const (
	ckCalculationList = "res_calculation_list_user_%d"
	ckCalculation     = "res_calculation_user_%d_id_%d"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type calculationServiceImpl struct {
	rates        *taxdata.RateTable
	orchestrator *processors.Orchestrator
	reportCache  *cache.Cache
}

func NewCalculationService(rates *taxdata.RateTable, reportCache *cache.Cache) CalculationService {
	return &calculationServiceImpl{
		rates:        rates,
		orchestrator: processors.New(rates),
		reportCache:  reportCache,
	}
}

func (s *calculationServiceImpl) run(input *models.TaxReturnInput) (*models.FullTaxCalculationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	// Only the configured year's rules are loaded; any other year is a
	// scenario this engine does not cover.
	if input.TaxYear != 0 && input.TaxYear != s.rates.Year {
		return nil, fmt.Errorf("%w: %w: tax year %d (only %d is available)",
			ErrValidationFailed, models.ErrUnsupportedScenario, input.TaxYear, s.rates.Year)
	}
	result := s.orchestrator.Calculate(input)
	return &result, nil
}

func (s *calculationServiceImpl) Calculate(userID int64, input *models.TaxReturnInput) (*models.FullTaxCalculationResult, error) {
	startTime := time.Now()
	result, err := s.run(input)
	if err != nil {
		return nil, err
	}

	logger.L.Info("Calculation complete",
		"userID", userID,
		"filingStatus", input.FilingStatus,
		"totalTax", utils.FormatUSD(result.Summary.TotalTax),
		"duration", time.Since(startTime))

	// Best-effort persistence: the caller already has the result, so a
	// storage failure is logged and swallowed.
	go func() {
		if _, err := model.SaveCalculation(database.DB, userID, s.rates.Year, input, result); err != nil {
			logger.L.Warn("Failed to save calculation", "userID", userID, "error", err)
			return
		}
		s.invalidateUserCache(userID)
	}()

	return result, nil
}

func (s *calculationServiceImpl) Estimate(input *models.EstimateInput) (*models.EstimateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	result := s.orchestrator.Estimate(input)
	return &result, nil
}

func (s *calculationServiceImpl) invalidateUserCache(userID int64) {
	s.reportCache.Delete(fmt.Sprintf(ckCalculationList, userID))
	logger.L.Debug("Invalidated calculation list cache for user", "userID", userID)
}

func (s *calculationServiceImpl) ListCalculations(userID int64) ([]model.StoredCalculation, error) {
	cacheKey := fmt.Sprintf(ckCalculationList, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for ListCalculations", "userID", userID)
		return cached.([]model.StoredCalculation), nil
	}

	calcs, err := model.ListCalculations(database.DB, userID)
	if err != nil {
		return nil, err
	}
	s.reportCache.Set(cacheKey, calcs, DefaultCacheExpiration)
	return calcs, nil
}

func (s *calculationServiceImpl) GetCalculation(userID, calcID int64) (*model.StoredCalculation, error) {
	cacheKey := fmt.Sprintf(ckCalculation, userID, calcID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for GetCalculation", "userID", userID, "calcID", calcID)
		return cached.(*model.StoredCalculation), nil
	}

	calc, err := model.GetCalculation(database.DB, userID, calcID)
	if err != nil {
		if errors.Is(err, model.ErrCalculationNotFound) {
			return nil, ErrCalculationNotFound
		}
		return nil, err
	}
	s.reportCache.Set(cacheKey, calc, DefaultCacheExpiration)
	return calc, nil
}

func (s *calculationServiceImpl) DeleteCalculation(userID, calcID int64) error {
	err := model.DeleteCalculation(database.DB, userID, calcID)
	if err != nil {
		if errors.Is(err, model.ErrCalculationNotFound) {
			return ErrCalculationNotFound
		}
		return err
	}
	s.reportCache.Delete(fmt.Sprintf(ckCalculation, userID, calcID))
	s.invalidateUserCache(userID)
	return nil
}

func referenceSchedule(brackets []taxdata.Bracket) []ReferenceBracket {
	out := make([]ReferenceBracket, 0, len(brackets))
	for _, b := range brackets {
		ref := ReferenceBracket{Rate: b.Rate.String()}
		if b.UpperBound != nil {
			ref.UpperBound = b.UpperBound.StringFixed(2)
		}
		out = append(out, ref)
	}
	return out
}

func (s *calculationServiceImpl) BracketReference() ReferenceData {
	brackets := make(map[models.FilingStatus][]ReferenceBracket, len(s.rates.Brackets))
	for fs, schedule := range s.rates.Brackets {
		brackets[fs] = referenceSchedule(schedule)
	}
	cgBrackets := make(map[models.FilingStatus][]ReferenceBracket, len(s.rates.CapitalGainsBrackets))
	for fs, schedule := range s.rates.CapitalGainsBrackets {
		cgBrackets[fs] = referenceSchedule(schedule)
	}
	return ReferenceData{
		TaxYear:              s.rates.Year,
		Brackets:             brackets,
		CapitalGainsBrackets: cgBrackets,
	}
}

func (s *calculationServiceImpl) DeductionReference() ReferenceData {
	deductions := make(map[models.FilingStatus]string, len(s.rates.StandardDeduction))
	for fs, amount := range s.rates.StandardDeduction {
		deductions[fs] = amount.StringFixed(2)
	}
	return ReferenceData{
		TaxYear:            s.rates.Year,
		StandardDeductions: deductions,
		AdditionalDeductions: map[string]string{
			"singleOrHeadOfHousehold": s.rates.AdditionalDeductionSingleHOH.StringFixed(2),
			"married":                 s.rates.AdditionalDeductionMarried.StringFixed(2),
		},
	}
}
