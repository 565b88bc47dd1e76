package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/taxclarity/backend/src/logger"
	"github.com/username/taxclarity/backend/src/models"
	"github.com/username/taxclarity/backend/src/services"
	"github.com/username/taxclarity/backend/src/utils"
)

type CalculationHandler struct {
	calculationService services.CalculationService
}

func NewCalculationHandler(calculationService services.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		calculationService: calculationService,
	}
}

func decodeTaxReturnInput(w http.ResponseWriter, r *http.Request) (*models.TaxReturnInput, bool) {
	var input models.TaxReturnInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		utils.SendJSONError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &input, true
}

// HandleCalculate runs the full pipeline for an authenticated user and saves
// the result to their history.
func (h *CalculationHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	input, ok := decodeTaxReturnInput(w, r)
	if !ok {
		return
	}

	result, err := h.calculationService.Calculate(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrValidationFailed) {
			utils.SendJSONError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.L.Error("Calculation failed", "userID", userID, "error", err)
		utils.SendJSONError(w, "Calculation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleEstimate serves the public quick estimate: gross income and filing
// status in, standard deduction plus bracket tax out. Nothing is persisted.
func (h *CalculationHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var input models.EstimateInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		utils.SendJSONError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.calculationService.Estimate(&input)
	if err != nil {
		if errors.Is(err, services.ErrValidationFailed) {
			utils.SendJSONError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.L.Error("Estimate failed", "error", err)
		utils.SendJSONError(w, "Calculation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
