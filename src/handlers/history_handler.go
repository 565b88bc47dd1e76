package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/username/taxclarity/backend/src/logger"
	"github.com/username/taxclarity/backend/src/model"
	"github.com/username/taxclarity/backend/src/services"
	"github.com/username/taxclarity/backend/src/utils"
)

// HistoryHandler serves a user's saved calculations.
type HistoryHandler struct {
	calculationService services.CalculationService
}

func NewHistoryHandler(calculationService services.CalculationService) *HistoryHandler {
	return &HistoryHandler{
		calculationService: calculationService,
	}
}

func (h *HistoryHandler) HandleListCalculations(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	calcs, err := h.calculationService.ListCalculations(userID)
	if err != nil {
		logger.L.Error("Failed to list calculations", "userID", userID, "error", err)
		utils.SendJSONError(w, "Failed to retrieve calculations", http.StatusInternalServerError)
		return
	}
	if calcs == nil {
		calcs = []model.StoredCalculation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcs)
}

func calcIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	calcID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid calculation ID", http.StatusBadRequest)
		return 0, false
	}
	return calcID, true
}

func (h *HistoryHandler) HandleGetCalculation(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	calcID, ok := calcIDFromPath(w, r)
	if !ok {
		return
	}

	calc, err := h.calculationService.GetCalculation(userID, calcID)
	if err != nil {
		if errors.Is(err, services.ErrCalculationNotFound) {
			utils.SendJSONError(w, "Calculation not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Failed to get calculation", "userID", userID, "calcID", calcID, "error", err)
		utils.SendJSONError(w, "Failed to retrieve calculation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calc)
}

func (h *HistoryHandler) HandleDeleteCalculation(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	calcID, ok := calcIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.calculationService.DeleteCalculation(userID, calcID); err != nil {
		if errors.Is(err, services.ErrCalculationNotFound) {
			utils.SendJSONError(w, "Calculation not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Failed to delete calculation", "userID", userID, "calcID", calcID, "error", err)
		utils.SendJSONError(w, "Failed to delete calculation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
