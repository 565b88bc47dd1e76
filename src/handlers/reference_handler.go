package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/taxclarity/backend/src/logger"
	"github.com/username/taxclarity/backend/src/services"
	"github.com/username/taxclarity/backend/src/utils"
)

// ReferenceHandler serves the public rate-table views. The data is static per
// tax year, so responses carry an ETag and honor If-None-Match.
type ReferenceHandler struct {
	calculationService services.CalculationService
}

func NewReferenceHandler(calculationService services.CalculationService) *ReferenceHandler {
	return &ReferenceHandler{
		calculationService: calculationService,
	}
}

func (h *ReferenceHandler) respondWithETag(w http.ResponseWriter, r *http.Request, data services.ReferenceData) {
	etag, err := utils.GenerateETag(data)
	if err != nil {
		logger.L.Error("Failed to generate ETag for reference data", "error", err)
	} else {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *ReferenceHandler) HandleGetBrackets(w http.ResponseWriter, r *http.Request) {
	h.respondWithETag(w, r, h.calculationService.BracketReference())
}

func (h *ReferenceHandler) HandleGetDeductions(w http.ResponseWriter, r *http.Request) {
	h.respondWithETag(w, r, h.calculationService.DeductionReference())
}
