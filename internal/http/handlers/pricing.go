package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellport-health/patient-portal-api/internal/pricing"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

// PricingHandler serves consultation price quotes.
type PricingHandler struct {
	quotes *pricing.QuoteService
	logger *logging.Logger
}

func NewPricingHandler(quotes *pricing.QuoteService, logger *logging.Logger) *PricingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PricingHandler{quotes: quotes, logger: logger}
}

type quoteRequest struct {
	PlanName string `json:"planName"`
	Mode     string `json:"mode"`
}

// Quote handles POST /pricing/quote.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	quote, err := h.quotes.Quote(r.Context(), req.PlanName, scheduling.ParseMode(req.Mode))
	if err != nil {
		if errors.Is(err, pricing.ErrProcedurePriceUnavailable) {
			h.logger.Error("procedure price unavailable", "error", err)
			respondError(w, http.StatusBadGateway, "consultation price unavailable")
			return
		}
		h.logger.Error("quote failed", "error", err)
		respondError(w, http.StatusInternalServerError, "quote failed")
		return
	}

	respondJSON(w, http.StatusOK, quote)
}
