package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

// SchedulingHandler serves the provider catalog and availability lookups.
type SchedulingHandler struct {
	catalog      *scheduling.Catalog
	availability *scheduling.AvailabilityService
	logger       *logging.Logger
}

func NewSchedulingHandler(catalog *scheduling.Catalog, availability *scheduling.AvailabilityService, logger *logging.Logger) *SchedulingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SchedulingHandler{catalog: catalog, availability: availability, logger: logger}
}

// ListResources handles GET /scheduling/resources.
func (h *SchedulingHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := masterapi.ResourceFilters{
		City:       q.Get("city"),
		State:      q.Get("state"),
		Address:    q.Get("address"),
		LocationID: q.Get("locationId"),
		ResourceID: q.Get("resourceId"),
	}
	if raw := strings.TrimSpace(q.Get("top")); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil || top <= 0 {
			respondError(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		filters.Top = top
	}

	resources, err := h.catalog.ListResources(r.Context(), filters)
	if err != nil {
		h.logger.Error("resource catalog lookup failed", "error", err)
		respondError(w, http.StatusBadGateway, "resource catalog unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": resources})
}

type availabilityRequest struct {
	Date        string   `json:"date"`
	LocationIDs []string `json:"locationIds"`
	ResourceIDs []string `json:"resourceIds"`
	Mode        string   `json:"mode"`
}

type availabilityResponse struct {
	Slots      []scheduling.AvailabilitySlot            `json:"slots"`
	ByResource map[string][]scheduling.AvailabilitySlot `json:"byResource"`
}

// GetAvailability handles POST /scheduling/availability.
func (h *SchedulingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), time.Local)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be formatted as 2006-01-02")
		return
	}

	query := scheduling.AvailabilityQuery{
		Date:        date,
		LocationIDs: req.LocationIDs,
		ResourceIDs: req.ResourceIDs,
		Mode:        scheduling.ParseMode(req.Mode),
	}

	slots, err := h.availability.FetchAvailability(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConfigurationMissing):
			respondError(w, http.StatusBadRequest, "availability is not configured for this booking mode")
		case errors.Is(err, scheduling.ErrStaleResult):
			respondError(w, http.StatusConflict, "superseded by a newer availability request")
		default:
			h.logger.Error("availability fetch failed", "error", err, "date", req.Date)
			respondError(w, http.StatusBadGateway, "availability unavailable")
		}
		return
	}

	respondJSON(w, http.StatusOK, availabilityResponse{
		Slots:      slots,
		ByResource: scheduling.GroupByResource(slots),
	})
}
