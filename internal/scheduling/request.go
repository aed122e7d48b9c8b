package scheduling

import (
	"fmt"
	"strings"

	"github.com/wellport-health/patient-portal-api/internal/masterapi"
)

const (
	defaultDurationMinutes = 15
	defaultTimeRangeStart  = "0800"
	defaultTimeRangeEnd    = "1700"
)

// ModeIdentifiers are the upstream category/event identifiers for one
// booking mode.
type ModeIdentifiers struct {
	CategoryID string
	EventID    string
}

func (m ModeIdentifiers) complete() bool {
	return strings.TrimSpace(m.CategoryID) != "" && strings.TrimSpace(m.EventID) != ""
}

// AvailabilityConfig is the immutable availability request configuration,
// resolved from the environment once at startup and passed in here so the
// builder stays pure. Fallback identifiers apply when a mode has no
// identifiers of its own.
type AvailabilityConfig struct {
	InPerson     ModeIdentifiers
	Telemedicine ModeIdentifiers
	Fallback     ModeIdentifiers

	DurationMinutes int
	TimeRangeStart  string
	TimeRangeEnd    string
}

// RequestBuilder builds normalized wire requests for the availability
// endpoint from a booking mode and date.
type RequestBuilder struct {
	cfg AvailabilityConfig
}

// NewRequestBuilder creates a builder, applying upstream defaults for
// duration and the daily time window when unset.
func NewRequestBuilder(cfg AvailabilityConfig) *RequestBuilder {
	if cfg.DurationMinutes <= 0 {
		cfg.DurationMinutes = defaultDurationMinutes
	}
	if strings.TrimSpace(cfg.TimeRangeStart) == "" {
		cfg.TimeRangeStart = defaultTimeRangeStart
	}
	if strings.TrimSpace(cfg.TimeRangeEnd) == "" {
		cfg.TimeRangeEnd = defaultTimeRangeEnd
	}
	return &RequestBuilder{cfg: cfg}
}

// BuildRequest produces the wire request for one calendar day. The range
// spans the full local day and all seven weekdays, carrying the complete
// location and resource id sets so one call covers many providers.
func (b *RequestBuilder) BuildRequest(query AvailabilityQuery) (masterapi.AvailabilityRequest, error) {
	ids, err := b.identifiers(query.Mode)
	if err != nil {
		return masterapi.AvailabilityRequest{}, err
	}

	date := query.Date.Format("2006-01-02")

	return masterapi.AvailabilityRequest{
		CategoryID:           ids.CategoryID,
		EventID:              ids.EventID,
		DateRangeStart:       date + "T00:00:00",
		DateRangeEnd:         date + "T23:59:59",
		DaysOfWeek:           []int{1, 2, 3, 4, 5, 6, 7},
		DurationMinutes:      b.cfg.DurationMinutes,
		LocationIDs:          query.LocationIDs,
		ResourceIDs:          query.ResourceIDs,
		TimeRangeStart:       b.cfg.TimeRangeStart,
		TimeRangeEnd:         b.cfg.TimeRangeEnd,
		GroupResourcesBySlot: false,
		RestrictResultsBy:    0,
	}, nil
}

func (b *RequestBuilder) identifiers(mode Mode) (ModeIdentifiers, error) {
	ids := b.cfg.InPerson
	if mode == ModeTelemedicine {
		ids = b.cfg.Telemedicine
	}
	if strings.TrimSpace(ids.CategoryID) == "" {
		ids.CategoryID = b.cfg.Fallback.CategoryID
	}
	if strings.TrimSpace(ids.EventID) == "" {
		ids.EventID = b.cfg.Fallback.EventID
	}
	if !ids.complete() {
		return ModeIdentifiers{}, fmt.Errorf("%w: no category/event identifiers for mode %q", ErrConfigurationMissing, mode)
	}
	return ids, nil
}
