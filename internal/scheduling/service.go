package scheduling

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/observability/metrics"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

// AvailabilityService runs the full availability pipeline: build the
// wire request, fetch, normalize, deduplicate, sort. Each call is a pure
// function over its inputs plus a point-in-time read of the upstream;
// concurrent calls share no mutable state beyond the generation counter.
type AvailabilityService struct {
	client  *masterapi.Client
	builder *RequestBuilder
	logger  *logging.Logger
	metrics *metrics.SchedulingMetrics

	// generation implements last-request-wins: a fetch that completes
	// after a newer one has started is reported stale so callers never
	// overwrite fresh results with outdated ones.
	generation atomic.Uint64
}

// NewAvailabilityService creates the availability pipeline service.
func NewAvailabilityService(client *masterapi.Client, builder *RequestBuilder, logger *logging.Logger, m *metrics.SchedulingMetrics) *AvailabilityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AvailabilityService{client: client, builder: builder, logger: logger, metrics: m}
}

// FetchAvailability returns the deduplicated, chronologically sorted
// bookable slots for one date.
//
// Empty location or resource filters short-circuit to an empty result
// without touching the network: the upstream treats an empty filter as
// "unrestricted" and would return unrelated providers.
func (s *AvailabilityService) FetchAvailability(ctx context.Context, query AvailabilityQuery) ([]AvailabilitySlot, error) {
	if len(query.LocationIDs) == 0 || len(query.ResourceIDs) == 0 {
		s.metrics.ObserveAvailability(string(query.Mode), "empty_filter", 0)
		return []AvailabilitySlot{}, nil
	}

	gen := s.generation.Add(1)

	req, err := s.builder.BuildRequest(query)
	if err != nil {
		s.metrics.ObserveAvailability(string(query.Mode), "config_missing", 0)
		return nil, err
	}

	payload, err := s.client.GetAvailability(ctx, req)
	if err != nil {
		s.metrics.ObserveAvailability(string(query.Mode), "error", 0)
		return nil, fmt.Errorf("%w: %s", ErrAvailabilityFetchFailed, err)
	}

	slots := DedupeAndSort(NormalizeSlots(payload))

	if s.generation.Load() != gen {
		s.logger.Debug("discarding stale availability result",
			"date", query.Date.Format("2006-01-02"),
			"mode", string(query.Mode),
		)
		s.metrics.ObserveAvailability(string(query.Mode), "stale", 0)
		return nil, ErrStaleResult
	}

	s.metrics.ObserveAvailability(string(query.Mode), "ok", len(slots))
	return slots, nil
}
