package scheduling

import (
	"context"
	"fmt"
	"sort"

	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/observability/metrics"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog fetches and filters the bookable providers for a location.
type Catalog struct {
	client       *masterapi.Client
	defaultLimit int
	logger       *logging.Logger
	metrics      *metrics.SchedulingMetrics
}

// NewCatalog creates a resource catalog. defaultLimit caps the upstream
// query when the caller does not pass its own limit.
func NewCatalog(client *masterapi.Client, defaultLimit int, logger *logging.Logger, m *metrics.SchedulingMetrics) *Catalog {
	if defaultLimit <= 0 {
		defaultLimit = 1000
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Catalog{client: client, defaultLimit: defaultLimit, logger: logger, metrics: m}
}

// ListResources returns non-deleted providers matching the filters,
// sorted by display name. An empty result is valid and distinct from
// failure.
func (c *Catalog) ListResources(ctx context.Context, filters masterapi.ResourceFilters) ([]Resource, error) {
	if filters.Top <= 0 {
		filters.Top = c.defaultLimit
	}

	items, err := c.client.GetResourcesByLocation(ctx, filters)
	if err != nil {
		c.metrics.ObserveCatalog("error")
		return nil, fmt.Errorf("%w: %s", ErrCatalogUnavailable, err)
	}
	c.metrics.ObserveCatalog("ok")

	resources := make([]Resource, 0, len(items))
	for _, item := range items {
		if item.IsDeleted {
			continue
		}
		resources = append(resources, Resource{ID: item.ID, DisplayName: item.DisplayName})
	}

	// Collation keeps accented provider names ordered the way patients
	// expect; plain byte comparison puts them after "z".
	collator := collate.New(language.Und)
	sort.SliceStable(resources, func(i, j int) bool {
		return collator.CompareString(resources[i].DisplayName, resources[j].DisplayName) < 0
	})

	return resources, nil
}
