package masterapi

// ResourceItem is a provider record returned by /resources/by-location.
type ResourceItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"resourceDisplayName"`
	IsDeleted   bool   `json:"isDeleted"`
}

// ResourceFilters are the query parameters accepted by the resource
// catalog endpoint. The upstream treats them as a positional OR filter;
// zero-valued fields are omitted from the query string.
type ResourceFilters struct {
	City       string
	State      string
	Address    string
	LocationID string
	ResourceID string
	Top        int
}

// AvailabilityRequest is the wire body for POST /appointments/availability.
// Field names follow the upstream contract exactly.
type AvailabilityRequest struct {
	CategoryID           string   `json:"CategoryId"`
	EventID              string   `json:"EventId"`
	DateRangeStart       string   `json:"DateRangeStart"`
	DateRangeEnd         string   `json:"DateRangeEnd"`
	DaysOfWeek           []int    `json:"DaysOfWeek"`
	DurationMinutes      int      `json:"DurationMinutes"`
	LocationIDs          []string `json:"LocationIds"`
	ResourceIDs          []string `json:"ResourceIds"`
	TimeRangeStart       string   `json:"TimeRangeStart"`
	TimeRangeEnd         string   `json:"TimeRangeEnd"`
	GroupResourcesBySlot bool     `json:"GroupResourcesBySlot"`
	RestrictResultsBy    int      `json:"RestrictResultsBy"`
}

// ProcedureItem is a billable procedure from /master/procedures. Prices
// arrive as numbers, numeric strings, or null depending on the upstream
// data source, so they are kept loosely typed until coercion.
type ProcedureItem struct {
	ServiceItemID        string `json:"serviceItemId"`
	Code                 string `json:"code"`
	Description          string `json:"description"`
	CurrentPrice         any    `json:"currentPrice"`
	CurrentPriceFacility any    `json:"currentPriceFacility"`
	IsDeleted            bool   `json:"isDeleted"`
}
