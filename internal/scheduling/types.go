// Package scheduling turns the master API's loosely shaped availability
// data into clean, deduplicated bookable slots per provider.
package scheduling

import (
	"errors"
	"time"
)

// Mode is the booking channel. It selects which category/event
// configuration and pricing rules apply.
type Mode string

const (
	ModeInPerson     Mode = "inperson"
	ModeTelemedicine Mode = "telemedicine"
)

// ParseMode maps loose caller input onto a Mode. Anything that is not
// telemedicine is treated as in-person, matching upstream behavior.
func ParseMode(value string) Mode {
	if value == string(ModeTelemedicine) {
		return ModeTelemedicine
	}
	return ModeInPerson
}

// Resource is an immutable snapshot of a bookable provider.
type Resource struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	IsDeleted   bool   `json:"-"`
}

// AvailabilitySlot is one bookable time window for one provider. The
// resource id is normalized (trimmed, lowercased) and StartDateTime is a
// local ISO-8601 string, which sorts correctly as text because the format
// is fixed-width and zero-padded.
type AvailabilitySlot struct {
	ResourceID    string `json:"resourceId"`
	StartDateTime string `json:"startDateTime"`
	ResourceName  string `json:"resourceName,omitempty"`
}

// AvailabilityQuery is the immutable input for one availability lookup.
type AvailabilityQuery struct {
	Date        time.Time
	LocationIDs []string
	ResourceIDs []string
	Mode        Mode
}

var (
	// ErrCatalogUnavailable reports a failed provider catalog fetch.
	// An empty catalog is a valid result, not this error.
	ErrCatalogUnavailable = errors.New("scheduling: resource catalog unavailable")

	// ErrAvailabilityFetchFailed reports a transport or envelope failure
	// of the availability endpoint. Malformed individual items never
	// trigger it.
	ErrAvailabilityFetchFailed = errors.New("scheduling: availability fetch failed")

	// ErrConfigurationMissing reports that neither the mode-specific nor
	// the fallback category/event identifiers are configured.
	ErrConfigurationMissing = errors.New("scheduling: availability configuration missing")

	// ErrStaleResult reports that a newer availability fetch started
	// while this one was in flight; the result must be discarded.
	ErrStaleResult = errors.New("scheduling: stale availability result")
)
