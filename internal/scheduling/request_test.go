package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuery(mode Mode) AvailabilityQuery {
	return AvailabilityQuery{
		Date:        time.Date(2026, 3, 2, 16, 45, 0, 0, time.Local),
		LocationIDs: []string{"loc-1"},
		ResourceIDs: []string{"res-1", "res-2"},
		Mode:        mode,
	}
}

func TestBuildRequest_FullLocalDay(t *testing.T) {
	builder := NewRequestBuilder(AvailabilityConfig{
		InPerson:        ModeIdentifiers{CategoryID: "cat-ip", EventID: "evt-ip"},
		DurationMinutes: 30,
		TimeRangeStart:  "0700",
		TimeRangeEnd:    "1900",
	})

	req, err := builder.BuildRequest(testQuery(ModeInPerson))
	require.NoError(t, err)

	assert.Equal(t, "cat-ip", req.CategoryID)
	assert.Equal(t, "evt-ip", req.EventID)
	assert.Equal(t, "2026-03-02T00:00:00", req.DateRangeStart)
	assert.Equal(t, "2026-03-02T23:59:59", req.DateRangeEnd)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, req.DaysOfWeek)
	assert.Equal(t, 30, req.DurationMinutes)
	assert.Equal(t, []string{"loc-1"}, req.LocationIDs)
	assert.Equal(t, []string{"res-1", "res-2"}, req.ResourceIDs)
	assert.Equal(t, "0700", req.TimeRangeStart)
	assert.Equal(t, "1900", req.TimeRangeEnd)
	assert.False(t, req.GroupResourcesBySlot)
	assert.Equal(t, 0, req.RestrictResultsBy)
}

func TestBuildRequest_ModeSelectsIdentifiers(t *testing.T) {
	builder := NewRequestBuilder(AvailabilityConfig{
		InPerson:     ModeIdentifiers{CategoryID: "cat-ip", EventID: "evt-ip"},
		Telemedicine: ModeIdentifiers{CategoryID: "cat-tele", EventID: "evt-tele"},
	})

	req, err := builder.BuildRequest(testQuery(ModeTelemedicine))
	require.NoError(t, err)
	assert.Equal(t, "cat-tele", req.CategoryID)
	assert.Equal(t, "evt-tele", req.EventID)
}

func TestBuildRequest_FallbackIdentifiers(t *testing.T) {
	builder := NewRequestBuilder(AvailabilityConfig{
		Telemedicine: ModeIdentifiers{CategoryID: "cat-tele"},
		Fallback:     ModeIdentifiers{CategoryID: "cat-generic", EventID: "evt-generic"},
	})

	req, err := builder.BuildRequest(testQuery(ModeTelemedicine))
	require.NoError(t, err)
	// Mode-specific value wins where present, fallback fills the gap.
	assert.Equal(t, "cat-tele", req.CategoryID)
	assert.Equal(t, "evt-generic", req.EventID)
}

func TestBuildRequest_ConfigurationMissing(t *testing.T) {
	builder := NewRequestBuilder(AvailabilityConfig{
		InPerson: ModeIdentifiers{CategoryID: "cat-ip", EventID: "evt-ip"},
	})

	_, err := builder.BuildRequest(testQuery(ModeTelemedicine))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationMissing))
}

func TestNewRequestBuilder_Defaults(t *testing.T) {
	builder := NewRequestBuilder(AvailabilityConfig{
		Fallback: ModeIdentifiers{CategoryID: "c", EventID: "e"},
	})

	req, err := builder.BuildRequest(testQuery(ModeInPerson))
	require.NoError(t, err)
	assert.Equal(t, 15, req.DurationMinutes)
	assert.Equal(t, "0800", req.TimeRangeStart)
	assert.Equal(t, "1700", req.TimeRangeEnd)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeTelemedicine, ParseMode("telemedicine"))
	assert.Equal(t, ModeInPerson, ParseMode("inperson"))
	assert.Equal(t, ModeInPerson, ParseMode(""))
	assert.Equal(t, ModeInPerson, ParseMode("anything-else"))
}
