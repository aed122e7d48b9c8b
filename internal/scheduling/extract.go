package scheduling

import (
	"regexp"
	"strconv"
	"strings"
)

// The availability endpoint has accumulated at least four response shapes
// over the years. These helpers implement the ordered field-alias lookups
// that tame it: try one key, fall through to the next, return nothing if
// no alias yields a usable value.

func asRecord(value any) (map[string]any, bool) {
	record, ok := value.(map[string]any)
	return record, ok
}

// pickString returns the first non-blank string value among the keys.
func pickString(record map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := record[key].(string); ok && strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}

// pickNumber returns the first value among the keys that is a number or a
// parseable numeric string.
func pickNumber(record map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch value := record[key].(type) {
		case float64:
			return value, true
		case string:
			if strings.TrimSpace(value) == "" {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

// pickStringArray returns the first non-empty list of trimmed strings
// among the keys. Non-string entries are dropped.
func pickStringArray(record map[string]any, keys ...string) []string {
	for _, key := range keys {
		list, ok := record[key].([]any)
		if !ok {
			continue
		}
		items := make([]string, 0, len(list))
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					items = append(items, s)
				}
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// itemsCollection locates the raw slot collection: a top-level array, or
// the first present of Items/items/Slots/slots. Absence of all aliases is
// an empty collection, not an error.
func itemsCollection(payload any) []any {
	if list, ok := payload.([]any); ok {
		return list
	}
	record, ok := asRecord(payload)
	if !ok {
		return nil
	}
	for _, key := range []string{"Items", "items", "Slots", "slots"} {
		if list, ok := record[key].([]any); ok {
			return list
		}
	}
	return nil
}

func normalizeID(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

var (
	bareTimeRe  = regexp.MustCompile(`^\d{4}$`)
	shortTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	fullTimeRe  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// combineDateTime builds an ISO-8601 local timestamp from separate date
// and time fields. The time may be four bare digits (HHMM), HH:MM, or
// HH:MM:SS; any other encoding yields nothing.
func combineDateTime(dateValue, timeValue string) (string, bool) {
	date := strings.TrimSpace(dateValue)
	clock := strings.TrimSpace(timeValue)
	if date == "" || clock == "" {
		return "", false
	}

	switch {
	case bareTimeRe.MatchString(clock):
		return date + "T" + clock[:2] + ":" + clock[2:] + ":00", true
	case shortTimeRe.MatchString(clock):
		return date + "T" + clock + ":00", true
	case fullTimeRe.MatchString(clock):
		return date + "T" + clock, true
	}
	return "", false
}
