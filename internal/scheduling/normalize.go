package scheduling

// NormalizeSlots maps a decoded availability payload onto canonical
// slots. Items with a positive appointment count are already booked and
// are dropped outright; everything downstream assumes an emitted slot is
// actually bookable. A malformed item contributes zero slots and is never
// an error.
func NormalizeSlots(payload any) []AvailabilitySlot {
	raw := itemsCollection(payload)
	slots := make([]AvailabilitySlot, 0, len(raw))
	for _, item := range raw {
		slots = append(slots, mapSlotItem(item)...)
	}
	return slots
}

// mapSlotItem expands one raw item into zero or more slots. An item
// listing N resource identifiers fans out into N slots sharing the same
// start timestamp.
func mapSlotItem(item any) []AvailabilitySlot {
	record, ok := asRecord(item)
	if !ok {
		return nil
	}

	if count, ok := pickNumber(record, "appointmentCount", "AppointmentCount"); ok && count > 0 {
		return nil
	}

	resourceIDs := pickStringArray(record, "resourceIds", "ResourceIds")
	resourceNames := pickStringArray(record, "resourceNames", "ResourceNames")
	if len(resourceIDs) == 0 {
		if id, ok := pickString(record, "resourceId", "ResourceId"); ok {
			resourceIDs = append(resourceIDs, id)
		}
	}
	if len(resourceIDs) == 0 {
		for _, key := range []string{"resource", "Resource"} {
			if nested, ok := asRecord(record[key]); ok {
				if id, ok := pickString(nested, "id", "Id"); ok {
					resourceIDs = append(resourceIDs, id)
					break
				}
			}
		}
	}

	startDateTime, ok := pickString(record,
		"appointmentDateTime", "AppointmentDateTime",
		"startDateTime", "StartDateTime",
		"dateTime", "DateTime",
		"start", "Start",
	)
	if !ok {
		dateValue, hasDate := pickString(record, "date", "Date")
		timeValue, hasTime := pickString(record, "time", "Time", "startTime", "StartTime")
		if hasDate && hasTime {
			startDateTime, ok = combineDateTime(dateValue, timeValue)
		}
	}

	if len(resourceIDs) == 0 || !ok {
		return nil
	}

	slots := make([]AvailabilitySlot, 0, len(resourceIDs))
	for i, resourceID := range resourceIDs {
		// Name lists shorter than the id list reuse the first name as a
		// best-effort label. Lossy upstream behavior, kept as-is.
		name := ""
		if i < len(resourceNames) {
			name = resourceNames[i]
		} else if len(resourceNames) > 0 {
			name = resourceNames[0]
		}
		slots = append(slots, AvailabilitySlot{
			ResourceID:    normalizeID(resourceID),
			StartDateTime: startDateTime,
			ResourceName:  name,
		})
	}
	return slots
}
