package scheduling

import "sort"

// DedupeAndSort drops later duplicates of the same
// (resourceID, startDateTime) pair and orders slots ascending by start
// time. First occurrence wins; duplicates arise naturally from fan-out
// when raw items overlap.
func DedupeAndSort(slots []AvailabilitySlot) []AvailabilitySlot {
	seen := make(map[string]struct{}, len(slots))
	unique := make([]AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		key := normalizeID(slot.ResourceID) + "|" + slot.StartDateTime
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, slot)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].StartDateTime < unique[j].StartDateTime
	})
	return unique
}

// GroupByResource partitions slots by normalized resource id. A resource
// with no remaining slots is simply absent from the map; callers treat
// "not in map" as "no availability".
func GroupByResource(slots []AvailabilitySlot) map[string][]AvailabilitySlot {
	groups := make(map[string][]AvailabilitySlot)
	for _, slot := range slots {
		id := normalizeID(slot.ResourceID)
		groups[id] = append(groups[id], slot)
	}
	return groups
}
