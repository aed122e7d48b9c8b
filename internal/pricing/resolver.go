// Package pricing resolves the payable amount of a consultation against
// a MedCard subscription plan's discount rules.
package pricing

import (
	"strconv"
	"strings"

	"github.com/wellport-health/patient-portal-api/internal/medcard"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
)

const (
	attrUnlimitedOnlineConsultations = "unlimited_online_consultations"
	attrInPersonDiscount             = "in_person_consultations_discount"
)

// ResolvePrice computes the payable amount for a consultation.
//
// A matched subscription product's attributes drive the decision. When no
// product matches (or the catalog could not be fetched and products is
// empty), the legacy hardcoded plan rules apply: "medcard black" and
// "medcard premium" include unlimited online consultations, and premium
// carries a 75 in-person discount. Both rule paths are kept deliberately;
// the attribute path always wins when a product matches.
//
// The result is never negative and never an error.
func ResolvePrice(basePrice float64, planName string, mode scheduling.Mode, products []medcard.SubscriptionProduct) float64 {
	normalizedPlan := normalizeText(planName)
	isBlackOrPremium := normalizedPlan == "medcard black" || normalizedPlan == "medcard premium"

	matched, found := findSubscriptionByPlanName(products, planName)

	unlimitedOnline := isBlackOrPremium
	if found {
		unlimitedOnline = toBool(findAttributeValue(matched, attrUnlimitedOnlineConsultations))
	}

	if mode == scheduling.ModeTelemedicine && unlimitedOnline {
		return 0
	}

	inPersonDiscount := 0.0
	if found {
		if value, ok := toNumber(findAttributeValue(matched, attrInPersonDiscount)); ok {
			inPersonDiscount = value
		}
	} else if normalizedPlan == "medcard premium" {
		inPersonDiscount = 75
	}

	if mode == scheduling.ModeInPerson && inPersonDiscount > 0 {
		if discounted := basePrice - inPersonDiscount; discounted > 0 {
			return discounted
		}
		return 0
	}

	return basePrice
}

// findSubscriptionByPlanName matches a plan against the product catalog:
// exact normalized-name match first, then a substring match in either
// direction.
func findSubscriptionByPlanName(products []medcard.SubscriptionProduct, planName string) (medcard.SubscriptionProduct, bool) {
	normalizedPlan := normalizeText(planName)
	if normalizedPlan == "" {
		return medcard.SubscriptionProduct{}, false
	}

	for _, product := range products {
		if normalizeText(product.Name) == normalizedPlan {
			return product, true
		}
	}
	for _, product := range products {
		name := normalizeText(product.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, normalizedPlan) || strings.Contains(normalizedPlan, name) {
			return product, true
		}
	}
	return medcard.SubscriptionProduct{}, false
}

// findAttributeValue reads an attribute by case/whitespace-insensitive
// name. Missing attributes yield nil.
func findAttributeValue(product medcard.SubscriptionProduct, attributeName string) any {
	target := normalizeText(attributeName)
	for _, attr := range product.Attributes {
		if normalizeText(attr.Name) == target {
			return attr.Value
		}
	}
	return nil
}

func normalizeText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// toBool coerces loosely typed attribute values. Native booleans pass
// through, numbers are truthy when non-zero, and "true"/"1"/"yes"
// strings count as true. Anything else is false.
func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		normalized := normalizeText(v)
		return normalized == "true" || normalized == "1" || normalized == "yes"
	}
	return false
}

// toNumber coerces native numbers and numeric strings; everything else
// is treated as absent.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
