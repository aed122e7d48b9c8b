package medcard

// SubscriptionAttribute is a single keyed attribute on a subscription
// product. Values are loosely typed upstream (booleans, numbers, or
// their string encodings).
type SubscriptionAttribute struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// SubscriptionProduct is a named membership plan with keyed attributes
// governing discounts.
type SubscriptionProduct struct {
	Name       string                  `json:"name"`
	Attributes []SubscriptionAttribute `json:"attributes"`
}

// ParseSubscriptionProducts extracts subscription products from a decoded
// MedCard payload. Items that are not objects and attributes without a
// string name contribute nothing; the function never fails.
func ParseSubscriptionProducts(payload any) []SubscriptionProduct {
	record, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	data, ok := record["data"].([]any)
	if !ok {
		return nil
	}

	products := make([]SubscriptionProduct, 0, len(data))
	for _, item := range data {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		product := SubscriptionProduct{}
		if name, ok := rec["name"].(string); ok {
			product.Name = name
		}
		if attrs, ok := rec["attributes"].([]any); ok {
			for _, attr := range attrs {
				attrRec, ok := attr.(map[string]any)
				if !ok {
					continue
				}
				name, _ := attrRec["name"].(string)
				product.Attributes = append(product.Attributes, SubscriptionAttribute{
					Name:  name,
					Value: attrRec["value"],
				})
			}
		}
		products = append(products, product)
	}
	return products
}
