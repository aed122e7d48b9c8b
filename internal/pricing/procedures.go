package pricing

import (
	"errors"
	"strings"

	"github.com/wellport-health/patient-portal-api/internal/masterapi"
)

// ErrProcedurePriceUnavailable reports that no active procedure with a
// usable price could be found.
var ErrProcedurePriceUnavailable = errors.New("pricing: procedure price unavailable")

// ProcedurePrice is the base consultation price before any plan rules.
type ProcedurePrice struct {
	Amount      float64
	Code        string
	Description string
}

// SelectProcedurePrice picks the billable procedure for the configured
// code. Deleted items are ignored; the code is matched against both the
// procedure code and the service item id. When no item matches, the first
// active item is used.
func SelectProcedurePrice(items []masterapi.ProcedureItem, procedureCode string) (ProcedurePrice, error) {
	wantCode := normalizeCode(procedureCode)

	active := make([]masterapi.ProcedureItem, 0, len(items))
	for _, item := range items {
		if !item.IsDeleted {
			active = append(active, item)
		}
	}
	if len(active) == 0 {
		return ProcedurePrice{}, ErrProcedurePriceUnavailable
	}

	selected := active[0]
	if wantCode != "" {
		for _, item := range active {
			if normalizeCode(item.Code) == wantCode || normalizeCode(item.ServiceItemID) == wantCode {
				selected = item
				break
			}
		}
	}

	amount, ok := toNumber(selected.CurrentPrice)
	if !ok {
		amount, ok = toNumber(selected.CurrentPriceFacility)
	}
	if !ok {
		return ProcedurePrice{}, ErrProcedurePriceUnavailable
	}

	code := normalizeCode(selected.Code)
	if code == "" {
		code = normalizeCode(selected.ServiceItemID)
	}
	if code == "" {
		code = wantCode
	}

	return ProcedurePrice{Amount: amount, Code: code, Description: selected.Description}, nil
}

func normalizeCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
