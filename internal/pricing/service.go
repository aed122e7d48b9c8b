package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/medcard"
	"github.com/wellport-health/patient-portal-api/internal/observability/metrics"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

// PriceQuote is the resolved payable amount for one consultation.
// Derived per request, never persisted. Amount is always >= 0 and the
// currency is implicitly USD.
type PriceQuote struct {
	ID            string          `json:"id"`
	Amount        float64         `json:"amount"`
	ProcedureCode string          `json:"procedureCode"`
	Description   string          `json:"description,omitempty"`
	PlanName      string          `json:"planName"`
	Mode          scheduling.Mode `json:"mode"`
}

// QuoteService computes price quotes from the procedure catalog and the
// MedCard subscription rules.
type QuoteService struct {
	master        *masterapi.Client
	medcard       *medcard.Client
	cache         *ProductCache
	procedureCode string
	logger        *logging.Logger
	metrics       *metrics.PricingMetrics
}

// NewQuoteService creates a quote service. procedureCode selects the
// consultation procedure whose price anchors every quote.
func NewQuoteService(master *masterapi.Client, medcardClient *medcard.Client, cache *ProductCache, procedureCode string, logger *logging.Logger, m *metrics.PricingMetrics) *QuoteService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QuoteService{
		master:        master,
		medcard:       medcardClient,
		cache:         cache,
		procedureCode: procedureCode,
		logger:        logger,
		metrics:       m,
	}
}

// Quote resolves the payable amount for a plan and booking mode.
//
// The procedure price is required; the subscription product catalog is
// best-effort enrichment. When the catalog cannot be fetched the legacy
// plan-name rules still produce a price, so pricing never fails because
// of MedCard downtime.
func (s *QuoteService) Quote(ctx context.Context, planName string, mode scheduling.Mode) (PriceQuote, error) {
	items, err := s.master.GetProcedures(ctx)
	if err != nil {
		return PriceQuote{}, fmt.Errorf("%w: %s", ErrProcedurePriceUnavailable, err)
	}
	base, err := SelectProcedurePrice(items, s.procedureCode)
	if err != nil {
		return PriceQuote{}, err
	}

	products := s.loadProducts(ctx)

	amount := ResolvePrice(base.Amount, planName, mode, products)

	source := "legacy"
	if _, found := findSubscriptionByPlanName(products, planName); found {
		source = "product"
	}
	s.metrics.ObserveQuote(string(mode), source, amount)

	return PriceQuote{
		ID:            uuid.NewString(),
		Amount:        amount,
		ProcedureCode: base.Code,
		Description:   base.Description,
		PlanName:      planName,
		Mode:          mode,
	}, nil
}

// loadProducts returns the subscription catalog from cache or MedCard.
// Failure means an empty catalog, which downstream treats as "no product
// matched".
func (s *QuoteService) loadProducts(ctx context.Context) []medcard.SubscriptionProduct {
	if products, ok := s.cache.Get(ctx); ok {
		return products
	}
	if s.medcard == nil {
		return nil
	}
	products, err := s.medcard.GetSubscriptionProducts(ctx)
	if err != nil {
		s.logger.Warn("subscription product fetch failed, using legacy plan rules", "error", err)
		return nil
	}
	s.cache.Set(ctx, products)
	return products
}
