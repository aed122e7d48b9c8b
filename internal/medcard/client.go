// Package medcard is the HTTP client for the MedCard membership API. It
// may live on a different base URL than the master scheduling API and is
// always bearer-token authenticated. Error payloads come in several
// shapes; the client flattens them into plain errors.
package medcard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wellport-health/patient-portal-api/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 15 * time.Second

// Client wraps REST calls against the MedCard API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	logger      *logging.Logger
	tracer      trace.Tracer
}

// NewClient constructs a MedCard client. bearerToken is required; every
// endpoint is authenticated.
func NewClient(baseURL, bearerToken string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: strings.TrimSpace(bearerToken),
		logger:      logger,
		tracer:      otel.Tracer("portal.internal.medcard"),
	}
}

// GetSubscriptionProducts fetches the membership plan catalog.
func (c *Client) GetSubscriptionProducts(ctx context.Context) ([]SubscriptionProduct, error) {
	payload, err := c.doJSON(ctx, http.MethodGet, "products/subscriptions", nil)
	if err != nil {
		return nil, fmt.Errorf("get subscription products: %w", err)
	}
	return ParseSubscriptionProducts(payload), nil
}

// RequestPaymentLink asks MedCard to issue a hosted payment link. The
// payload is passed through untouched; card data itself never transits
// this service.
func (c *Client) RequestPaymentLink(ctx context.Context, payload map[string]any) (map[string]any, error) {
	out, err := c.doJSON(ctx, http.MethodPost, "payment/requestPaymentLink", payload)
	if err != nil {
		return nil, fmt.Errorf("request payment link: %w", err)
	}
	if record, ok := out.(map[string]any); ok {
		return record, nil
	}
	return map[string]any{}, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (any, error) {
	if c.bearerToken == "" {
		return nil, errors.New("missing MedCard bearer token")
	}

	endpoint := c.baseURL + "/medcard/" + strings.TrimLeft(path, "/")

	ctx, span := c.tracer.Start(ctx, "medcard."+method+" "+path)
	defer span.End()

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed any
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			parsed = string(respBody)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("MedCard API non-2xx response", "status", resp.StatusCode, "path", path)
		return nil, errors.New(errorMessage(parsed, resp.StatusCode))
	}

	// Some endpoints report failure inside a 2xx envelope.
	if record, ok := parsed.(map[string]any); ok {
		if success, ok := record["success"].(bool); ok && !success {
			if msg, ok := record["message"].(string); ok && strings.TrimSpace(msg) != "" {
				return nil, errors.New(msg)
			}
			return nil, errors.New("MedCard request reported failure")
		}
	}

	return parsed, nil
}

// errorMessage extracts a human-readable message from an error payload,
// trying detail, message, and error fields before falling back to the
// raw body or the HTTP status.
func errorMessage(parsed any, status int) string {
	if record, ok := parsed.(map[string]any); ok {
		for _, key := range []string{"detail", "message", "error"} {
			if msg, ok := record[key].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}
	if msg, ok := parsed.(string); ok && strings.TrimSpace(msg) != "" {
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return msg
	}
	return fmt.Sprintf("MedCard request failed (%d)", status)
}
