// Package masterapi is the HTTP client for the master scheduling API:
// the provider catalog, appointment availability, and procedure price
// endpoints. Auth headers are injected on every request; callers never
// deal with transport concerns.
package masterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wellport-health/patient-portal-api/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 15 * time.Second

// Client wraps REST calls against the master scheduling API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	bearerToken string
	logger      *logging.Logger
	tracer      trace.Tracer
}

// NewClient constructs a master API client.
func NewClient(baseURL, apiKey, bearerToken string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		bearerToken: bearerToken,
		logger:      logger,
		tracer:      otel.Tracer("portal.internal.masterapi"),
	}
}

// GetResourcesByLocation lists bookable providers matching the filters.
func (c *Client) GetResourcesByLocation(ctx context.Context, filters ResourceFilters) ([]ResourceItem, error) {
	q := url.Values{}
	setIfPresent(q, "city", filters.City)
	setIfPresent(q, "state", filters.State)
	setIfPresent(q, "address", filters.Address)
	setIfPresent(q, "locationId", filters.LocationID)
	setIfPresent(q, "resourceId", filters.ResourceID)
	if filters.Top > 0 {
		q.Set("top", strconv.Itoa(filters.Top))
	}

	path := "/resources/by-location"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var wrapped struct {
		Items []ResourceItem `json:"items"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &wrapped); err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}
	return wrapped.Items, nil
}

// GetAvailability posts an availability request and returns the decoded
// payload untyped. The response shape varies across upstream versions, so
// interpretation is left to the slot normalizer.
func (c *Client) GetAvailability(ctx context.Context, req AvailabilityRequest) (any, error) {
	var payload any
	if err := c.doJSON(ctx, http.MethodPost, "/appointments/availability", req, &payload); err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	return payload, nil
}

// GetProcedures lists billable procedures with their current prices.
func (c *Client) GetProcedures(ctx context.Context) ([]ProcedureItem, error) {
	var wrapped struct {
		Items []ProcedureItem `json:"items"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/master/procedures", nil, &wrapped); err != nil {
		return nil, fmt.Errorf("get procedures: %w", err)
	}
	return wrapped.Items, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + path

	ctx, span := c.tracer.Start(ctx, "masterapi."+method+" "+strings.SplitN(path, "?", 2)[0])
	defer span.End()

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Warn("master API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("master API returned %d: %s", resp.StatusCode, msg)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setIfPresent(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}
