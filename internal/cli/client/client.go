package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/zhar97/solar-om-analytics/internal/cli/query"
	"github.com/zhar97/solar-om-analytics/internal/cli/types"
)

// APIClient wraps a Hertz client for the analytics API. It only
// reads: every call is a GET against one of the list endpoints, built
// from a query descriptor.
type APIClient struct {
	client *client.Client
	server string
}

// RequestError is the single failure type surfaced to the list views.
// A transport error, a non-2xx status and a success:false envelope all
// end up here; Message is what the user sees and StatusCode is zero
// when no HTTP response was received.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "request failed: " + e.Message
}

// NewAPIClient creates a client for the given server base URL.
func NewAPIClient(server string) (*APIClient, error) {
	normalized, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{client: c, server: normalized}, nil
}

// normalizeServerURL ensures the server URL has a scheme and no
// trailing path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Server returns the normalized base URL the client talks to.
func (c *APIClient) Server() string {
	return c.server
}

// get performs one GET for a descriptor and returns a copy of the
// body. Non-2xx statuses become RequestErrors carrying the status code
// and, when the server sent an envelope, its error message.
func (c *APIClient) get(ctx context.Context, d query.Descriptor) ([]byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + d.Encode())
	req.Header.Set("Accept", "application/json")

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, &RequestError{Message: err.Error()}
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status < 200 || status >= 300 {
		return nil, &RequestError{StatusCode: status, Message: envelopeError(body)}
	}

	// The body buffer is reused once the response is released.
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// envelopeError pulls the error string out of a failure body, falling
// back to a generic message.
func envelopeError(body []byte) string {
	var env struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := sonic.Unmarshal(body, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Detail != "" {
			return env.Detail
		}
	}
	return "server returned an error status"
}

// ListAnomalies fetches one page of anomalies. The anomaly envelope
// carries no total count, so the page length stands in when the server
// omits it.
func (c *APIClient) ListAnomalies(ctx context.Context, d query.Descriptor) ([]types.Anomaly, int, error) {
	body, err := c.get(ctx, d)
	if err != nil {
		return nil, 0, err
	}

	var env types.AnomalyListEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, 0, &RequestError{Message: "failed to unmarshal response: " + err.Error()}
	}
	if !env.Success {
		return nil, 0, &RequestError{Message: envelopeMessage(env.Error)}
	}

	total := env.Total
	if total == 0 {
		total = len(env.Data)
	}
	return env.Data, total, nil
}

// ListPatterns fetches one page of patterns plus the unpaginated total.
func (c *APIClient) ListPatterns(ctx context.Context, d query.Descriptor) ([]types.Pattern, int, error) {
	body, err := c.get(ctx, d)
	if err != nil {
		return nil, 0, err
	}

	var env types.PatternListEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, 0, &RequestError{Message: "failed to unmarshal response: " + err.Error()}
	}
	if !env.Success {
		return nil, 0, &RequestError{Message: envelopeMessage(env.Error)}
	}

	return env.Patterns, env.Total, nil
}

// ListInsights fetches one page of insights plus the unpaginated total.
func (c *APIClient) ListInsights(ctx context.Context, d query.Descriptor) ([]types.Insight, int, error) {
	body, err := c.get(ctx, d)
	if err != nil {
		return nil, 0, err
	}

	var env types.InsightListEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, 0, &RequestError{Message: "failed to unmarshal response: " + err.Error()}
	}
	if !env.Success {
		return nil, 0, &RequestError{Message: envelopeMessage(env.Error)}
	}

	return env.Insights, env.Total, nil
}

// ListPlants fetches every monitored plant.
func (c *APIClient) ListPlants(ctx context.Context) ([]types.Plant, error) {
	body, err := c.get(ctx, query.Descriptor{Path: endpointPlants})
	if err != nil {
		return nil, err
	}

	var env types.PlantListEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, &RequestError{Message: "failed to unmarshal response: " + err.Error()}
	}
	if !env.Success {
		return nil, &RequestError{Message: envelopeMessage(env.Error)}
	}

	return env.Data, nil
}

func envelopeMessage(errMsg string) string {
	if errMsg != "" {
		return errMsg
	}
	return "the analytics service reported a failure"
}
