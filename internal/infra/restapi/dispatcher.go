package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"example.com/storeman/internal/infra/metrics"
)

const requestIDHeader = "X-Request-ID"

// Response is the settled outcome of a successful call. JSON is nil for
// DELETE responses and for bodies that are empty or not valid JSON.
type Response struct {
	StatusCode int
	Raw        []byte
	JSON       json.RawMessage
}

// Decode unmarshals the JSON payload into dst. A missing payload leaves
// dst untouched.
func (r *Response) Decode(dst any) error {
	if len(r.JSON) == 0 {
		return nil
	}
	return json.Unmarshal(r.JSON, dst)
}

type Dispatcher struct {
	client  *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

type DispatcherOption func(*Dispatcher)

func WithHTTPClient(c *http.Client) DispatcherOption {
	return func(d *Dispatcher) { d.client = c }
}

func WithLogger(l *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.log = l }
}

func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher returns a Dispatcher. The default HTTP client has no
// timeout; cancellation comes from the caller's context.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		client: &http.Client{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send performs one HTTP call. body is JSON-encoded when non-nil. Statuses
// of 400 and above return *HTTPError, network failures *TransportError.
func (d *Dispatcher) Send(ctx context.Context, method, rawURL string, body any, headers map[string]string) (*Response, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, rawURL, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	resource := resourceOf(req.URL)
	start := time.Now()
	log := d.log.With(
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.String("request_id", req.Header.Get(requestIDHeader)),
	)

	resp, err := d.client.Do(req)
	if err != nil {
		d.metrics.ObserveAPI(method, resource, metrics.OutcomeTransport, time.Since(start))
		log.Warn("api request failed", zap.Error(err))
		return nil, &TransportError{Method: method, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		d.metrics.ObserveAPI(method, resource, metrics.OutcomeTransport, time.Since(start))
		return nil, &TransportError{Method: method, URL: rawURL, Err: err}
	}

	if resp.StatusCode >= 400 {
		d.metrics.ObserveAPI(method, resource, metrics.OutcomeHTTPError, time.Since(start))
		log.Debug("api request rejected", zap.Int("status", resp.StatusCode))
		return nil, &HTTPError{Method: method, URL: rawURL, StatusCode: resp.StatusCode, Payload: raw}
	}

	d.metrics.ObserveAPI(method, resource, metrics.OutcomeOK, time.Since(start))
	log.Debug("api request done", zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))

	out := &Response{StatusCode: resp.StatusCode, Raw: raw}
	if method != http.MethodDelete && json.Valid(raw) {
		out.JSON = json.RawMessage(raw)
	}
	return out, nil
}

// resourceOf reduces a URL path to a low-cardinality label: the path with
// every id segment replaced, e.g. /api/Stores/:id/rel_Products.
func resourceOf(u *url.URL) string {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 1; i < len(parts); i++ {
		if parts[i-1] == storesPath || parts[i-1] == productsPath {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
