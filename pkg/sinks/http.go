package sinks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Adda-Baaj/swapi-client/pkg/httpclient"
	"github.com/go-resty/resty/v2"
)

const defaultHTTPTimeout = 5 * time.Second

// httpSink posts each record as JSON. The Idempotency-Key header carries the
// record version so a receiver can drop repeats.
type httpSink struct {
	name    string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
}

func newHTTPSink(name string, cfg HTTPConfig) *httpSink {
	method := strings.ToUpper(strings.TrimSpace(cfg.Method))
	if method == "" {
		method = http.MethodPost
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &httpSink{
		name:    name,
		method:  method,
		url:     cfg.URL,
		headers: cfg.Headers,
		client:  httpclient.NewRestyHTTPClient(timeout),
	}
}

func (h *httpSink) Name() string { return h.name }

func (h *httpSink) Deliver(ctx context.Context, evt Event) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(h.headers).
		SetHeader("Content-Type", "application/json").
		SetHeader("Idempotency-Key", evt.Version).
		SetBody(evt).
		Execute(h.method, h.url)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		body := resp.Body()
		if len(body) > 256 {
			body = body[:256]
		}
		return fmt.Errorf("http status %d: %s", resp.StatusCode(), strings.TrimSpace(string(body)))
	}
	return nil
}
