// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport executes assembled requests over HTTP. It is the
// only component that performs I/O; everything upstream of it is pure.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lakeward/osskit/pkg/logger"
	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Response is the raw outcome of one executed request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Transport executes a signed request. Implementations must honor the
// context's deadline and cancellation; the core imposes no additional
// timeout semantics and never retries.
type Transport interface {
	Execute(ctx context.Context, req *request.Signed) (*Response, error)
}

// HTTPTransport is the net/http-backed Transport. The zero value is not
// usable; construct with NewHTTP.
type HTTPTransport struct {
	client  *http.Client
	scheme  string
	limiter *rate.Limiter
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the default pooled client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) { t.client = c }
}

// WithScheme sets the URL scheme, "http" or "https".
func WithScheme(scheme string) Option {
	return func(t *HTTPTransport) { t.scheme = scheme }
}

// WithRateLimit caps outgoing requests at rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(t *HTTPTransport) { t.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewHTTP returns a transport with a pooled HTTP client.
func NewHTTP(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		scheme: "https",
		client: &http.Client{
			Timeout: 5 * time.Minute,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Execute sends the signed request and returns the raw response.
// Network failures come back as *osserr.TransportError; non-2xx
// responses are returned as-is for the caller to classify.
func (t *HTTPTransport) Execute(ctx context.Context, s *request.Signed) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &osserr.TransportError{Err: err}
		}
	}

	httpReq, err := t.buildRequest(ctx, s)
	if err != nil {
		return nil, &osserr.TransportError{Err: err}
	}

	log := logger.Ctx(ctx).With().
		Str("request_id", uuid.NewString()).
		Str("method", s.Method).
		Str("host", s.Host).
		Str("path", s.Path).
		Logger()

	start := time.Now()
	httpResp, err := t.client.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		requestsTotal.WithLabelValues(s.Method, "error").Inc()
		log.Debug().Err(err).Dur("elapsed", elapsed).Msg("request failed")
		return nil, &osserr.TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(s.Method, "error").Inc()
		return nil, &osserr.TransportError{Err: err}
	}

	requestsTotal.WithLabelValues(s.Method, strconv.Itoa(httpResp.StatusCode)).Inc()
	requestDuration.WithLabelValues(s.Method).Observe(elapsed.Seconds())
	log.Debug().
		Int("status", httpResp.StatusCode).
		Int("body_bytes", len(body)).
		Dur("elapsed", elapsed).
		Msg("request completed")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// buildRequest converts the signed wire shape into an *http.Request.
// The signed path may carry a sub-resource query; unsigned params are
// appended after it so the path portion stays byte-identical to what
// was signed.
func (t *HTTPTransport) buildRequest(ctx context.Context, s *request.Signed) (*http.Request, error) {
	pathPart := s.Path
	query := ""
	if i := strings.IndexByte(s.Path, '?'); i >= 0 {
		pathPart, query = s.Path[:i], s.Path[i+1:]
	}
	if len(s.Params) > 0 {
		values := url.Values{}
		for _, p := range s.Params {
			values.Add(p.Key, p.Value)
		}
		if query != "" {
			query += "&"
		}
		query += values.Encode()
	}

	u := &url.URL{
		Scheme:   t.scheme,
		Host:     s.Host,
		Path:     pathPart,
		RawQuery: query,
	}

	httpReq, err := http.NewRequestWithContext(ctx, s.Method, u.String(), bytes.NewReader(s.Body))
	if err != nil {
		return nil, err
	}

	for _, h := range s.Headers {
		switch strings.ToLower(h.Name) {
		case "host":
			httpReq.Host = h.Value
		case "content-length":
			// net/http derives it from the body reader
		default:
			httpReq.Header.Set(h.Name, h.Value)
		}
	}
	return httpReq, nil
}
