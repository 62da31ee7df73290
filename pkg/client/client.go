// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package client exposes the typed OSS operations. Every method builds
// a request descriptor, hands it to the signing engine, executes it on
// the transport, and classifies the response. The client holds no
// per-call state and is safe for concurrent use.
package client

import (
	"context"
	"time"

	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/ossxml"
	"github.com/lakeward/osskit/pkg/request"
	"github.com/lakeward/osskit/pkg/signer"
	"github.com/lakeward/osskit/pkg/transport"
)

// Config is the immutable client configuration. All three fields are
// required; Scheme defaults to "https".
type Config struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Scheme          string
}

// Validate reports the first missing required field as a ConfigError.
func (c Config) Validate() error {
	switch {
	case c.Endpoint == "":
		return &osserr.ConfigError{Field: "endpoint", Reason: "must not be empty"}
	case c.AccessKeyID == "":
		return &osserr.ConfigError{Field: "access_key_id", Reason: "must not be empty"}
	case c.AccessKeySecret == "":
		return &osserr.ConfigError{Field: "access_key_secret", Reason: "must not be empty"}
	case c.Scheme != "" && c.Scheme != "http" && c.Scheme != "https":
		return &osserr.ConfigError{Field: "scheme", Reason: "must be http or https"}
	}
	return nil
}

// Client issues OSS operations against one endpoint with one key pair.
type Client struct {
	cfg       Config
	creds     signer.Credentials
	transport transport.Transport
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default HTTP transport. Used by tests and
// by callers that need custom pooling or rate limits.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithClock replaces the signing clock. Signing is time-bound; a fixed
// clock makes assembled requests reproducible.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New validates cfg and returns a ready client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}

	c := &Client{
		cfg:   cfg,
		creds: signer.Credentials{AccessKeyID: cfg.AccessKeyID, AccessKeySecret: cfg.AccessKeySecret},
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.transport == nil {
		c.transport = transport.NewHTTP(transport.WithScheme(cfg.Scheme))
	}
	return c, nil
}

// do assembles, executes, and classifies one request. Non-2xx responses
// come back as *osserr.RemoteError.
func (c *Client) do(ctx context.Context, d *request.Descriptor) (*transport.Response, error) {
	signed, err := signer.Assemble(d, c.cfg.Endpoint, c.creds, c.now())
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Execute(ctx, signed)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, Classify(resp)
	}
	return resp, nil
}

// doXML runs do and decodes the response body.
func (c *Client) doXML(ctx context.Context, d *request.Descriptor) (*ossxml.Element, error) {
	resp, err := c.do(ctx, d)
	if err != nil {
		return nil, err
	}
	return ossxml.Decode(resp.Body)
}

// Classify turns a non-2xx response into a RemoteError by decoding the
// service's XML error envelope. A body that is not parseable XML falls
// back to a generic error carrying the status code and raw body text.
func Classify(resp *transport.Response) error {
	re := &osserr.RemoteError{StatusCode: resp.StatusCode}

	doc, err := ossxml.Decode(resp.Body)
	if err != nil {
		re.Message = string(resp.Body)
		return re
	}
	envelope, ok := doc.Child("Error")
	if !ok {
		re.Message = string(resp.Body)
		return re
	}
	re.Code = envelope.Text("Code")
	re.Message = envelope.Text("Message")
	re.RequestID = envelope.Text("RequestId")
	return re
}
