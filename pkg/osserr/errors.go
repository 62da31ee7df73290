// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package osserr defines the error kinds returned across the client's
// public boundary. Expected failures are typed values; callers classify
// with errors.As and never see panics from this library.
package osserr

import (
	"fmt"
)

// ConfigError reports missing or invalid client configuration
// (credentials, endpoint). It is a caller contract violation and is
// never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("oss: invalid config %s: %s", e.Field, e.Reason)
}

// EncodingError reports a failure to encode a request artifact, such as
// the JSON policy document of a browser-upload token. Fatal for the call.
type EncodingError struct {
	What string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("oss: encode %s: %v", e.What, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// XMLParseError reports malformed XML in a response body. The decoder
// never returns a partial tree alongside this error.
type XMLParseError struct {
	Err error
}

func (e *XMLParseError) Error() string {
	return fmt.Sprintf("oss: parse xml: %v", e.Err)
}

func (e *XMLParseError) Unwrap() error { return e.Err }

// RemoteError is the service's XML error envelope decoded from a
// non-2xx response. When the body is not parseable XML, Code is empty
// and Message carries the raw body text.
type RemoteError struct {
	Code       string
	Message    string
	RequestID  string
	StatusCode int
}

func (e *RemoteError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("oss: remote error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("oss: %s: %s (status %d, request id %s)", e.Code, e.Message, e.StatusCode, e.RequestID)
}

// TransportError wraps a network-level failure. The underlying error is
// propagated unchanged; the core attaches no retry semantics.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oss: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
