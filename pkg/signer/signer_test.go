// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package signer

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{AccessKeyID: "KEY", AccessKeySecret: "SECRET"}

func TestSign(t *testing.T) {
	t.Parallel()

	// Pinned vectors: any change to the signing primitive is a
	// breaking change.
	tests := []struct {
		name     string
		message  string
		secret   string
		expected string
	}{
		{
			name:     "basic",
			message:  "hello",
			secret:   "world",
			expected: "Wgxn2SLeDKU+MGJQ5oWMH20sSUM=",
		},
		{
			name:     "different secret changes output",
			message:  "hello",
			secret:   "world2",
			expected: "9V+ZlDpEvzvJxdE+Jnd84QtXTuE=",
		},
		{
			name:     "different message changes output",
			message:  "hello2",
			secret:   "world",
			expected: "QlPfW70+W8h2QBkyDlDUoRaotSo=",
		},
		{
			name:     "empty message",
			message:  "",
			secret:   "k",
			expected: "OoSiGO5mZSCbtw6EUl3YN2RaGWU=",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sign([]byte(tt.message), tt.secret)
			assert.Equal(t, tt.expected, got)

			// deterministic
			assert.Equal(t, got, Sign([]byte(tt.message), tt.secret))

			// base64 of a 20-byte SHA1 mac
			raw, err := base64.StdEncoding.DecodeString(got)
			require.NoError(t, err)
			assert.Len(t, raw, 20)
		})
	}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	d := request.New("GET", "b", "o.txt")
	headers := []request.Header{
		{Name: "Date", Value: "Tue, 01 Jan 2030 00:00:00 GMT"},
		{Name: "Content-Type", Value: "text/plain"},
	}

	assert.Equal(t, "OSS KEY:kXt5KgPqsjkiut90UX2381ihKcY=", Authorize(d, headers, testCreds))
}

func TestAssembleGolden(t *testing.T) {
	t.Parallel()

	// End-to-end vector pinned against the canonicalization rules:
	// GET /b/o.txt, empty body, fixed clock. A change to this value is
	// a breaking change to request signing.
	d := request.New("GET", "b", "o.txt")
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	signed, err := Assemble(d, "oss-cn-hangzhou.aliyuncs.com", testCreds, now)
	require.NoError(t, err)

	assert.Equal(t, "GET", signed.Method)
	assert.Equal(t, "b.oss-cn-hangzhou.aliyuncs.com", signed.Host)
	assert.Equal(t, "/o.txt", signed.Path)

	require.NotEmpty(t, signed.Headers)
	assert.Equal(t, "Authorization", signed.Headers[0].Name)
	assert.Equal(t, "OSS KEY:kXt5KgPqsjkiut90UX2381ihKcY=", signed.Headers[0].Value)
	assert.Equal(t, "Date", signed.Headers[1].Name)
	assert.Equal(t, "Tue, 01 Jan 2030 00:00:00 GMT", signed.Headers[1].Value)
}

func TestAssembleHeaders(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("body produces md5 and length", func(t *testing.T) {
		t.Parallel()

		d := request.New("PUT", "b", "o.bin").SetBody([]byte("hello world"))
		signed, err := Assemble(d, "example.com", testCreds, now)
		require.NoError(t, err)

		assert.Equal(t, "XrY7u+Ae7tCTyyK7j1rNww==", request.HeaderValue(signed.Headers, "Content-MD5"))
		assert.Equal(t, "11", request.HeaderValue(signed.Headers, "Content-Length"))
	})

	t.Run("empty body omits md5", func(t *testing.T) {
		t.Parallel()

		d := request.New("GET", "b", "o.bin")
		signed, err := Assemble(d, "example.com", testCreds, now)
		require.NoError(t, err)

		assert.False(t, request.HasHeader(signed.Headers, "Content-MD5"))
		assert.Equal(t, "0", request.HeaderValue(signed.Headers, "Content-Length"))
	})

	t.Run("caller content type wins over inference", func(t *testing.T) {
		t.Parallel()

		d := request.New("PUT", "b", "o.txt").
			AddHeader("content-type", "application/x-custom")
		signed, err := Assemble(d, "example.com", testCreds, now)
		require.NoError(t, err)

		assert.Equal(t, "application/x-custom", request.HeaderValue(signed.Headers, "Content-Type"))
	})

	t.Run("content type inferred from extension", func(t *testing.T) {
		t.Parallel()

		d := request.New("PUT", "b", "o.json")
		signed, err := Assemble(d, "example.com", testCreds, now)
		require.NoError(t, err)

		assert.Equal(t, "application/json", request.HeaderValue(signed.Headers, "Content-Type"))
	})

	t.Run("explicit host override", func(t *testing.T) {
		t.Parallel()

		d := request.New("GET", "b", "o").SetHost("alt.example.com")
		signed, err := Assemble(d, "example.com", testCreds, now)
		require.NoError(t, err)

		assert.Equal(t, "alt.example.com", signed.Host)
		assert.Equal(t, "alt.example.com", request.HeaderValue(signed.Headers, "Host"))
	})
}

func TestAssembleConfigErrors(t *testing.T) {
	t.Parallel()

	now := time.Now()
	d := request.New("GET", "b", "o")

	tests := []struct {
		name     string
		endpoint string
		creds    Credentials
	}{
		{
			name:     "missing endpoint",
			endpoint: "",
			creds:    testCreds,
		},
		{
			name:     "missing access key id",
			endpoint: "example.com",
			creds:    Credentials{AccessKeySecret: "s"},
		},
		{
			name:     "missing secret",
			endpoint: "example.com",
			creds:    Credentials{AccessKeyID: "k"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Assemble(d, tt.endpoint, tt.creds, now)
			var cfgErr *osserr.ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestAssembleSignsOSSHeadersInOrder(t *testing.T) {
	t.Parallel()

	// The canonical string takes x-oss-* headers in the order the
	// caller added them; reordering changes the signature.
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	first := request.New("PUT", "b", "o").
		AddHeader("x-oss-meta-a", "1").
		AddHeader("x-oss-meta-b", "2")
	second := request.New("PUT", "b", "o").
		AddHeader("x-oss-meta-b", "2").
		AddHeader("x-oss-meta-a", "1")

	s1, err := Assemble(first, "example.com", testCreds, now)
	require.NoError(t, err)
	s2, err := Assemble(second, "example.com", testCreds, now)
	require.NoError(t, err)

	assert.NotEqual(t,
		request.HeaderValue(s1.Headers, "Authorization"),
		request.HeaderValue(s2.Headers, "Authorization"))
}
