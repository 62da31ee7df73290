// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package signer

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostPolicyToken(t *testing.T) {
	t.Parallel()

	expireAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	token, err := NewPostPolicyToken(testCreds, "https://b.example.com", "uploads/", expireAt, nil)
	require.NoError(t, err)

	assert.Equal(t, "KEY", token.AccessKeyID)
	assert.Equal(t, "https://b.example.com", token.Host)
	assert.Equal(t, "uploads/", token.Dir)
	assert.Equal(t, expireAt.Unix(), token.Expire)
	assert.Empty(t, token.Callback)

	// policy decodes back to the document we signed
	raw, err := base64.StdEncoding.DecodeString(token.Policy)
	require.NoError(t, err)

	var doc PolicyDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2030-01-01T12:00:00Z", doc.Expiration)
	require.Len(t, doc.Conditions, 1)
	assert.Equal(t, []any{"starts-with", "$key", "uploads/"}, doc.Conditions[0])

	// signature is the signed base64 policy
	assert.Equal(t, SignPolicy(token.Policy, testCreds.AccessKeySecret), token.Signature)
}

func TestNewPostPolicyTokenCallback(t *testing.T) {
	t.Parallel()

	cb := &Callback{
		URL:      "https://app.example.com/oss/callback",
		Body:     "filename=${object}&size=${size}",
		BodyType: "application/x-www-form-urlencoded",
	}

	token, err := NewPostPolicyToken(testCreds, "https://b.example.com", "media/", time.Now().Add(time.Hour), cb)
	require.NoError(t, err)
	require.NotEmpty(t, token.Callback)

	raw, err := base64.StdEncoding.DecodeString(token.Callback)
	require.NoError(t, err)

	var decoded Callback
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *cb, decoded)
}

func TestTokenJSONShape(t *testing.T) {
	t.Parallel()

	token, err := NewPostPolicyToken(testCreds, "https://b.example.com", "d/", time.Unix(1893456000, 0), nil)
	require.NoError(t, err)

	raw, err := json.Marshal(token)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"accessid", "host", "policy", "signature", "expire", "dir", "callback"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, float64(1893456000), fields["expire"])
}
