// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/lakeward/osskit/pkg/signer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignRTMPURL(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, &mockTransport{})
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	got := c.SignRTMPURL("b", "chan", "play.m3u8", expires)

	// Pinned vector over the streaming canonical string
	// "1893456000\nplaylistName:play.m3u8\n/b/chan".
	assert.Equal(t,
		"rtmp://b.oss-cn-hangzhou.aliyuncs.com/live/chan"+
			"?Expires=1893456000&OSSAccessKeyId=KEY"+
			"&Signature=mffWvDjantnUa0YVbnMWQ%2FI2v8Q%3D&playlistName=play.m3u8",
		got)
}

func TestSignRTMPURLWithoutPlaylist(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, &mockTransport{})
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	got := c.SignRTMPURL("b", "chan", "", expires)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "rtmp", u.Scheme)
	assert.Equal(t, "/live/chan", u.Path)

	q := u.Query()
	assert.Equal(t, "KEY", q.Get("OSSAccessKeyId"))
	assert.Equal(t, "1893456000", q.Get("Expires"))
	assert.NotEmpty(t, q.Get("Signature"))
	assert.NotContains(t, q, "playlistName")
}

func TestPostPolicyToken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, &mockTransport{})

	tok, err := c.PostPolicyToken("b", "uploads/", time.Hour, nil)
	require.NoError(t, err)

	assert.Equal(t, "KEY", tok.AccessKeyID)
	assert.Equal(t, "https://b.oss-cn-hangzhou.aliyuncs.com", tok.Host)
	assert.Equal(t, "uploads/", tok.Dir)
	assert.NotEmpty(t, tok.Signature)

	// validFor is anchored on the injected clock
	wantExpire := time.Date(2030, 1, 1, 1, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, wantExpire, tok.Expire)

	// the policy round-trips to a document scoped to dir
	raw, err := base64.StdEncoding.DecodeString(tok.Policy)
	require.NoError(t, err)
	var doc signer.PolicyDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Conditions, 1)
	assert.Equal(t, []any{"starts-with", "$key", "uploads/"}, doc.Conditions[0])
}
