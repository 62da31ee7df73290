// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/url"
	"strconv"
	"time"

	"github.com/lakeward/osskit/pkg/ossconsts"
	"github.com/lakeward/osskit/pkg/request"
	"github.com/lakeward/osskit/pkg/signer"
)

// SignRTMPURL builds a signed RTMP push URL for a live channel, valid
// until expiresAt. playlistName may be empty when the channel does not
// record an HLS playlist.
func (c *Client) SignRTMPURL(bucket, channel, playlistName string, expiresAt time.Time) string {
	d := request.New("GET", bucket, channel).
		SetExpires(expiresAt.Unix())
	if playlistName != "" {
		d.AddParam("playlistName", playlistName)
	}

	sig := signer.Sign([]byte(signer.StreamingStringToSign(d)), c.creds.AccessKeySecret)

	query := url.Values{}
	query.Set(ossconsts.QueryAccessKeyID, c.creds.AccessKeyID)
	query.Set(ossconsts.QueryExpires, strconv.FormatInt(expiresAt.Unix(), 10))
	query.Set(ossconsts.QuerySignature, sig)
	for _, p := range d.Params {
		query.Set(p.Key, p.Value)
	}

	host := request.HostFor("", bucket, c.cfg.Endpoint)
	return "rtmp://" + host + "/live/" + channel + "?" + query.Encode()
}

// PostPolicyToken builds a browser-direct-upload token for the bucket,
// scoped to the key prefix dir and valid for validFor. callback may be
// nil.
func (c *Client) PostPolicyToken(bucket, dir string, validFor time.Duration, callback *signer.Callback) (*signer.Token, error) {
	host := c.cfg.Scheme + "://" + request.HostFor("", bucket, c.cfg.Endpoint)
	expireAt := c.now().Add(validFor)
	return signer.NewPostPolicyToken(c.creds, host, dir, expireAt, callback)
}
