// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package signer

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/lakeward/osskit/pkg/osserr"
)

// PolicyDocument is the browser-direct-upload policy: a deadline plus
// the conditions the upload form must satisfy.
type PolicyDocument struct {
	Expiration string  `json:"expiration"`
	Conditions [][]any `json:"conditions"`
}

// Callback describes the server callback OSS fires after a successful
// browser upload.
type Callback struct {
	URL      string `json:"callbackUrl"`
	Body     string `json:"callbackBody"`
	BodyType string `json:"callbackBodyType,omitempty"`
}

// Token is the payload handed to a browser for a time-boxed direct
// upload without exposing the secret key.
type Token struct {
	AccessKeyID string `json:"accessid"`
	Host        string `json:"host"`
	Policy      string `json:"policy"`
	Signature   string `json:"signature"`
	Expire      int64  `json:"expire"`
	Dir         string `json:"dir"`
	Callback    string `json:"callback"`
}

// SignPolicy signs a base64-encoded policy document with the account
// secret, reusing the request signing primitive.
func SignPolicy(policyBase64, secret string) string {
	return Sign([]byte(policyBase64), secret)
}

const policyTimeFormat = "2006-01-02T15:04:05Z"

// NewPostPolicyToken builds a signed upload token scoped to the key
// prefix dir and valid until expireAt. callback may be nil. Encoding
// failures surface as *osserr.EncodingError.
func NewPostPolicyToken(creds Credentials, host, dir string, expireAt time.Time, callback *Callback) (*Token, error) {
	doc := PolicyDocument{
		Expiration: expireAt.UTC().Format(policyTimeFormat),
		Conditions: [][]any{{"starts-with", "$key", dir}},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &osserr.EncodingError{What: "policy document", Err: err}
	}
	policy := base64.StdEncoding.EncodeToString(raw)

	var cb string
	if callback != nil {
		rawCB, err := json.Marshal(callback)
		if err != nil {
			return nil, &osserr.EncodingError{What: "callback descriptor", Err: err}
		}
		cb = base64.StdEncoding.EncodeToString(rawCB)
	}

	return &Token{
		AccessKeyID: creds.AccessKeyID,
		Host:        host,
		Policy:      policy,
		Signature:   SignPolicy(policy, creds.AccessKeySecret),
		Expire:      expireAt.Unix(),
		Dir:         dir,
		Callback:    cb,
	}, nil
}
