// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package signer

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lakeward/osskit/pkg/ossconsts"
	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"
)

// DateFormat is the wire format of the Date header.
const DateFormat = http.TimeFormat

// Credentials hold the access key pair a request is signed with. Treat
// as read-only for the lifetime of a request.
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
}

// Sign computes base64(HMAC-SHA1(message)) keyed by secret. It is the
// one signing primitive shared by request signing, URL signing, and
// policy tokens.
func Sign(message []byte, secret string) string {
	h := hmac.New(sha1.New, []byte(secret))
	h.Write(message)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Authorize computes the Authorization header value for an assembled
// request: "OSS {accessKeyID}:{signature}".
func Authorize(d *request.Descriptor, headers []request.Header, creds Credentials) string {
	sig := Sign([]byte(StringToSign(d, headers)), creds.AccessKeySecret)
	return ossconsts.AuthPrefix + " " + creds.AccessKeyID + ":" + sig
}

// Assemble resolves a descriptor into its signed wire shape. Steps run
// in order because each depends on the header state left by the one
// before: host, Content-Type, Content-MD5, Content-Length, then Date
// prepended ahead of the caller's headers, then Authorization prepended
// ahead of everything.
//
// now is the signing clock; it is explicit so assembly stays a pure
// function. A retry issued after the clock moved must re-assemble.
func Assemble(d *request.Descriptor, endpoint string, creds Credentials, now time.Time) (*request.Signed, error) {
	if err := validate(endpoint, creds); err != nil {
		return nil, err
	}

	host := request.HostFor(d.Host, d.Bucket, endpoint)

	headers := make([]request.Header, 0, len(d.Headers)+6)
	headers = append(headers, d.Headers...)

	if !request.HasHeader(headers, "Host") {
		headers = append(headers, request.Header{Name: "Host", Value: host})
	}
	if !request.HasHeader(headers, "Content-Type") {
		headers = append(headers, request.Header{Name: "Content-Type", Value: request.ContentTypeFor(d.Object)})
	}
	if len(d.Body) > 0 && !request.HasHeader(headers, "Content-MD5") {
		sum := md5.Sum(d.Body)
		headers = append(headers, request.Header{Name: "Content-MD5", Value: base64.StdEncoding.EncodeToString(sum[:])})
	}
	if !request.HasHeader(headers, "Content-Length") {
		headers = append(headers, request.Header{Name: "Content-Length", Value: strconv.Itoa(len(d.Body))})
	}

	headers = prepend(headers, request.Header{Name: "Date", Value: now.UTC().Format(DateFormat)})
	headers = prepend(headers, request.Header{Name: "Authorization", Value: Authorize(d, headers, creds)})

	return &request.Signed{
		Method:  strings.ToUpper(d.Method),
		Host:    host,
		Path:    request.PathFor(d.Object, d.Subs),
		Headers: headers,
		Params:  d.Params,
		Body:    d.Body,
	}, nil
}

func prepend(headers []request.Header, h request.Header) []request.Header {
	return append([]request.Header{h}, headers...)
}

func validate(endpoint string, creds Credentials) error {
	switch {
	case endpoint == "":
		return &osserr.ConfigError{Field: "endpoint", Reason: "must not be empty"}
	case creds.AccessKeyID == "":
		return &osserr.ConfigError{Field: "access_key_id", Reason: "must not be empty"}
	case creds.AccessKeySecret == "":
		return &osserr.ConfigError{Field: "access_key_secret", Reason: "must not be empty"}
	}
	return nil
}
