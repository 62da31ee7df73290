// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package signer implements the OSS request signing engine: the
// canonical string-to-sign, the HMAC-SHA1 signature, request assembly,
// and browser-upload policy tokens.
package signer

import (
	"strconv"
	"strings"

	"github.com/lakeward/osskit/pkg/ossconsts"
	"github.com/lakeward/osskit/pkg/request"
)

// StringToSign builds the canonical string for the standard signing
// variant:
//
//	VERB \n
//	Content-MD5 \n
//	Content-Type \n
//	Date-or-Expires \n
//	CanonicalizedOSSHeaders CanonicalizedResource
//
// headers is the assembled header list; Content-MD5, Content-Type, and
// Date are read back out of it. A non-zero Expires on the descriptor
// replaces the Date value.
//
// x-oss-* headers and sub-resources are rendered in insertion order,
// not sorted. Callers supply them in a fixed order by convention; see
// DESIGN.md for why sorting is deliberately not applied.
func StringToSign(d *request.Descriptor, headers []request.Header) string {
	timeField := request.HeaderValue(headers, "Date")
	if d.Expires != 0 {
		timeField = strconv.FormatInt(d.Expires, 10)
	}

	return strings.ToUpper(d.Method) + "\n" +
		request.HeaderValue(headers, "Content-MD5") + "\n" +
		request.HeaderValue(headers, "Content-Type") + "\n" +
		timeField + "\n" +
		canonicalOSSHeaders(headers) + CanonicalResource(d)
}

// StreamingStringToSign builds the canonical string for the RTMP
// signing variant:
//
//	Expires-or-Date \n
//	key:value \n        (one line per query param, insertion order)
//	CanonicalizedResource
func StreamingStringToSign(d *request.Descriptor) string {
	timeField := request.HeaderValue(d.Headers, "Date")
	if d.Expires != 0 {
		timeField = strconv.FormatInt(d.Expires, 10)
	}

	var b strings.Builder
	b.WriteString(timeField)
	b.WriteString("\n")
	for _, p := range d.Params {
		b.WriteString(p.Key)
		b.WriteString(":")
		b.WriteString(p.Value)
		b.WriteString("\n")
	}
	b.WriteString(CanonicalResource(d))
	return b.String()
}

// CanonicalResource renders the signed resource: the derived resource
// path plus the sub-resource query when present. The query goes through
// the same renderer as the wire path.
func CanonicalResource(d *request.Descriptor) string {
	res := d.Resource()
	if q := request.EncodeSubResources(d.Subs); q != "" {
		res += "?" + q
	}
	return res
}

// canonicalOSSHeaders renders headers whose name starts with "x-oss-"
// (case-insensitive) as "name:value" lines, names lowercased, joined by
// newlines with a trailing newline when non-empty.
func canonicalOSSHeaders(headers []request.Header) string {
	var lines []string
	for _, h := range headers {
		name := strings.ToLower(h.Name)
		if strings.HasPrefix(name, ossconsts.OSSHeaderPrefix) {
			lines = append(lines, name+":"+h.Value)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
