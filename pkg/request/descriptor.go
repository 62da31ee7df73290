// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package request holds the wire-level data model for one logical OSS
// operation: the descriptor an endpoint wrapper builds, and the host,
// path, and MIME helpers the assembler resolves it with.
package request

import (
	"strings"
)

// Header is one request header. Order is significant: the canonical
// string includes x-oss-* headers in the order they were added.
type Header struct {
	Name  string
	Value string
}

// SubResource is a query-string key that selects a sub-operation
// (acl, uploadId, ...). HasValue distinguishes a bare flag from an
// empty value.
type SubResource struct {
	Key      string
	Value    string
	HasValue bool
}

// Param is a plain query parameter. Params are not part of the signed
// resource except in the streaming signing variant, which is why they
// are an ordered list rather than a map.
type Param struct {
	Key   string
	Value string
}

// Descriptor describes one logical operation. Build it with New and the
// Set/Add methods, then treat it as immutable: the canonical resource is
// derived from bucket and object at construction and never mutated
// independently.
type Descriptor struct {
	Method  string
	Bucket  string
	Object  string
	Subs    []SubResource
	Params  []Param
	Headers []Header
	Body    []byte

	// Expires selects the signing time field: zero signs against the
	// Date header, non-zero signs against this Unix expiry (streaming
	// and presigned variants).
	Expires int64

	// Host overrides virtual-hosted addressing when non-empty.
	Host string

	resource string
}

// New builds a descriptor for method against bucket/object, deriving the
// canonical resource: "/" with neither, "/{bucket}/" with bucket only,
// "/{bucket}/{object}" with both.
func New(method, bucket, object string) *Descriptor {
	return &Descriptor{
		Method:   method,
		Bucket:   bucket,
		Object:   object,
		resource: canonicalResourcePath(bucket, object),
	}
}

func canonicalResourcePath(bucket, object string) string {
	if bucket == "" {
		return "/"
	}
	if object == "" {
		return "/" + bucket + "/"
	}
	return "/" + bucket + "/" + object
}

// Resource returns the derived canonical resource path. It always
// starts with "/".
func (d *Descriptor) Resource() string { return d.resource }

// AddSub appends a bare sub-resource flag.
func (d *Descriptor) AddSub(key string) *Descriptor {
	d.Subs = append(d.Subs, SubResource{Key: key})
	return d
}

// AddSubValue appends a sub-resource with a value.
func (d *Descriptor) AddSubValue(key, value string) *Descriptor {
	d.Subs = append(d.Subs, SubResource{Key: key, Value: value, HasValue: true})
	return d
}

// AddParam appends an unsigned query parameter.
func (d *Descriptor) AddParam(key, value string) *Descriptor {
	d.Params = append(d.Params, Param{Key: key, Value: value})
	return d
}

// AddHeader appends a caller-supplied header.
func (d *Descriptor) AddHeader(name, value string) *Descriptor {
	d.Headers = append(d.Headers, Header{Name: name, Value: value})
	return d
}

// SetBody sets the request body.
func (d *Descriptor) SetBody(body []byte) *Descriptor {
	d.Body = body
	return d
}

// SetExpires sets the Unix expiry the signature is bound to.
func (d *Descriptor) SetExpires(expires int64) *Descriptor {
	d.Expires = expires
	return d
}

// SetHost sets an explicit host override.
func (d *Descriptor) SetHost(host string) *Descriptor {
	d.Host = host
	return d
}

// HeaderValue returns the first header matching name
// case-insensitively, or "".
func HeaderValue(headers []Header, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// HasHeader reports whether a header matching name exists,
// case-insensitively.
func HasHeader(headers []Header, name string) bool {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return true
		}
	}
	return false
}

// Signed is a fully assembled request: the descriptor's wire shape plus
// the Authorization header. It is produced once and never re-signed; a
// retry after the signing clock moved must re-run assembly.
type Signed struct {
	Method  string
	Host    string
	Path    string
	Headers []Header
	Params  []Param
	Body    []byte
}
