// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"strings"
)

// HostFor resolves the virtual-hosted-style host: the explicit override
// when set, the bare endpoint for service-level calls, otherwise
// "{bucket}.{endpoint}".
func HostFor(explicit, bucket, endpoint string) string {
	if explicit != "" {
		return explicit
	}
	if bucket == "" {
		return endpoint
	}
	return bucket + "." + endpoint
}

// EncodeSubResources renders sub-resources as "key" or "key=value"
// joined with "&", preserving insertion order. Both the signed canonical
// resource and the wire path render through this one function, so the
// two cannot drift apart.
func EncodeSubResources(subs []SubResource) string {
	if len(subs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.HasValue {
			parts = append(parts, s.Key+"="+s.Value)
		} else {
			parts = append(parts, s.Key)
		}
	}
	return strings.Join(parts, "&")
}

// PathFor builds the wire path for an object and its sub-resources:
// "/{object}" with the sub-resource query appended as "?{query}" when
// present. The result has exactly one leading slash.
func PathFor(object string, subs []SubResource) string {
	p := "/" + strings.TrimLeft(object, "/")
	if q := EncodeSubResources(subs); q != "" {
		p += "?" + q
	}
	return p
}
