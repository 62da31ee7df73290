// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package ossconsts

// https://www.alibabacloud.com/help/en/oss/developer-reference/include-signatures-in-the-authorization-header
const (
	// OSSHeaderPrefix marks the request headers included in the
	// canonical string-to-sign (matched case-insensitively).
	OSSHeaderPrefix = "x-oss-"

	// AuthPrefix is the Authorization header scheme.
	AuthPrefix = "OSS"

	// --- Core request / tracing ---
	XOSSRequestID = "x-oss-request-id"
	XOSSDate      = "x-oss-date"

	// --- ACL ---
	XOSSACL       = "x-oss-acl"
	XOSSObjectACL = "x-oss-object-acl"

	// --- Copy / append ---
	XOSSCopySource     = "x-oss-copy-source"
	XOSSMetadataDirect = "x-oss-metadata-directive"
	XOSSNextAppendPos  = "x-oss-next-append-position"

	// --- Symlink ---
	XOSSSymlinkTarget = "x-oss-symlink-target"

	// --- Tagging ---
	XOSSTagging = "x-oss-tagging"

	// --- Metadata ---
	XOSSMetaPrefix = "x-oss-meta-"

	// --- Presign query keys ---
	QueryAccessKeyID = "OSSAccessKeyId"
	QueryExpires     = "Expires"
	QuerySignature   = "Signature"
)

// ACL values accepted by bucket and object ACL operations. ACLDefault
// is valid only for objects, where it means "inherit the bucket ACL".
const (
	ACLPrivate         = "private"
	ACLPublicRead      = "public-read"
	ACLPublicReadWrite = "public-read-write"
	ACLDefault         = "default"
)

// ValidBucketACL reports whether acl is accepted for bucket operations.
func ValidBucketACL(acl string) bool {
	switch acl {
	case ACLPrivate, ACLPublicRead, ACLPublicReadWrite:
		return true
	}
	return false
}

// ValidObjectACL reports whether acl is accepted for object operations.
func ValidObjectACL(acl string) bool {
	return acl == ACLDefault || ValidBucketACL(acl)
}
