// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"strconv"

	"github.com/lakeward/osskit/pkg/ossconsts"
	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"
)

// ListBuckets lists the buckets owned by the configured account.
func (c *Client) ListBuckets(ctx context.Context) (*ListBucketsResult, error) {
	doc, err := c.doXML(ctx, request.New("GET", "", ""))
	if err != nil {
		return nil, err
	}
	return listBucketsFrom(doc), nil
}

// PutBucket creates a bucket. acl may be empty for the service default.
func (c *Client) PutBucket(ctx context.Context, bucket, acl string) error {
	d := request.New("PUT", bucket, "")
	if acl != "" {
		if !ossconsts.ValidBucketACL(acl) {
			return &osserr.ConfigError{Field: "acl", Reason: "unknown bucket ACL " + strconv.Quote(acl)}
		}
		d.AddHeader(ossconsts.XOSSACL, acl)
	}
	_, err := c.do(ctx, d)
	return err
}

// DeleteBucket removes an empty bucket.
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := c.do(ctx, request.New("DELETE", bucket, ""))
	return err
}

// GetBucketACL fetches the bucket's access control policy.
func (c *Client) GetBucketACL(ctx context.Context, bucket string) (*ACLResult, error) {
	doc, err := c.doXML(ctx, request.New("GET", bucket, "").AddSub("acl"))
	if err != nil {
		return nil, err
	}
	return aclFrom(doc), nil
}

// PutBucketACL sets the bucket's ACL.
func (c *Client) PutBucketACL(ctx context.Context, bucket, acl string) error {
	if !ossconsts.ValidBucketACL(acl) {
		return &osserr.ConfigError{Field: "acl", Reason: "unknown bucket ACL " + strconv.Quote(acl)}
	}
	d := request.New("PUT", bucket, "").
		AddSub("acl").
		AddHeader(ossconsts.XOSSACL, acl)
	_, err := c.do(ctx, d)
	return err
}

// ListObjectsOptions narrow a ListObjects call. Zero values are omitted
// from the request.
type ListObjectsOptions struct {
	Prefix    string
	Marker    string
	Delimiter string
	MaxKeys   int
}

// ListObjects lists objects in a bucket.
func (c *Client) ListObjects(ctx context.Context, bucket string, opts ListObjectsOptions) (*ListObjectsResult, error) {
	d := request.New("GET", bucket, "")
	if opts.Prefix != "" {
		d.AddParam("prefix", opts.Prefix)
	}
	if opts.Marker != "" {
		d.AddParam("marker", opts.Marker)
	}
	if opts.Delimiter != "" {
		d.AddParam("delimiter", opts.Delimiter)
	}
	if opts.MaxKeys > 0 {
		d.AddParam("max-keys", strconv.Itoa(opts.MaxKeys))
	}
	doc, err := c.doXML(ctx, d)
	if err != nil {
		return nil, err
	}
	return listObjectsFrom(doc), nil
}
