// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/lakeward/osskit/pkg/ossconsts"
	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"
)

// PutObject uploads body under bucket/object. Extra headers (metadata,
// explicit Content-Type, ACL) pass through to the request; their order
// is preserved for signing.
func (c *Client) PutObject(ctx context.Context, bucket, object string, body []byte, headers ...request.Header) error {
	d := request.New("PUT", bucket, object).SetBody(body)
	d.Headers = append(d.Headers, headers...)
	_, err := c.do(ctx, d)
	return err
}

// GetObject downloads an object's content.
func (c *Client) GetObject(ctx context.Context, bucket, object string) ([]byte, error) {
	resp, err := c.do(ctx, request.New("GET", bucket, object))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// HeadObject fetches an object's metadata without its content.
func (c *Client) HeadObject(ctx context.Context, bucket, object string) (*ObjectMeta, error) {
	resp, err := c.do(ctx, request.New("HEAD", bucket, object))
	if err != nil {
		return nil, err
	}

	meta := &ObjectMeta{
		ContentType:  resp.Headers.Get("Content-Type"),
		ETag:         resp.Headers.Get("ETag"),
		LastModified: resp.Headers.Get("Last-Modified"),
		Metadata:     map[string]string{},
	}
	meta.ContentLength, _ = strconv.ParseInt(resp.Headers.Get("Content-Length"), 10, 64)
	for name, values := range resp.Headers {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, ossconsts.XOSSMetaPrefix) && len(values) > 0 {
			meta.Metadata[strings.TrimPrefix(lower, ossconsts.XOSSMetaPrefix)] = values[0]
		}
	}
	return meta, nil
}

// DeleteObject removes one object. Deleting a missing object succeeds.
func (c *Client) DeleteObject(ctx context.Context, bucket, object string) error {
	_, err := c.do(ctx, request.New("DELETE", bucket, object))
	return err
}

type deleteEntry struct {
	Key string `xml:"Key"`
}

type deleteRequest struct {
	XMLName xml.Name      `xml:"Delete"`
	Quiet   bool          `xml:"Quiet"`
	Objects []deleteEntry `xml:"Object"`
}

// DeleteObjects removes up to 1000 objects in one call. With quiet set
// the service reports only failures.
func (c *Client) DeleteObjects(ctx context.Context, bucket string, keys []string, quiet bool) error {
	req := deleteRequest{Quiet: quiet}
	for _, k := range keys {
		req.Objects = append(req.Objects, deleteEntry{Key: k})
	}
	body, err := xml.Marshal(req)
	if err != nil {
		return &osserr.EncodingError{What: "delete request", Err: err}
	}

	d := request.New("POST", bucket, "").
		AddSub("delete").
		SetBody(body)
	_, err = c.do(ctx, d)
	return err
}

// CopyObject copies srcBucket/srcObject to dstBucket/dstObject
// server-side.
func (c *Client) CopyObject(ctx context.Context, srcBucket, srcObject, dstBucket, dstObject string) (*CopyResult, error) {
	d := request.New("PUT", dstBucket, dstObject).
		AddHeader(ossconsts.XOSSCopySource, "/"+srcBucket+"/"+srcObject)
	doc, err := c.doXML(ctx, d)
	if err != nil {
		return nil, err
	}
	return copyResultFrom(doc), nil
}

// AppendObject appends body at position, which must equal the object's
// current length (0 for a new object). The next position comes back in
// the result.
func (c *Client) AppendObject(ctx context.Context, bucket, object string, position int64, body []byte) (*AppendResult, error) {
	d := request.New("POST", bucket, object).
		AddSub("append").
		AddSubValue("position", strconv.FormatInt(position, 10)).
		SetBody(body)
	resp, err := c.do(ctx, d)
	if err != nil {
		return nil, err
	}

	out := &AppendResult{CRC: resp.Headers.Get("x-oss-hash-crc64ecma")}
	out.NextPosition, _ = strconv.ParseInt(resp.Headers.Get(ossconsts.XOSSNextAppendPos), 10, 64)
	return out, nil
}

// GetObjectACL fetches an object's access control policy.
func (c *Client) GetObjectACL(ctx context.Context, bucket, object string) (*ACLResult, error) {
	doc, err := c.doXML(ctx, request.New("GET", bucket, object).AddSub("acl"))
	if err != nil {
		return nil, err
	}
	return aclFrom(doc), nil
}

// PutObjectACL sets an object's ACL. "default" hands control back to
// the bucket ACL.
func (c *Client) PutObjectACL(ctx context.Context, bucket, object, acl string) error {
	if !ossconsts.ValidObjectACL(acl) {
		return &osserr.ConfigError{Field: "acl", Reason: "unknown object ACL " + strconv.Quote(acl)}
	}
	d := request.New("PUT", bucket, object).
		AddSub("acl").
		AddHeader(ossconsts.XOSSObjectACL, acl)
	_, err := c.do(ctx, d)
	return err
}

// PutSymlink points a symlink object at target.
func (c *Client) PutSymlink(ctx context.Context, bucket, object, target string) error {
	d := request.New("PUT", bucket, object).
		AddSub("symlink").
		AddHeader(ossconsts.XOSSSymlinkTarget, target)
	_, err := c.do(ctx, d)
	return err
}

// GetSymlink returns the target a symlink object points at.
func (c *Client) GetSymlink(ctx context.Context, bucket, object string) (string, error) {
	resp, err := c.do(ctx, request.New("GET", bucket, object).AddSub("symlink"))
	if err != nil {
		return "", err
	}
	return resp.Headers.Get(ossconsts.XOSSSymlinkTarget), nil
}

type taggingTag struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

type taggingRequest struct {
	XMLName xml.Name     `xml:"Tagging"`
	TagSet  []taggingTag `xml:"TagSet>Tag"`
}

// PutObjectTagging replaces an object's tag set.
func (c *Client) PutObjectTagging(ctx context.Context, bucket, object string, tags []Tag) error {
	req := taggingRequest{}
	for _, t := range tags {
		req.TagSet = append(req.TagSet, taggingTag{Key: t.Key, Value: t.Value})
	}
	body, err := xml.Marshal(req)
	if err != nil {
		return &osserr.EncodingError{What: "tagging request", Err: err}
	}

	d := request.New("PUT", bucket, object).
		AddSub("tagging").
		SetBody(body)
	_, err = c.do(ctx, d)
	return err
}

// GetObjectTagging fetches an object's tag set.
func (c *Client) GetObjectTagging(ctx context.Context, bucket, object string) ([]Tag, error) {
	doc, err := c.doXML(ctx, request.New("GET", bucket, object).AddSub("tagging"))
	if err != nil {
		return nil, err
	}
	return tagsFrom(doc), nil
}

// DeleteObjectTagging removes an object's tag set.
func (c *Client) DeleteObjectTagging(ctx context.Context, bucket, object string) error {
	_, err := c.do(ctx, request.New("DELETE", bucket, object).AddSub("tagging"))
	return err
}
