// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/xml"
	"strconv"

	"github.com/lakeward/osskit/pkg/osserr"
	"github.com/lakeward/osskit/pkg/request"
)

// Multipart upload primitives. Chunking strategy and part-upload
// concurrency are the caller's concern; each primitive is one
// independently signed request.

// InitiateMultipartUpload opens a multipart upload and returns its
// upload ID.
func (c *Client) InitiateMultipartUpload(ctx context.Context, bucket, object string) (*InitiateResult, error) {
	doc, err := c.doXML(ctx, request.New("POST", bucket, object).AddSub("uploads"))
	if err != nil {
		return nil, err
	}
	return initiateFrom(doc), nil
}

// UploadPart uploads one part and returns its ETag, needed to complete
// the upload. partNumber ranges from 1 to 10000.
func (c *Client) UploadPart(ctx context.Context, bucket, object, uploadID string, partNumber int, body []byte) (Part, error) {
	d := request.New("PUT", bucket, object).
		AddSubValue("partNumber", strconv.Itoa(partNumber)).
		AddSubValue("uploadId", uploadID).
		SetBody(body)
	resp, err := c.do(ctx, d)
	if err != nil {
		return Part{}, err
	}
	return Part{PartNumber: partNumber, ETag: resp.Headers.Get("ETag")}, nil
}

type completePart struct {
	PartNumber int    `xml:"PartNumber"`
	ETag       string `xml:"ETag"`
}

type completeRequest struct {
	XMLName xml.Name       `xml:"CompleteMultipartUpload"`
	Parts   []completePart `xml:"Part"`
}

// CompleteMultipartUpload finalizes an upload from the listed parts.
// Parts must carry the numbers and ETags returned by UploadPart.
func (c *Client) CompleteMultipartUpload(ctx context.Context, bucket, object, uploadID string, parts []Part) (*CompleteResult, error) {
	req := completeRequest{}
	for _, p := range parts {
		req.Parts = append(req.Parts, completePart{PartNumber: p.PartNumber, ETag: p.ETag})
	}
	body, err := xml.Marshal(req)
	if err != nil {
		return nil, &osserr.EncodingError{What: "complete multipart request", Err: err}
	}

	d := request.New("POST", bucket, object).
		AddSubValue("uploadId", uploadID).
		SetBody(body)
	doc, err := c.doXML(ctx, d)
	if err != nil {
		return nil, err
	}
	return completeFrom(doc), nil
}

// AbortMultipartUpload discards an open upload and its parts.
func (c *Client) AbortMultipartUpload(ctx context.Context, bucket, object, uploadID string) error {
	d := request.New("DELETE", bucket, object).
		AddSubValue("uploadId", uploadID)
	_, err := c.do(ctx, d)
	return err
}

// ListParts lists the parts uploaded so far for an open upload.
func (c *Client) ListParts(ctx context.Context, bucket, object, uploadID string) (*ListPartsResult, error) {
	d := request.New("GET", bucket, object).
		AddSubValue("uploadId", uploadID)
	doc, err := c.doXML(ctx, d)
	if err != nil {
		return nil, err
	}
	return listPartsFrom(doc), nil
}

// ListMultipartUploads lists the bucket's open uploads.
func (c *Client) ListMultipartUploads(ctx context.Context, bucket string) (*ListUploadsResult, error) {
	doc, err := c.doXML(ctx, request.New("GET", bucket, "").AddSub("uploads"))
	if err != nil {
		return nil, err
	}
	return listUploadsFrom(doc), nil
}
