// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"strconv"

	"github.com/lakeward/osskit/pkg/ossxml"
)

// Owner identifies a bucket or object owner.
type Owner struct {
	ID          string
	DisplayName string
}

// BucketSummary is one entry of a ListBuckets response.
type BucketSummary struct {
	Name         string
	Location     string
	CreationDate string
}

// ListBucketsResult is the decoded GetService response.
type ListBucketsResult struct {
	Owner   Owner
	Buckets []BucketSummary
}

// ObjectSummary is one Contents entry of a ListObjects response.
type ObjectSummary struct {
	Key          string
	LastModified string
	ETag         string
	Type         string
	Size         int64
	StorageClass string
	Owner        Owner
}

// ListObjectsResult is the decoded ListObjects (GetBucket) response.
type ListObjectsResult struct {
	Name           string
	Prefix         string
	Marker         string
	NextMarker     string
	MaxKeys        int
	IsTruncated    bool
	Contents       []ObjectSummary
	CommonPrefixes []string
}

// ACLResult is the decoded AccessControlPolicy response.
type ACLResult struct {
	Owner Owner
	Grant string
}

// CopyResult is the decoded CopyObject response.
type CopyResult struct {
	ETag         string
	LastModified string
}

// AppendResult reports where the next AppendObject call must continue.
type AppendResult struct {
	NextPosition int64
	CRC          string
}

// ObjectMeta carries the headers of a HeadObject response.
type ObjectMeta struct {
	ContentLength int64
	ContentType   string
	ETag          string
	LastModified  string
	Metadata      map[string]string
}

// Tag is one object tag.
type Tag struct {
	Key   string
	Value string
}

// InitiateResult is the decoded InitiateMultipartUpload response.
type InitiateResult struct {
	Bucket   string
	Key      string
	UploadID string
}

// Part identifies one uploaded part. PartNumber and ETag feed
// CompleteMultipartUpload; Size and LastModified are filled by
// ListParts.
type Part struct {
	PartNumber   int
	ETag         string
	Size         int64
	LastModified string
}

// ListPartsResult is the decoded ListParts response.
type ListPartsResult struct {
	Bucket               string
	Key                  string
	UploadID             string
	Parts                []Part
	IsTruncated          bool
	NextPartNumberMarker string
}

// CompleteResult is the decoded CompleteMultipartUpload response.
type CompleteResult struct {
	Location string
	Bucket   string
	Key      string
	ETag     string
}

// UploadSummary is one Upload entry of a ListMultipartUploads response.
type UploadSummary struct {
	Key       string
	UploadID  string
	Initiated string
}

// ListUploadsResult is the decoded ListMultipartUploads response.
type ListUploadsResult struct {
	Bucket             string
	KeyMarker          string
	UploadIDMarker     string
	NextKeyMarker      string
	NextUploadIDMarker string
	IsTruncated        bool
	Uploads            []UploadSummary
}

// The extractors below pattern-match the generic XML tree into the
// typed results. Absent fields decode to zero values; the service owns
// the schema and this client does not enforce it.

func ownerFrom(e *ossxml.Element) Owner {
	o, ok := e.Child("Owner")
	if !ok {
		return Owner{}
	}
	return Owner{ID: o.Text("ID"), DisplayName: o.Text("DisplayName")}
}

func intFrom(e *ossxml.Element, name string) int {
	n, _ := strconv.Atoi(e.Text(name))
	return n
}

func int64From(e *ossxml.Element, name string) int64 {
	n, _ := strconv.ParseInt(e.Text(name), 10, 64)
	return n
}

func boolFrom(e *ossxml.Element, name string) bool {
	return e.Text(name) == "true"
}

func listBucketsFrom(doc *ossxml.Element) *ListBucketsResult {
	out := &ListBucketsResult{}
	root, ok := doc.Child("ListAllMyBucketsResult")
	if !ok {
		return out
	}
	out.Owner = ownerFrom(root)

	buckets, ok := ossxml.Lookup(root, "Buckets")
	if !ok {
		return out
	}
	container, ok := buckets.(*ossxml.Element)
	if !ok {
		return out
	}
	for _, n := range container.Nodes("Bucket") {
		b, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		out.Buckets = append(out.Buckets, BucketSummary{
			Name:         b.Text("Name"),
			Location:     b.Text("Location"),
			CreationDate: b.Text("CreationDate"),
		})
	}
	return out
}

func listObjectsFrom(doc *ossxml.Element) *ListObjectsResult {
	out := &ListObjectsResult{}
	root, ok := doc.Child("ListBucketResult")
	if !ok {
		return out
	}
	out.Name = root.Text("Name")
	out.Prefix = root.Text("Prefix")
	out.Marker = root.Text("Marker")
	out.NextMarker = root.Text("NextMarker")
	out.MaxKeys = intFrom(root, "MaxKeys")
	out.IsTruncated = boolFrom(root, "IsTruncated")

	for _, n := range root.Nodes("Contents") {
		c, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		out.Contents = append(out.Contents, ObjectSummary{
			Key:          c.Text("Key"),
			LastModified: c.Text("LastModified"),
			ETag:         c.Text("ETag"),
			Type:         c.Text("Type"),
			Size:         int64From(c, "Size"),
			StorageClass: c.Text("StorageClass"),
			Owner:        ownerFrom(c),
		})
	}
	for _, n := range root.Nodes("CommonPrefixes") {
		p, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		out.CommonPrefixes = append(out.CommonPrefixes, p.Text("Prefix"))
	}
	return out
}

func aclFrom(doc *ossxml.Element) *ACLResult {
	out := &ACLResult{}
	root, ok := doc.Child("AccessControlPolicy")
	if !ok {
		return out
	}
	out.Owner = ownerFrom(root)
	if list, ok := root.Child("AccessControlList"); ok {
		out.Grant = list.Text("Grant")
	}
	return out
}

func copyResultFrom(doc *ossxml.Element) *CopyResult {
	out := &CopyResult{}
	root, ok := doc.Child("CopyObjectResult")
	if !ok {
		return out
	}
	out.ETag = root.Text("ETag")
	out.LastModified = root.Text("LastModified")
	return out
}

func tagsFrom(doc *ossxml.Element) []Tag {
	set, ok := ossxml.Lookup(doc, "Tagging", "TagSet")
	if !ok {
		return nil
	}
	container, ok := set.(*ossxml.Element)
	if !ok {
		return nil
	}
	var tags []Tag
	for _, n := range container.Nodes("Tag") {
		t, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		tags = append(tags, Tag{Key: t.Text("Key"), Value: t.Text("Value")})
	}
	return tags
}

func initiateFrom(doc *ossxml.Element) *InitiateResult {
	out := &InitiateResult{}
	root, ok := doc.Child("InitiateMultipartUploadResult")
	if !ok {
		return out
	}
	out.Bucket = root.Text("Bucket")
	out.Key = root.Text("Key")
	out.UploadID = root.Text("UploadId")
	return out
}

func listPartsFrom(doc *ossxml.Element) *ListPartsResult {
	out := &ListPartsResult{}
	root, ok := doc.Child("ListPartsResult")
	if !ok {
		return out
	}
	out.Bucket = root.Text("Bucket")
	out.Key = root.Text("Key")
	out.UploadID = root.Text("UploadId")
	out.IsTruncated = boolFrom(root, "IsTruncated")
	out.NextPartNumberMarker = root.Text("NextPartNumberMarker")

	for _, n := range root.Nodes("Part") {
		p, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		out.Parts = append(out.Parts, Part{
			PartNumber:   intFrom(p, "PartNumber"),
			ETag:         p.Text("ETag"),
			Size:         int64From(p, "Size"),
			LastModified: p.Text("LastModified"),
		})
	}
	return out
}

func completeFrom(doc *ossxml.Element) *CompleteResult {
	out := &CompleteResult{}
	root, ok := doc.Child("CompleteMultipartUploadResult")
	if !ok {
		return out
	}
	out.Location = root.Text("Location")
	out.Bucket = root.Text("Bucket")
	out.Key = root.Text("Key")
	out.ETag = root.Text("ETag")
	return out
}

func listUploadsFrom(doc *ossxml.Element) *ListUploadsResult {
	out := &ListUploadsResult{}
	root, ok := doc.Child("ListMultipartUploadsResult")
	if !ok {
		return out
	}
	out.Bucket = root.Text("Bucket")
	out.KeyMarker = root.Text("KeyMarker")
	out.UploadIDMarker = root.Text("UploadIdMarker")
	out.NextKeyMarker = root.Text("NextKeyMarker")
	out.NextUploadIDMarker = root.Text("NextUploadIdMarker")
	out.IsTruncated = boolFrom(root, "IsTruncated")

	for _, n := range root.Nodes("Upload") {
		u, ok := n.(*ossxml.Element)
		if !ok {
			continue
		}
		out.Uploads = append(out.Uploads, UploadSummary{
			Key:       u.Text("Key"),
			UploadID:  u.Text("UploadId"),
			Initiated: u.Text("Initiated"),
		})
	}
	return out
}
