// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lakeward/osskit/pkg/client"
	"github.com/lakeward/osskit/pkg/logger"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Object commands",
	Long:  `Commands for uploading, downloading, listing, and deleting objects.`,
}

var objectPutCmd = &cobra.Command{
	Use:   "put <bucket> <key> <file>",
	Short: "Upload a file",
	Args:  cobra.ExactArgs(3),
	Run:   runObjectPut,
}

var objectGetCmd = &cobra.Command{
	Use:   "get <bucket> <key> [file]",
	Short: "Download an object to a file or stdout",
	Args:  cobra.RangeArgs(2, 3),
	Run:   runObjectGet,
}

var objectLsCmd = &cobra.Command{
	Use:   "ls <bucket>",
	Short: "List objects in a bucket",
	Args:  cobra.ExactArgs(1),
	Run:   runObjectLs,
}

var objectRmCmd = &cobra.Command{
	Use:   "rm <bucket> <key>...",
	Short: "Delete one or more objects",
	Args:  cobra.MinimumNArgs(2),
	Run:   runObjectRm,
}

var objectHeadCmd = &cobra.Command{
	Use:   "head <bucket> <key>",
	Short: "Print object metadata",
	Args:  cobra.ExactArgs(2),
	Run:   runObjectHead,
}

var objectCpCmd = &cobra.Command{
	Use:   "cp <src-bucket> <src-key> <dst-bucket> <dst-key>",
	Short: "Copy an object server-side",
	Args:  cobra.ExactArgs(4),
	Run:   runObjectCp,
}

func init() {
	rootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(objectPutCmd)
	objectCmd.AddCommand(objectGetCmd)
	objectCmd.AddCommand(objectLsCmd)
	objectCmd.AddCommand(objectRmCmd)
	objectCmd.AddCommand(objectHeadCmd)
	objectCmd.AddCommand(objectCpCmd)

	objectLsCmd.Flags().String("prefix", "", "Only list keys beginning with prefix")
	objectLsCmd.Flags().String("marker", "", "Start listing after this key")
	objectLsCmd.Flags().String("delimiter", "", "Group keys by delimiter (e.g., '/')")
	objectLsCmd.Flags().Int("max-keys", 0, "Maximum number of keys to return")
}

func runObjectPut(cmd *cobra.Command, args []string) {
	bucket, key, path := args[0], args[1], args[2]

	body, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("file", path).Msg("Failed to read file")
	}

	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := c.PutObject(ctx, bucket, key, body); err != nil {
		logger.Fatal().Err(err).Msg("Failed to upload object")
	}
	fmt.Printf("uploaded %s (%s) to %s/%s\n", path, humanize.Bytes(uint64(len(body))), bucket, key)
}

func runObjectGet(cmd *cobra.Command, args []string) {
	bucket, key := args[0], args[1]

	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	body, err := c.GetObject(ctx, bucket, key)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to download object")
	}

	if len(args) == 3 {
		if err := os.WriteFile(args[2], body, 0o644); err != nil {
			logger.Fatal().Err(err).Str("file", args[2]).Msg("Failed to write file")
		}
		fmt.Printf("downloaded %s/%s (%s) to %s\n", bucket, key, humanize.Bytes(uint64(len(body))), args[2])
		return
	}
	os.Stdout.Write(body)
}

func runObjectLs(cmd *cobra.Command, args []string) {
	prefix, _ := cmd.Flags().GetString("prefix")
	marker, _ := cmd.Flags().GetString("marker")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	maxKeys, _ := cmd.Flags().GetInt("max-keys")

	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := c.ListObjects(ctx, args[0], client.ListObjectsOptions{
		Prefix:    prefix,
		Marker:    marker,
		Delimiter: delimiter,
		MaxKeys:   maxKeys,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to list objects")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSIZE\tMODIFIED\tSTORAGE")
	for _, p := range res.CommonPrefixes {
		fmt.Fprintf(w, "%s\t-\t-\t-\n", p)
	}
	for _, o := range res.Contents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.Key, humanize.Bytes(uint64(o.Size)), o.LastModified, o.StorageClass)
	}
	w.Flush()

	if res.IsTruncated {
		fmt.Printf("\ntruncated; continue with --marker %s\n", res.NextMarker)
	}
}

func runObjectRm(cmd *cobra.Command, args []string) {
	bucket, keys := args[0], args[1:]

	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if len(keys) == 1 {
		if err := c.DeleteObject(ctx, bucket, keys[0]); err != nil {
			logger.Fatal().Err(err).Msg("Failed to delete object")
		}
	} else {
		if err := c.DeleteObjects(ctx, bucket, keys, true); err != nil {
			logger.Fatal().Err(err).Msg("Failed to delete objects")
		}
	}
	fmt.Printf("deleted %d object(s) from %s\n", len(keys), bucket)
}

func runObjectHead(cmd *cobra.Command, args []string) {
	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	meta, err := c.HeadObject(ctx, args[0], args[1])
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to head object")
	}

	fmt.Printf("Key:            %s\n", args[1])
	fmt.Printf("Size:           %s (%d bytes)\n", humanize.Bytes(uint64(meta.ContentLength)), meta.ContentLength)
	fmt.Printf("Content-Type:   %s\n", meta.ContentType)
	fmt.Printf("ETag:           %s\n", meta.ETag)
	fmt.Printf("Last-Modified:  %s\n", meta.LastModified)
	for k, v := range meta.Metadata {
		fmt.Printf("Meta %s: %s\n", k, v)
	}
}

func runObjectCp(cmd *cobra.Command, args []string) {
	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := c.CopyObject(ctx, args[0], args[1], args[2], args[3])
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to copy object")
	}
	fmt.Printf("copied %s/%s to %s/%s (etag %s)\n", args[0], args[1], args[2], args[3], res.ETag)
}
