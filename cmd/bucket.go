// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lakeward/osskit/pkg/logger"

	"github.com/spf13/cobra"
)

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Bucket management commands",
	Long:  `Commands for creating, listing, and managing buckets and their ACLs.`,
}

var bucketLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List buckets",
	Run:   runBucketLs,
}

var bucketMbCmd = &cobra.Command{
	Use:   "mb <bucket>",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	Run:   runBucketMb,
}

var bucketRbCmd = &cobra.Command{
	Use:   "rb <bucket>",
	Short: "Remove an empty bucket",
	Args:  cobra.ExactArgs(1),
	Run:   runBucketRb,
}

var bucketACLCmd = &cobra.Command{
	Use:   "acl <bucket> [acl]",
	Short: "Get or set a bucket ACL",
	Long: `With one argument, print the bucket's ACL. With two, set it to one of
private, public-read, or public-read-write.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runBucketACL,
}

func init() {
	rootCmd.AddCommand(bucketCmd)
	bucketCmd.AddCommand(bucketLsCmd)
	bucketCmd.AddCommand(bucketMbCmd)
	bucketCmd.AddCommand(bucketRbCmd)
	bucketCmd.AddCommand(bucketACLCmd)

	bucketMbCmd.Flags().String("acl", "", "ACL for the new bucket (private, public-read, public-read-write)")
}

func runBucketLs(cmd *cobra.Command, args []string) {
	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := c.ListBuckets(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to list buckets")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLOCATION\tCREATED")
	for _, b := range res.Buckets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Location, b.CreationDate)
	}
	w.Flush()
}

func runBucketMb(cmd *cobra.Command, args []string) {
	acl, _ := cmd.Flags().GetString("acl")

	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.PutBucket(ctx, args[0], acl); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create bucket")
	}
	fmt.Printf("created bucket %s\n", args[0])
}

func runBucketRb(cmd *cobra.Command, args []string) {
	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.DeleteBucket(ctx, args[0]); err != nil {
		logger.Fatal().Err(err).Msg("Failed to remove bucket")
	}
	fmt.Printf("removed bucket %s\n", args[0])
}

func runBucketACL(cmd *cobra.Command, args []string) {
	c := newClient(cmd)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if len(args) == 2 {
		if err := c.PutBucketACL(ctx, args[0], args[1]); err != nil {
			logger.Fatal().Err(err).Msg("Failed to set bucket ACL")
		}
		fmt.Printf("set acl of %s to %s\n", args[0], args[1])
		return
	}

	res, err := c.GetBucketACL(ctx, args[0])
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to get bucket ACL")
	}
	fmt.Printf("%s\t%s\n", args[0], res.Grant)
}
