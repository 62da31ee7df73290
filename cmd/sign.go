// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lakeward/osskit/pkg/logger"
	"github.com/lakeward/osskit/pkg/signer"

	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Signed URL and upload token commands",
	Long:  `Commands for producing signed RTMP URLs and browser-upload policy tokens.`,
}

var signRTMPCmd = &cobra.Command{
	Use:   "rtmp <bucket> <channel>",
	Short: "Produce a signed RTMP push URL for a live channel",
	Args:  cobra.ExactArgs(2),
	Run:   runSignRTMP,
}

var signPolicyCmd = &cobra.Command{
	Use:   "post-policy <bucket> <dir>",
	Short: "Produce a browser-upload policy token scoped to a key prefix",
	Long: `Produce the JSON token a web backend hands to a browser for direct
upload: access key ID, base64 policy, signature, and expiry. The secret
key never leaves this machine.`,
	Args: cobra.ExactArgs(2),
	Run:  runSignPolicy,
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.AddCommand(signRTMPCmd)
	signCmd.AddCommand(signPolicyCmd)

	signRTMPCmd.Flags().String("playlist", "", "HLS playlist name recorded by the channel")
	signRTMPCmd.Flags().Duration("expires-in", time.Hour, "How long the URL stays valid")

	signPolicyCmd.Flags().Duration("expires-in", time.Hour, "How long the token stays valid")
	signPolicyCmd.Flags().String("callback-url", "", "URL the service calls after a successful upload")
	signPolicyCmd.Flags().String("callback-body", "", "Body template for the upload callback")
}

func runSignRTMP(cmd *cobra.Command, args []string) {
	playlist, _ := cmd.Flags().GetString("playlist")
	expiresIn, _ := cmd.Flags().GetDuration("expires-in")

	c := newClient(cmd)
	fmt.Println(c.SignRTMPURL(args[0], args[1], playlist, time.Now().Add(expiresIn)))
}

func runSignPolicy(cmd *cobra.Command, args []string) {
	expiresIn, _ := cmd.Flags().GetDuration("expires-in")
	callbackURL, _ := cmd.Flags().GetString("callback-url")
	callbackBody, _ := cmd.Flags().GetString("callback-body")

	var callback *signer.Callback
	if callbackURL != "" {
		callback = &signer.Callback{
			URL:      callbackURL,
			Body:     callbackBody,
			BodyType: "application/x-www-form-urlencoded",
		}
	}

	c := newClient(cmd)
	tok, err := c.PostPolicyToken(args[0], args[1], expiresIn, callback)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build policy token")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tok); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode token")
	}
}
