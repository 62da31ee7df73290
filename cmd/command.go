// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmd provides the osskit CLI commands.
package cmd

import (
	"os"
	"strings"

	"github.com/lakeward/osskit/pkg/client"
	"github.com/lakeward/osskit/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "osskit",
	Short: "OSSKit - an object storage command line client",
	Long: `OSSKit talks to an OSS-compatible object storage service: buckets,
objects, multipart uploads, and signed URLs for browser and RTMP access.

Credentials come from flags, an osskit.yaml config file, or OSSKIT_*
environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config_dir", ".", "Directory for configuration files")
	rootCmd.PersistentFlags().String("endpoint", "", "Service endpoint (e.g., oss-cn-hangzhou.aliyuncs.com)")
	rootCmd.PersistentFlags().String("access_key_id", "", "Access key ID (or set OSSKIT_ACCESS_KEY_ID)")
	rootCmd.PersistentFlags().String("access_key_secret", "", "Access key secret (or set OSSKIT_ACCESS_KEY_SECRET)")
	rootCmd.PersistentFlags().String("scheme", "", "URL scheme, http or https (default https)")
}

// loadConfiguration merges osskit.yaml from the usual locations plus
// OSSKIT_* environment variables into viper.
func loadConfiguration() {
	viper.SetConfigName("osskit")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.osskit")
	viper.AddConfigPath("/usr/local/etc/osskit/")
	viper.AddConfigPath("/etc/osskit/")
	viper.SetEnvPrefix("osskit")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug().Msg("Config file not found: osskit")
			return
		}
		logger.Fatal().Err(err).Msg("Failed to load config file: osskit")
	}
	logger.Info().Msgf("Loaded config file: %s", viper.ConfigFileUsed())
}

// newClient builds a client from flags, config file, and environment.
func newClient(cmd *cobra.Command) *client.Client {
	loadConfiguration()
	f := NewFlagLoader(cmd)

	cfg := client.Config{
		Endpoint:        f.String("endpoint"),
		AccessKeyID:     f.String("access_key_id"),
		AccessKeySecret: f.String("access_key_secret"),
		Scheme:          f.String("scheme"),
	}

	c, err := client.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid client configuration")
	}
	return c
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
