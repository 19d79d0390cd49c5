// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-binder CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-binder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf-binder CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-binder",
	Short: "Combine PDFs, images, and Word documents into merged PDFs",
	Long: `pdf-binder normalizes heterogeneous documents (PDF pages, images, Word
documents, screen clippings) into PDF page streams and assembles them into
one combined PDF or two grouped PDFs, in a caller-controlled order.

Inputs are given as file arguments or through a YAML session manifest that
also carries per-item ordering, inclusion, and group tags. Nothing is
persisted: each invocation is one self-contained session.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-binder.yaml or ~/.config/pdf-binder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-binder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-binder"))
		}
	}

	viper.SetEnvPrefix("PDF_BINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the stage configuration from defaults
// overridden by whatever the config file or environment provides.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("convert.native_binary"); v != "" {
		cfg.Convert.NativeBinary = v
	}
	if viper.IsSet("convert.disable_native") {
		cfg.Convert.DisableNative = viper.GetBool("convert.disable_native")
	}
	if v := viper.GetString("convert.placeholder"); v != "" {
		cfg.Convert.Placeholder = v
	}
	if viper.IsSet("ingest.min_clip_height") {
		cfg.Ingest.MinClipHeight = viper.GetInt("ingest.min_clip_height")
	}
	if viper.IsSet("ingest.sharpen") {
		cfg.Ingest.Sharpen = viper.GetBool("ingest.sharpen")
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
