// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultCombinedName = "combined.pdf"
	defaultPreviewPx    = 640
)

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Merge the inputs into one combined PDF",
	Long: `Build normalizes every included input to PDF pages and merges them, in
session order, into a single output. Items that cannot be decoded
contribute nothing; the build never fails because of one bad input.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output filename (default "+defaultCombinedName+")")
	buildCmd.Flags().String("manifest", "", "YAML session manifest instead of file arguments")
	buildCmd.Flags().Bool("preview", false, "also write an inline-embedded HTML preview")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	s, manifest, err := loadSession(cmd, args, cfg)
	if err != nil {
		return err
	}

	gen := newGenerator(cfg)
	result := gen.BuildCombined(s, os.Stdout)
	if result.Empty() {
		fmt.Println("no items were included; nothing was written")
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" && manifest != nil {
		output = manifest.Output
	}
	if output == "" {
		output = defaultCombinedName
	}

	if err := os.WriteFile(output, result.PDF, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", output, len(result.PDF))

	if previewWanted, _ := cmd.Flags().GetBool("preview"); previewWanted {
		if err := writePreview(output, result.PDF, defaultPreviewPx); err != nil {
			return err
		}
	}
	return nil
}
