// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-binder/internal/clipboard"
	"github.com/pdiddy/pdf-binder/internal/pipeline"
	"github.com/pdiddy/pdf-binder/internal/session"
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Capture a clipboard image as a named PNG clipping",
	Long: `Clip captures the current clipboard image (wl-paste, xclip, or pngpaste,
whichever the platform provides), applies the capture prep (minimum
height, sharpen), and writes it as a PNG under a sanitized name, ready
to be listed in a session manifest.`,
	RunE: runClip,
}

func init() {
	clipCmd.Flags().String("name", "clipping", "clipping name (sanitized, .png forced)")
	clipCmd.Flags().String("out-dir", ".", "directory to write the PNG into")

	rootCmd.AddCommand(clipCmd)
}

func runClip(cmd *cobra.Command, args []string) error {
	src, err := clipboard.Detect()
	if err != nil {
		return err
	}

	data, err := src.Read()
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	outDir, _ := cmd.Flags().GetString("out-dir")

	// Route the capture through the regular ingestion prep so the file
	// on disk matches what a build would store.
	cfg := pipelineConfig()
	ing := pipeline.NewIngestor(cfg.Ingest)
	it, err := ing.IngestClipping(session.New(), name, data)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, it.Name)
	if err := os.WriteFile(path, it.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("captured %s via %s (%d bytes)\n", path, src.Name(), len(it.Content))
	return nil
}
