// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-binder/internal/convert"
	"github.com/pdiddy/pdf-binder/internal/pipeline"
	"github.com/pdiddy/pdf-binder/internal/preview"
	"github.com/pdiddy/pdf-binder/internal/session"
	"github.com/pdiddy/pdf-binder/pkg/types"
)

// newGenerator wires the pipeline: the native converter capability is
// resolved here, once per invocation, and injected into the document
// renderer. A missing native converter is a normal condition; the
// fallback tier covers it.
func newGenerator(cfg types.PipelineConfig) *pipeline.Generator {
	var native convert.Converter
	if !cfg.Convert.DisableNative {
		if c, err := convert.DetectSoffice(cfg.Convert.NativeBinary); err == nil {
			native = c
		}
	}
	return pipeline.NewGenerator(convert.NewDocumentRenderer(native, cfg.Convert))
}

// loadSession builds the session from --manifest or from file
// arguments. Rejected inputs (unsupported extension, undecodable image)
// are warned about on stderr and left out of the session; the returned
// manifest is nil when inputs came from plain file arguments.
func loadSession(cmd *cobra.Command, args []string, cfg types.PipelineConfig) (*session.Session, *types.Manifest, error) {
	ing := pipeline.NewIngestor(cfg.Ingest)

	manifestPath, _ := cmd.Flags().GetString("manifest")
	if manifestPath != "" {
		if len(args) > 0 {
			return nil, nil, fmt.Errorf("provide either file arguments or --manifest, not both")
		}
		m, err := pipeline.LoadManifest(manifestPath)
		if err != nil {
			return nil, nil, err
		}
		s, err := ing.SessionFromManifest(m, filepath.Dir(manifestPath), os.Stderr)
		if err != nil {
			return nil, nil, err
		}
		return s, m, nil
	}

	if len(args) == 0 {
		return nil, nil, fmt.Errorf("provide one or more input files (pdf, png, jpg, jpeg, docx) or --manifest")
	}

	s := session.New()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if _, err := ing.IngestFile(s, filepath.Base(path), data); err != nil {
			fmt.Fprintf(os.Stderr, "rejected: %s (%v)\n", path, err)
		}
	}
	return s, nil, nil
}

// writePreview writes the inline-embedded preview HTML next to a
// generated PDF.
func writePreview(pdfPath string, pdf []byte, height int) error {
	htmlPath := pdfPath + ".html"
	if err := os.WriteFile(htmlPath, []byte(preview.IframeHTML(pdf, height)), 0o644); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	fmt.Printf("preview: %s\n", htmlPath)
	return nil
}
