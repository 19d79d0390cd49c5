// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the document-to-PDF conversion stage.
type ConvertConfig struct {
	// NativeBinary overrides the LibreOffice binary used by the native
	// tier (default: first of "soffice", "libreoffice" found on PATH).
	NativeBinary string `json:"native_binary,omitempty" yaml:"native_binary,omitempty"`

	// DisableNative forces the fallback tier even when a native
	// converter is installed.
	DisableNative bool `json:"disable_native" yaml:"disable_native"`

	// Placeholder is the text painted when nothing can be extracted
	// from a document (default "(no text could be extracted from the document)").
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// IngestConfig holds settings for file and clipping ingestion.
type IngestConfig struct {
	// MinClipHeight is the minimum pixel height images are upscaled to
	// at ingestion (default 540). Zero disables the upscale.
	MinClipHeight int `json:"min_clip_height" yaml:"min_clip_height"`

	// Sharpen controls whether ingested images are sharpened after any
	// upscale (default true).
	Sharpen bool `json:"sharpen" yaml:"sharpen"`
}

// PipelineConfig groups the stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Ingest  IngestConfig  `json:"ingest" yaml:"ingest"`
}

// DefaultPipelineConfig returns the configuration used when no config
// file or flags override it.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Ingest: IngestConfig{
			MinClipHeight: 540,
			Sharpen:       true,
		},
	}
}
