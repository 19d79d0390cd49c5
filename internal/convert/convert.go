// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements Word-document-to-PDF conversion with a
// native tier (platform LibreOffice, when installed) and an
// always-available fallback tier (text extraction painted onto a
// print-sized page).
// See docs/ARCHITECTURE § Conversion.
package convert

import (
	"github.com/pdiddy/pdf-binder/internal/assemble"
	"github.com/pdiddy/pdf-binder/internal/decode"
	"github.com/pdiddy/pdf-binder/internal/render"
	"github.com/pdiddy/pdf-binder/pkg/types"
)

// DefaultPlaceholder is painted when nothing can be extracted from a
// document.
const DefaultPlaceholder = "(no text could be extracted from the document)"

// Converter transforms DOCX bytes into PDF bytes. The production
// implementation shells out to LibreOffice; tests inject fakes.
type Converter interface {
	// Convert renders the document with full fidelity.
	Convert(docx []byte) ([]byte, error)
}

// DocumentRenderer converts Word-style documents to PDF. The native
// converter capability is resolved once at startup and injected here;
// when it is absent or fails, the fallback tier takes over silently.
type DocumentRenderer struct {
	native      Converter
	placeholder string
}

// NewDocumentRenderer builds a renderer around an optional native
// converter. Pass nil when the platform provides none.
func NewDocumentRenderer(native Converter, cfg types.ConvertConfig) *DocumentRenderer {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if cfg.DisableNative {
		native = nil
	}
	return &DocumentRenderer{native: native, placeholder: placeholder}
}

// NativeAvailable reports whether the high-fidelity tier is in use.
func (r *DocumentRenderer) NativeAvailable() bool {
	return r.native != nil
}

// Render converts document bytes to a PDF buffer. The native tier is
// authoritative when it succeeds; any native failure degrades to the
// fallback tier without surfacing an error. The result is always a
// non-empty buffer, even for completely unparseable input (worst case:
// a near-blank placeholder page).
func (r *DocumentRenderer) Render(data []byte, title string) []byte {
	if r.native != nil {
		if pdf, err := r.native.Convert(data); err == nil && len(pdf) > 0 {
			return pdf
		}
	}

	text := decode.WordText(data)
	if text == "" {
		text = r.placeholder
	}

	if pdf := render.ImagePDF(render.TextPage(text, title)); pdf != nil {
		return pdf
	}

	// The text canvas has fixed non-zero dimensions, so this path is not
	// reachable in practice; keep the non-nil contract regardless.
	return assemble.Merge(nil)
}
