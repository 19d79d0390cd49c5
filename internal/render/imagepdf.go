// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces single-page PDF buffers from decoded bitmaps
// and lays out plain text onto print-sized canvases for the fallback
// conversion tier.
// See docs/ARCHITECTURE § Rendering.
package render

import (
	"bytes"
	"image/jpeg"
	"image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/pdf-binder/internal/decode"
)

// jpegQuality is the re-encode quality of the high-fidelity image path.
const jpegQuality = 95

// ImagePDF renders a decoded bitmap into a one-page PDF whose page
// width and height in points equal the image's pixel dimensions
// (1 px = 1 pt): no margins, no letterboxing, no DPI rescaling.
//
// The image is re-encoded as high-quality JPEG and drawn filling the
// page; if JPEG encoding fails the bitmap is embedded as PNG instead,
// under the same page-size contract. Returns nil for nil or zero-area
// input, never an error.
func ImagePDF(img *decode.DecodedImage) []byte {
	if img == nil || img.Pixels == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}

	encoded, imageType := encodePage(img)
	if encoded == nil {
		return nil
	}

	w := float64(img.Width)
	h := float64(img.Height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(encoded))
	pdf.ImageOptions("page", 0, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil
	}
	return out.Bytes()
}

// encodePage re-encodes the bitmap for embedding, preferring JPEG and
// falling back to PNG. Returns nil bytes when neither encoder succeeds.
func encodePage(img *decode.DecodedImage) ([]byte, string) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img.Pixels, &jpeg.Options{Quality: jpegQuality}); err == nil {
		return buf.Bytes(), "JPG"
	}

	buf.Reset()
	if err := png.Encode(&buf, img.Pixels); err == nil {
		return buf.Bytes(), "PNG"
	}
	return nil, ""
}
