// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdf-binder/internal/decode"
)

// testImage builds a solid-color decoded image of the given size.
func testImage(w, h int) *decode.DecodedImage {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return &decode.DecodedImage{Pixels: img, Width: w, Height: h}
}

// pageDims reads back the page dimensions of a one-page PDF, in points.
func pageDims(t *testing.T, pdf []byte) (w, h float64) {
	t.Helper()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(pdf), conf)
	if err != nil {
		t.Fatalf("output is not a readable PDF: %v", err)
	}
	dims, err := ctx.PageDims()
	if err != nil {
		t.Fatalf("reading page dimensions: %v", err)
	}
	if len(dims) != 1 {
		t.Fatalf("page count = %d, want 1", len(dims))
	}
	return dims[0].Width, dims[0].Height
}

func TestImagePDF(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "landscape", width: 800, height: 600},
		{name: "portrait", width: 600, height: 800},
		{name: "tiny", width: 2, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf := ImagePDF(testImage(tt.width, tt.height))
			if pdf == nil {
				t.Fatal("ImagePDF returned nil for a valid image")
			}
			// The page size in points equals the pixel size: 1 px = 1 pt,
			// no margins, no DPI rescaling.
			w, h := pageDims(t, pdf)
			if w != float64(tt.width) || h != float64(tt.height) {
				t.Errorf("page size = %.2fx%.2f pt, want %dx%d",
					w, h, tt.width, tt.height)
			}
		})
	}
}

func TestImagePDFInvalid(t *testing.T) {
	tests := []struct {
		name string
		img  *decode.DecodedImage
	}{
		{name: "nil image", img: nil},
		{name: "nil pixels", img: &decode.DecodedImage{Width: 10, Height: 10}},
		{name: "zero width", img: testImage(0, 10)},
		{name: "zero height", img: testImage(10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pdf := ImagePDF(tt.img); pdf != nil {
				t.Errorf("ImagePDF = %d bytes, want nil", len(pdf))
			}
		})
	}
}
