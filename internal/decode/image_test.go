// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// pngBytes encodes a solid-color PNG of the given dimensions.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name:  "valid png",
			data:  pngBytes(t, 800, 600),
			wantW: 800,
			wantH: 600,
		},
		{
			name:    "corrupt bytes",
			data:    []byte("definitely not an image"),
			wantErr: true,
		},
		{
			name:    "empty buffer",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "truncated png",
			data:    pngBytes(t, 100, 100)[:20],
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Image(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, ErrInvalidImage) {
					t.Errorf("error %v should wrap ErrInvalidImage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Width != tt.wantW || img.Height != tt.wantH {
				t.Errorf("dimensions = %dx%d, want %dx%d", img.Width, img.Height, tt.wantW, tt.wantH)
			}
			if img.Pixels == nil {
				t.Error("decoded image has no pixels")
			}
		})
	}
}

func TestImageJPEG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatal(err)
	}

	img, err := Image(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width != 64 || img.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", img.Width, img.Height)
	}
}

// TestApplyOrientation checks that the rotating orientations swap the
// image dimensions and the flipping ones preserve them.
func TestApplyOrientation(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))

	swapped := map[int]bool{5: true, 6: true, 7: true, 8: true}
	for orientation := 1; orientation <= 8; orientation++ {
		out := applyOrientation(src, orientation)
		b := out.Bounds()
		wantW, wantH := 40, 20
		if swapped[orientation] {
			wantW, wantH = 20, 40
		}
		if b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("orientation %d: dimensions = %dx%d, want %dx%d",
				orientation, b.Dx(), b.Dy(), wantW, wantH)
		}
	}
}

// TestApplyOrientationRotate checks one rotation concretely: a single
// red pixel at the top-left of a 2x1 image must end up at the top after
// undoing a 90° clockwise camera rotation (orientation 6).
func TestApplyOrientationRotate(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	red := color.NRGBA{R: 0xff, A: 0xff}
	src.SetNRGBA(0, 0, red)

	out := applyOrientation(src, 6)
	if got := out.NRGBAAt(0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want %v", got, red)
	}
}
