// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode turns raw input bytes of a declared kind into the
// pipeline's internal representations: decoded bitmaps, extracted
// document text, and validated PDF pages.
// See docs/ARCHITECTURE § Format Decoders.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ErrInvalidImage reports an unrecognized or corrupt image byte stream.
var ErrInvalidImage = errors.New("unrecognized or corrupt image data")

// DecodedImage is a bitmap normalized to a fixed color model, oriented
// the way the capture device intended.
type DecodedImage struct {
	// Pixels is the normalized bitmap (NRGBA, fully opaque for the
	// formats we accept).
	Pixels *image.NRGBA

	// Width and Height are the pixel dimensions after orientation
	// correction.
	Width  int
	Height int
}

// Image decodes PNG or JPEG bytes, applies the EXIF orientation the
// bytes carry, and normalizes the result. It returns ErrInvalidImage
// (wrapped) for anything that cannot be decoded; it never panics on
// hostile input.
func Image(data []byte) (*DecodedImage, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	oriented := applyOrientation(img, orientationOf(data))
	b := oriented.Bounds()

	return &DecodedImage{
		Pixels: oriented,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// orientationOf reads the EXIF orientation tag, returning 1 (upright)
// when the bytes carry no usable EXIF segment.
func orientationOf(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// applyOrientation maps the eight EXIF orientation values onto the
// transforms that undo them, normalizing to NRGBA as a side effect.
func applyOrientation(img image.Image, orientation int) *image.NRGBA {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return imaging.Clone(img)
	}
}
