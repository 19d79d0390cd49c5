// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pdiddy/pdf-binder/internal/decode"
)

// Canvas geometry of the fallback document page: roughly A4 at 200 DPI,
// with a 40 px margin and a 16 px line height.
const (
	textPageWidth  = 1654
	textPageHeight = 2339
	textMargin     = 40
	textLineHeight = 16
)

// TextPage lays out plain text onto a fixed-size white canvas using
// greedy word-wrap: a running line is extended word by word while its
// measured width stays under the usable width; exceeding it flushes the
// line and starts the next one a line height further down. A non-empty
// title is drawn first, followed by a blank line of spacing.
//
// The canvas is sized so that passing it through ImagePDF yields a
// print-page-equivalent single-page PDF.
func TextPage(text, title string) *decode.DecodedImage {
	canvas := image.NewNRGBA(image.Rect(0, 0, textPageWidth, textPageHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	ascent := face.Metrics().Ascent.Ceil()
	maxWidth := textPageWidth - 2*textMargin
	y := textMargin

	drawLine := func(line string) {
		drawer.Dot = fixed.P(textMargin, y+ascent)
		drawer.DrawString(line)
		y += textLineHeight
	}

	if title != "" {
		drawLine(title)
		y += textLineHeight
	}

	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Split(para, " ") {
			test := strings.TrimSpace(line + " " + word)
			if font.MeasureString(face, test).Ceil() > maxWidth {
				drawLine(line)
				line = word
			} else {
				line = test
			}
		}
		drawLine(line)
	}

	return &decode.DecodedImage{
		Pixels: canvas,
		Width:  textPageWidth,
		Height: textPageHeight,
	}
}
