// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble concatenates per-item PDF buffers into one document.
// See docs/ARCHITECTURE § Assembly.
package assemble

import (
	"bytes"
	"io"

	"github.com/jung-kurt/gofpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Default page size of the blank page appended when nothing survives a
// merge, in points.
const (
	blankPageWidth  = 800
	blankPageHeight = 600
)

// Merge concatenates the pages of the given PDF buffers in input order.
// A buffer that fails to parse contributes zero pages and does not
// abort the merge; one bad input must not lose the rest. If no pages
// survive (empty input, or every buffer corrupt), the result is a
// single blank page so the returned document is always openable.
// The result is never nil and never has zero pages.
func Merge(buffers [][]byte) []byte {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var survivors []io.ReadSeeker
	for _, data := range buffers {
		ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), conf)
		if err != nil {
			continue
		}
		if err := ctx.EnsurePageCount(); err != nil || ctx.PageCount == 0 {
			continue
		}
		survivors = append(survivors, bytes.NewReader(data))
	}

	if len(survivors) == 0 {
		return blankPage()
	}

	var out bytes.Buffer
	if err := pdfapi.MergeRaw(survivors, &out, false, conf); err != nil {
		return blankPage()
	}
	return out.Bytes()
}

// blankPage builds a one-page empty PDF of the default size.
func blankPage() []byte {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: blankPageWidth, Ht: blankPageHeight},
	})
	pdf.AddPage()

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil
	}
	return out.Bytes()
}
