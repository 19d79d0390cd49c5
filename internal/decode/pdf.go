// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"bytes"
	"errors"
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrInvalidPDF reports a buffer that cannot be parsed as a PDF.
var ErrInvalidPDF = errors.New("unreadable or corrupt PDF data")

// pdfConfiguration returns the relaxed-validation configuration used for
// all PDF reads. Inputs come from arbitrary user files, so strict
// validation would reject documents every desktop viewer opens.
func pdfConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PDFPageCount parses data as a PDF and returns its page count. Corrupt
// buffers yield ErrInvalidPDF (wrapped); the merge stage treats that as
// "contributes zero pages", not a fatal condition.
func PDFPageCount(data []byte) (int, error) {
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), pdfConfiguration())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return ctx.PageCount, nil
}
