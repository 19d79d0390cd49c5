// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-binder/pkg/types"
)

// ErrUnsupportedType reports a filename whose extension is outside the
// supported set.
var ErrUnsupportedType = errors.New("unsupported file type")

// KindForFilename resolves an item kind from a filename extension.
// The supported set is closed: pdf, png, jpg, jpeg, docx. Anything else
// is rejected at ingestion with ErrUnsupportedType.
func KindForFilename(name string) (types.ItemKind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "pdf":
		return types.KindPDF, nil
	case "png", "jpg", "jpeg":
		return types.KindImage, nil
	case "docx":
		return types.KindDocument, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}
