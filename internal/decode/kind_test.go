// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"errors"
	"testing"

	"github.com/pdiddy/pdf-binder/pkg/types"
)

func TestKindForFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     types.ItemKind
	}{
		{name: "pdf", filename: "report.pdf", want: types.KindPDF},
		{name: "pdf uppercase", filename: "REPORT.PDF", want: types.KindPDF},
		{name: "png", filename: "scan.png", want: types.KindImage},
		{name: "jpg", filename: "photo.jpg", want: types.KindImage},
		{name: "jpeg", filename: "photo.jpeg", want: types.KindImage},
		{name: "docx", filename: "letter.docx", want: types.KindDocument},
		{name: "mixed case extension", filename: "letter.DocX", want: types.KindDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindForFilename(tt.filename)
			if err != nil {
				t.Fatalf("KindForFilename(%q): %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("KindForFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestKindForFilenameUnsupported(t *testing.T) {
	for _, filename := range []string{"notes.txt", "archive.zip", "noextension", "legacy.doc", ""} {
		if _, err := KindForFilename(filename); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("KindForFilename(%q) error = %v, want ErrUnsupportedType", filename, err)
		}
	}
}
