// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// docxBytes builds a minimal DOCX container holding the given
// paragraphs.
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	document := fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body></w:document>`, body.String())

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(document)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWordText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "single paragraph",
			data: docxBytes(t, "Hello world"),
			want: "Hello world",
		},
		{
			name: "multiple paragraphs joined by newline",
			data: docxBytes(t, "First paragraph", "Second paragraph"),
			want: "First paragraph\nSecond paragraph",
		},
		{
			name: "not a zip archive",
			data: []byte("plain text, not a docx"),
			want: "",
		},
		{
			name: "empty buffer",
			data: nil,
			want: "",
		},
		{
			name: "zip without document.xml",
			data: zipWithout(t),
			want: "",
		},
		{
			name: "malformed document xml",
			data: zipWith(t, "word/document.xml", "<w:document><unclosed"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordText(tt.data); got != tt.want {
				t.Errorf("WordText = %q, want %q", got, tt.want)
			}
		})
	}
}

// zipWith builds a zip archive with one named entry.
func zipWith(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zipWithout(t *testing.T) []byte {
	return zipWith(t, "unrelated.txt", "nothing to see")
}
