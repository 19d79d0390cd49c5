// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// documentXML mirrors the fragment of word/document.xml we care about:
// paragraphs, their runs, and the text elements inside the runs.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// WordText extracts plain paragraph text from a DOCX container.
// Extraction is best-effort: a buffer that is not a readable DOCX yields
// the empty string, never an error. Callers treat "" as "nothing could
// be extracted".
func WordText(data []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return ""
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return ""
		}
		return paragraphText(content)
	}
	return ""
}

// paragraphText flattens the document XML into one string with a
// newline per paragraph.
func paragraphText(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var b strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				b.WriteString(t.Content)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
