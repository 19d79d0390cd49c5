// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview embeds PDF buffers as self-contained inline document
// content for live previews.
package preview

import (
	"encoding/base64"
	"fmt"
)

// DataURI encodes a PDF buffer as a data: URI suitable for inline
// embedding. The result is self-contained; no file needs to exist.
func DataURI(pdf []byte) string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf)
}

// IframeHTML wraps the embedded PDF in a minimal HTML page with an
// iframe of the given pixel height.
func IframeHTML(pdf []byte, height int) string {
	return fmt.Sprintf(`<iframe src=%q width="100%%" height="%d"
        style="border:1px solid #ddd;border-radius:10px"></iframe>
`, DataURI(pdf), height)
}
