// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/pdf-binder/internal/decode"
	"github.com/pdiddy/pdf-binder/internal/session"
	"github.com/pdiddy/pdf-binder/pkg/types"
)

// clipNamePattern matches everything a clipping filename may not carry.
var clipNamePattern = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeClipName turns a user-chosen clipping name into a safe PNG
// filename: non-alphanumeric characters other than underscore and
// hyphen become underscores, and the .png extension is forced.
func SanitizeClipName(name string) string {
	name = strings.TrimSuffix(name, ".png")
	name = clipNamePattern.ReplaceAllString(name, "_")
	if name == "" {
		name = "clipping"
	}
	return name + ".png"
}

// Ingestor admits files and clippings into a session, applying the
// extension gate and the image capture prep.
type Ingestor struct {
	cfg types.IngestConfig
}

// NewIngestor builds an ingestor with the given settings.
func NewIngestor(cfg types.IngestConfig) *Ingestor {
	return &Ingestor{cfg: cfg}
}

// IngestFile admits one uploaded file. The kind is derived from the
// filename extension; unsupported extensions and undecodable images are
// rejected with an error and nothing is added to the session. Image
// uploads are treated as screen clippings: upscaled to the minimum
// capture height, sharpened, and re-encoded as PNG, keeping the
// original name.
func (ing *Ingestor) IngestFile(s *session.Session, name string, data []byte) (*types.Item, error) {
	kind, err := decode.KindForFilename(name)
	if err != nil {
		return nil, err
	}

	if kind == types.KindImage {
		prepped, err := ing.prepImage(data)
		if err != nil {
			return nil, fmt.Errorf("invalid image %s: %w", name, err)
		}
		data = prepped
	}

	return s.Add(name, kind, data), nil
}

// IngestClipping admits a clipboard capture under a sanitized name.
func (ing *Ingestor) IngestClipping(s *session.Session, name string, data []byte) (*types.Item, error) {
	prepped, err := ing.prepImage(data)
	if err != nil {
		return nil, fmt.Errorf("invalid clipping %s: %w", name, err)
	}
	return s.Add(SanitizeClipName(name), types.KindClipping, prepped), nil
}

// prepImage decodes, upscales short captures to the minimum height
// (preserving aspect ratio), sharpens, and re-encodes as PNG. The
// session stores the re-encoded bytes; the original buffer is not
// retained.
func (ing *Ingestor) prepImage(data []byte) ([]byte, error) {
	img, err := decode.Image(data)
	if err != nil {
		return nil, err
	}

	var out image.Image = img.Pixels

	if minH := ing.cfg.MinClipHeight; minH > 0 && img.Height > 0 && img.Height < minH {
		scale := float64(minH) / float64(img.Height)
		newW := int(float64(img.Width) * scale)
		if newW < 1 {
			newW = 1
		}
		out = imaging.Resize(out, newW, minH, imaging.Lanczos)
	}

	if ing.cfg.Sharpen {
		out = imaging.Sharpen(out, 1.0)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("re-encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
