// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-binder/internal/session"
	"github.com/pdiddy/pdf-binder/pkg/types"
)

// LoadManifest reads a session manifest from a YAML file.
func LoadManifest(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Items) == 0 {
		return nil, fmt.Errorf("manifest %s lists no items", path)
	}
	return &m, nil
}

// SessionFromManifest builds a session from a manifest, reading each
// item's bytes from disk (relative paths resolve against baseDir) and
// applying the per-item overrides. Rejected inputs (unsupported
// extension, undecodable image) are reported to w and left out; an
// unreadable file aborts, since a listed path that cannot be read is a
// caller mistake rather than bad item content.
func (ing *Ingestor) SessionFromManifest(m *types.Manifest, baseDir string, w io.Writer) (*session.Session, error) {
	s := session.New()

	for _, mi := range m.Items {
		path := mi.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading item %s: %w", mi.Path, err)
		}

		name := mi.Name
		if name == "" {
			name = filepath.Base(mi.Path)
		}

		it, err := ing.IngestFile(s, name, data)
		if err != nil {
			fmt.Fprintf(w, "rejected: %s (%v)\n", name, err)
			continue
		}

		if mi.Include != nil {
			it.Include = *mi.Include
		}
		if mi.Order != 0 {
			it.Order = mi.Order
		}
		if mi.Group == types.GroupA {
			it.Group = types.GroupA
		}
	}

	return s, nil
}
