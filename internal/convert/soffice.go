// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Binary names probed for the native tier, in order.
var sofficeBinaries = []string{"soffice", "libreoffice"}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

var defaultExec executor = &osExecutor{}

// SofficeConverter converts DOCX to PDF by invoking LibreOffice in
// headless mode through a scratch-directory round trip. Scratch files
// are removed on every exit path.
type SofficeConverter struct {
	bin  string
	exec executor
}

// Name returns the resolved converter binary.
func (c *SofficeConverter) Name() string { return c.bin }

// DetectSoffice resolves the native converter capability once at
// startup. An explicit binary overrides the probe order; an error means
// the platform provides no native converter and the caller should run
// with the fallback tier only.
func DetectSoffice(binary string) (*SofficeConverter, error) {
	return detectSoffice(binary, defaultExec)
}

func detectSoffice(binary string, exec executor) (*SofficeConverter, error) {
	candidates := sofficeBinaries
	if binary != "" {
		candidates = []string{binary}
	}

	for _, bin := range candidates {
		if _, err := exec.LookPath(bin); err == nil {
			return &SofficeConverter{bin: bin, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf("no native document converter available: none of %v found on PATH", candidates)
}

// Convert writes the document to a scratch directory, runs the
// converter, and reads back the produced PDF.
func (c *SofficeConverter) Convert(docx []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "pdf-binder-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "input.docx")
	if err := os.WriteFile(src, docx, 0o644); err != nil {
		return nil, fmt.Errorf("writing scratch document: %w", err)
	}

	if err := c.exec.Run(c.bin, "--headless", "--convert-to", "pdf", "--outdir", dir, src); err != nil {
		return nil, fmt.Errorf("running %s: %w", c.bin, err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "input.pdf"))
	if err != nil {
		return nil, fmt.Errorf("reading converted PDF: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s produced an empty PDF", c.bin)
	}
	return out, nil
}
