// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard implements platform clipboard image capture. The
// capability is probed once at startup; platforms without a capture
// tool simply run without the clip feature.
// See docs/ARCHITECTURE § Clipping Import.
package clipboard

import (
	"fmt"
	"os/exec"
)

// Source provides clipboard image capture as PNG bytes.
type Source interface {
	// Name returns the capture tool name ("wl-paste", "xclip", "pngpaste").
	Name() string

	// Available reports whether the tool exists on PATH.
	Available() bool

	// Read captures the current clipboard image. It fails when the
	// clipboard holds no image.
	Read() ([]byte, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec executor = &osExecutor{}

// source implements Source for one capture binary. The tools differ
// only in binary name and arguments.
type source struct {
	bin  string
	args []string
	exec executor
}

func (s *source) Name() string { return s.bin }

func (s *source) Available() bool {
	_, err := s.exec.LookPath(s.bin)
	return err == nil
}

func (s *source) Read() ([]byte, error) {
	out, err := s.exec.Output(s.bin, s.args...)
	if err != nil {
		return nil, fmt.Errorf("capturing clipboard with %s: %w", s.bin, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no image data; is an image on the clipboard?", s.bin)
	}
	return out, nil
}

func newSources(exec executor) []*source {
	return []*source{
		{bin: "wl-paste", args: []string{"--type", "image/png"}, exec: exec},
		{bin: "xclip", args: []string{"-selection", "clipboard", "-t", "image/png", "-o"}, exec: exec},
		{bin: "pngpaste", args: []string{"-"}, exec: exec},
	}
}

// Detect returns the first available capture tool, probing Wayland,
// X11, and macOS tools in that order. An error means the host platform
// exposes no clipboard image capture.
func Detect() (Source, error) {
	return detect(defaultExec)
}

func detect(exec executor) (Source, error) {
	sources := newSources(exec)
	for _, s := range sources {
		if s.Available() {
			return s, nil
		}
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.bin)
	}
	return nil, fmt.Errorf("no clipboard image source available: none of %v found on PATH", names)
}
