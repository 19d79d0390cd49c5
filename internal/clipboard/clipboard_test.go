// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clipboard

import (
	"errors"
	"strings"
	"testing"
)

// fakeExecutor simulates a platform with a configurable set of
// installed capture tools.
type fakeExecutor struct {
	installed map[string]bool
	output    []byte
	outputErr error
	lastCall  []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeExecutor) Output(name string, args ...string) ([]byte, error) {
	f.lastCall = append([]string{name}, args...)
	return f.output, f.outputErr
}

func TestDetectProbeOrder(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		want      string
	}{
		{
			name:      "wayland first",
			installed: map[string]bool{"wl-paste": true, "xclip": true, "pngpaste": true},
			want:      "wl-paste",
		},
		{
			name:      "x11 second",
			installed: map[string]bool{"xclip": true, "pngpaste": true},
			want:      "xclip",
		},
		{
			name:      "macos last",
			installed: map[string]bool{"pngpaste": true},
			want:      "pngpaste",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := detect(&fakeExecutor{installed: tt.installed})
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			if src.Name() != tt.want {
				t.Errorf("Name = %q, want %q", src.Name(), tt.want)
			}
		})
	}
}

func TestDetectNoneInstalled(t *testing.T) {
	_, err := detect(&fakeExecutor{})
	if err == nil {
		t.Fatal("detect succeeded on a platform with no capture tool")
	}
	for _, name := range []string{"wl-paste", "xclip", "pngpaste"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestRead(t *testing.T) {
	exec := &fakeExecutor{
		installed: map[string]bool{"xclip": true},
		output:    []byte("\x89PNG fake image"),
	}
	src, err := detect(exec)
	if err != nil {
		t.Fatal(err)
	}

	data, err := src.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "\x89PNG fake image" {
		t.Errorf("Read = %q, want captured bytes", data)
	}

	call := strings.Join(exec.lastCall, " ")
	if call != "xclip -selection clipboard -t image/png -o" {
		t.Errorf("invocation = %q", call)
	}
}

func TestReadFailures(t *testing.T) {
	t.Run("command error", func(t *testing.T) {
		exec := &fakeExecutor{
			installed: map[string]bool{"wl-paste": true},
			outputErr: errors.New("exit status 1"),
		}
		src, _ := detect(exec)
		if _, err := src.Read(); err == nil {
			t.Error("Read succeeded despite command failure")
		}
	})

	t.Run("empty clipboard", func(t *testing.T) {
		exec := &fakeExecutor{installed: map[string]bool{"wl-paste": true}}
		src, _ := detect(exec)
		if _, err := src.Read(); err == nil {
			t.Error("Read succeeded with no image data")
		}
	})
}
