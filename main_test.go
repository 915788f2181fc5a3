package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRenderCommand_WritesOutputs(t *testing.T) {
	out := t.TempDir()
	args := []string{"pathtracer", "render",
		"--scene", "default",
		"--width", "16",
		"--spp", "1",
		"--depth", "3",
		"--threads", "2",
		"--preview-width", "8",
		"--env-file", "",
		"--out", out,
	}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	var ppm, png int
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".ppm":
			ppm++
			data, err := os.ReadFile(filepath.Join(out, entry.Name()))
			if err != nil {
				t.Fatal(err)
			}
			// 16 wide at 16:9 is 9 rows
			if !strings.HasPrefix(string(data), "P3\n16 9\n255\n") {
				t.Errorf("Unexpected PPM header %q", string(data[:14]))
			}
			if !strings.HasPrefix(entry.Name(), "default-") {
				t.Errorf("Expected output named after the scene, got %s", entry.Name())
			}
		case ".png":
			png++
		}
	}
	if ppm != 1 || png != 1 {
		t.Errorf("Expected one PPM and one PNG, got %d and %d", ppm, png)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"Unknown scene", []string{"--scene", "nonexistent"}, scene.ErrUnknownScene},
		{"Invalid width", []string{"--width", "-4"}, config.ErrInvalidConfig},
		{"Invalid BVH policy", []string{"--bvh", "median", "--width", "4"}, config.ErrInvalidConfig},
		{"Upload without bucket", []string{"--upload", "--width", "4"}, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"pathtracer", "render", "--env-file", "", "--out", t.TempDir()}, tt.args...)
			err := newApp().Run(args)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	if err := newApp().Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Errorf("scenes command failed: %v", err)
	}
}
