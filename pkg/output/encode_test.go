package output

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestEncodePPM(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(0.25, 0.64, 0.81))
	fb.Set(1, 0, core.NewVec3(1, 1, 1))
	fb.Set(1, 1, core.NewVec3(0, 0.25, 4))

	var buf bytes.Buffer
	if err := EncodePPM(&buf, fb); err != nil {
		t.Fatal(err)
	}

	expected := "P3\n2 2\n255\n" +
		"128 204 230\n" +
		"255 255 255\n" +
		"0 0 0\n" +
		"0 128 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM:\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestEncodePPM_LineCount(t *testing.T) {
	fb := renderer.NewFramebuffer(7, 3)

	var buf bytes.Buffer
	if err := EncodePPM(&buf, fb); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3+7*3 {
		t.Errorf("Expected %d lines, got %d", 3+7*3, len(lines))
	}
	if lines[1] != "7 3" {
		t.Errorf("Expected dimensions line \"7 3\", got %q", lines[1])
	}
}

func TestEncodePNGPreview(t *testing.T) {
	fb := renderer.NewFramebuffer(40, 20)
	for row := 0; row < 20; row++ {
		for x := 0; x < 40; x++ {
			fb.Set(x, row, core.NewVec3(0.5, 0.5, 0.5))
		}
	}

	tests := []struct {
		name         string
		width        int
		expectedSize [2]int
	}{
		{"Downscaled", 10, [2]int{10, 5}},
		{"Never upscaled", 100, [2]int{40, 20}},
		{"Zero keeps size", 0, [2]int{40, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodePNGPreview(&buf, fb, tt.width); err != nil {
				t.Fatal(err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("Preview is not a valid PNG: %v", err)
			}
			size := [2]int{img.Bounds().Dx(), img.Bounds().Dy()}
			if size != tt.expectedSize {
				t.Errorf("Expected size %v, got %v", tt.expectedSize, size)
			}
		})
	}
}

func TestBuildArtifacts(t *testing.T) {
	fb := renderer.NewFramebuffer(4, 2)

	artifacts, err := BuildArtifacts(fb, "default-abc", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("Expected PPM and PNG artifacts, got %d", len(artifacts))
	}
	if artifacts[0].Name != "default-abc.ppm" || artifacts[0].ContentType != ContentTypePPM {
		t.Errorf("Unexpected PPM artifact %s (%s)", artifacts[0].Name, artifacts[0].ContentType)
	}
	if !bytes.HasPrefix(artifacts[0].Data, []byte("P3\n4 2\n255\n")) {
		t.Errorf("PPM artifact has wrong header: %q", artifacts[0].Data[:12])
	}
	if artifacts[1].Name != "default-abc.png" || artifacts[1].ContentType != ContentTypePNG {
		t.Errorf("Unexpected PNG artifact %s (%s)", artifacts[1].Name, artifacts[1].ContentType)
	}

	withoutPreview, err := BuildArtifacts(fb, "x", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(withoutPreview) != 1 {
		t.Errorf("Expected only the PPM without a preview width, got %d artifacts", len(withoutPreview))
	}
}
