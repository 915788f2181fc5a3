package output

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EncodePPM writes fb as a plain-text P3 pixmap, top row first, one
// "R G B" line per pixel
func EncodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for row := 0; row < fb.Height; row++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.RGBAt(x, row)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// EncodePNG writes fb as a full size PNG
func EncodePNG(w io.Writer, fb *renderer.Framebuffer) error {
	return png.Encode(w, fb.Image())
}

// EncodePNGPreview writes a PNG thumbnail of fb scaled to width pixels with
// the aspect ratio preserved. Images narrower than width are not upscaled.
func EncodePNGPreview(w io.Writer, fb *renderer.Framebuffer, width int) error {
	var img image.Image = fb.Image()
	if width > 0 && width < fb.Width {
		img = resize.Resize(uint(width), 0, img, resize.Lanczos3)
	}
	return png.Encode(w, img)
}

// Artifact is a named, encoded render output
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Content types of the artifacts produced by BuildArtifacts
const (
	ContentTypePPM = "image/x-portable-pixmap"
	ContentTypePNG = "image/png"
)

// BuildArtifacts encodes fb as baseName.ppm and, when previewWidth is
// positive, a baseName.png preview
func BuildArtifacts(fb *renderer.Framebuffer, baseName string, previewWidth int) ([]Artifact, error) {
	var ppm bytes.Buffer
	if err := EncodePPM(&ppm, fb); err != nil {
		return nil, fmt.Errorf("encoding PPM: %w", err)
	}
	artifacts := []Artifact{{Name: baseName + ".ppm", ContentType: ContentTypePPM, Data: ppm.Bytes()}}

	if previewWidth > 0 {
		var preview bytes.Buffer
		if err := EncodePNGPreview(&preview, fb, previewWidth); err != nil {
			return nil, fmt.Errorf("encoding PNG preview: %w", err)
		}
		artifacts = append(artifacts, Artifact{Name: baseName + ".png", ContentType: ContentTypePNG, Data: preview.Bytes()})
	}

	return artifacts, nil
}
