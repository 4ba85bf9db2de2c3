// Package glyphtest builds indexed glyph cells, sheets and PNG fixtures for
// tests.
package glyphtest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Palette is a small indexed palette. Index 0 is the transparent background.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 0},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0x40, 0x40, 0x40, 0xff},
	color.RGBA{0xc0, 0x20, 0x20, 0xff},
}

// Cell returns a blank indexed image of size w×h.
func Cell(w, h int) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, w, h), Palette)
}

// Fill sets every pixel of r in img to palette index 1.
func Fill(img *image.Paletted, r image.Rectangle) *image.Paletted {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
	return img
}

// Box returns a w×16 cell with the block r filled.
func Box(w int, r image.Rectangle) *image.Paletted {
	return Fill(Cell(w, 16), r)
}

// WritePNG encodes img into dir/name and returns the full path.
func WritePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("cannot create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("cannot encode %s: %v", path, err)
	}
	return path
}

// WriteFile writes a text fixture into dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// ReadPNG decodes the image at path.
func ReadPNG(t testing.TB, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cannot open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("cannot decode %s: %v", path, err)
	}
	return img
}
