package glyphsrc

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
)

// Sheet is a source of glyphs cut from a single image of 16×16 cells.
type Sheet struct {
	name  string
	img   *image.Paletted
	start glyph.Codepoint
}

var _ Source = (*Sheet)(nil)

// NewSheet loads a sheet image. The top-left cell gets codepoint start.
func NewSheet(path string, start glyph.Codepoint) (*Sheet, error) {
	img, err := decodePNG(path)
	if err != nil {
		return nil, err
	}
	return SheetFromImage(filepath.Base(path), img, start)
}

// SheetFromImage wraps an already decoded sheet image. name is used in
// messages only.
func SheetFromImage(name string, img image.Image, start glyph.Codepoint) (*Sheet, error) {
	b := img.Bounds()
	if b.Dx()%glyph.SheetCellSize != 0 || b.Dy()%glyph.SheetCellSize != 0 {
		return nil, core.InvalidInput("sheet image size must be a multiple of (%d, %d), got (%d, %d)",
			glyph.SheetCellSize, glyph.SheetCellSize, b.Dx(), b.Dy())
	}
	paletted, ok := img.(*image.Paletted)
	if !ok {
		return nil, core.InvalidInput("sheet image '%s' must use indexed color", name)
	}
	tracer().Infof("sheet %s has %d×%d cells, starting at %s", name,
		b.Dx()/glyph.SheetCellSize, b.Dy()/glyph.SheetCellSize, start)
	return &Sheet{name: name, img: paletted, start: start}, nil
}

// Cells is the number of cells in the sheet, blank ones included.
func (src *Sheet) Cells() int {
	b := src.img.Bounds()
	return (b.Dx() / glyph.SheetCellSize) * (b.Dy() / glyph.SheetCellSize)
}

// Palette returns the sheet's palette.
func (src *Sheet) Palette() (color.Palette, error) {
	return src.img.Palette, nil
}

// Walk cuts the sheet into cells, row by row. Every cell consumes a codepoint,
// including blank ones; it is up to the consumer to skip blank cells.
func (src *Sheet) Walk(fn func(Descriptor) error) error {
	b := src.img.Bounds()
	cp := src.start
	for y := b.Min.Y; y < b.Max.Y; y += glyph.SheetCellSize {
		for x := b.Min.X; x < b.Max.X; x += glyph.SheetCellSize {
			cell := glyph.Crop(src.img, image.Rect(x, y, x+glyph.SheetCellSize, y+glyph.SheetCellSize))
			d := Descriptor{
				Codepoint: cp,
				Origin:    fmt.Sprintf("%s cell (%d,%d)", src.name, x-b.Min.X, y-b.Min.Y),
				Cell:      cell,
				Sliced:    true,
			}
			if err := fn(d); err != nil {
				return err
			}
			cp++
		}
	}
	return nil
}
