/*
Package cell normalizes glyph cells.

Normalization finds the visible part of a glyph's art, settles the width
class of its cell and derives the glyph's metrics. Cells cut from a sheet are
trimmed to 8 px if nothing is visible beyond the eighth column, and blank
sheet cells are dropped. Loose glyph images keep their width, and must not
be blank: whitespace characters are declared in the whitespace table.

Metric values given explicitly in a glyph's file name override the derived
ones, field by field.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cell

import (
	"image"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/input/glyphsrc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.cell'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.cell")
}

// VisibleBounds returns the smallest rectangle containing all non-background
// pixels of img, relative to img's top-left corner. If img is blank, ok is
// false.
func VisibleBounds(img *image.Paletted) (bbox image.Rectangle, ok bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Min.X, y)+b.Dx()]
		for x, index := range row {
			if index == glyph.Background {
				continue
			}
			p := image.Rect(x, y-b.Min.Y, x+1, y-b.Min.Y+1)
			if !ok {
				bbox, ok = p, true
			} else {
				bbox = bbox.Union(p)
			}
		}
	}
	return
}

// Normalized is a glyph ready for placement.
type Normalized struct {
	Codepoint glyph.Codepoint
	Class     glyph.WidthClass
	Metrics   glyph.Metrics
	Cell      *image.Paletted // Class wide, CellHeight tall, origin (0,0)
	Origin    string
}

// Glyph returns the glyph record for n with placement p.
func (n Normalized) Glyph(p glyph.Placement) glyph.Glyph {
	return glyph.Glyph{
		Codepoint: n.Codepoint,
		Class:     n.Class,
		Metrics:   n.Metrics,
		Placement: p,
	}
}

// CodepointSet answers membership questions for codepoints.
type CodepointSet interface {
	Contains(glyph.Codepoint) bool
}

// Normalizer normalizes glyph descriptors, checking them against the
// whitespace table.
type Normalizer struct {
	whitespace CodepointSet
}

// NewNormalizer creates a normalizer. whitespace may be nil.
func NewNormalizer(whitespace CodepointSet) *Normalizer {
	return &Normalizer{whitespace: whitespace}
}

// Normalize turns a descriptor into a glyph ready for placement. If the
// descriptor is a blank sheet cell, ok is false and the cell is to be skipped.
func (nz *Normalizer) Normalize(d glyphsrc.Descriptor) (n Normalized, ok bool, err error) {
	bbox, visible := VisibleBounds(d.Cell)
	if !visible && d.Sliced {
		tracer().Debugf("skipping blank cell %s for %s", d.Origin, d.Codepoint)
		return n, false, nil
	}
	if nz.whitespace != nil && nz.whitespace.Contains(d.Codepoint) {
		return n, false, core.ConflictError("codepoint %s of '%s' already defined as whitespace",
			d.Codepoint.Hex(), d.Origin)
	}
	if !visible {
		return n, false, core.InvalidInput("glyph image '%s' is blank; declare whitespace characters in the whitespace table",
			d.Origin)
	}
	n.Codepoint = d.Codepoint
	n.Origin = d.Origin
	if d.Sliced {
		n.Class = glyph.Narrow
		if bbox.Max.X > int(glyph.Narrow) {
			n.Class = glyph.Wide
		}
		b := d.Cell.Bounds()
		n.Cell = glyph.Crop(d.Cell, image.Rect(b.Min.X, b.Min.Y, b.Min.X+int(n.Class), b.Min.Y+glyph.CellHeight))
	} else {
		class, isValid := glyph.WidthClassOf(d.Cell.Bounds().Dx())
		if !isValid || d.Cell.Bounds().Dy() != glyph.CellHeight {
			return n, false, core.InvalidInput("glyph image '%s' has invalid size %v", d.Origin, d.Cell.Bounds().Size())
		}
		n.Class = class
		n.Cell = d.Cell
	}
	derived := glyph.Metrics{
		Width:       bbox.Max.X,
		UpperMargin: bbox.Min.Y,
		LowerMargin: bbox.Max.Y,
	}
	n.Metrics = d.Explicit.Apply(derived)
	tracer().Debugf("%s %s: class %d, metrics %+v", n.Codepoint, n.Codepoint.Name(), n.Class, n.Metrics)
	return n, true, nil
}
