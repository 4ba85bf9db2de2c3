/*
Package glyphsrc enumerates the glyphs of a chapter title font.

Glyphs come from one of two kinds of sources:

▪︎ a folder of loose glyph images, one per glyph, where the file name carries
the codepoint and optional explicit metrics:

	<codepoint>[ <width>][ <upper margin>][ <lower margin>].png

All numbers are hexadecimal and may be padded with zeros. A field may only be
given if all fields before it are given.

▪︎ a sheet image made up of 16×16 cells, read left to right and top to bottom.
The first cell carries a caller-supplied starting codepoint, every following
cell the next codepoint, blank or not.

Both sources deliver glyph descriptors in ascending codepoint order. Sources
may be walked any number of times; images of loose glyphs are decoded one
at a time while walking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphsrc

import (
	"image"
	"image/color"

	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.input'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.input")
}

// Descriptor describes a candidate glyph, before normalization.
type Descriptor struct {
	Codepoint glyph.Codepoint
	Origin    string          // file name or sheet cell, for messages
	Cell      *image.Paletted // the glyph's art; bounds start at (0,0)
	Sliced    bool            // cut from a sheet; cell width still to be determined
	Explicit  glyph.Overrides // metrics given by the file name
}

// Source is a restartable sequence of glyph descriptors, sorted by codepoint.
type Source interface {
	// Palette is the palette to use for font pages.
	Palette() (color.Palette, error)
	// Walk calls fn for every descriptor in ascending codepoint order.
	// Walking stops at the first error, which is returned.
	Walk(fn func(Descriptor) error) error
}
