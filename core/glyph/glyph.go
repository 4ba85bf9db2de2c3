/*
Package glyph holds the data model of a chapter title font.

A chapter title font consists of glyphs, whitespace characters and kerning
pairs, all keyed by Unicode codepoint. Glyph art lives in fixed-height cells,
which are packed into texture pages of 8×8 px tiles. The constants of this
package form the contract with the downstream runtime and must not be changed
without changing the runtime as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Fixed dimensions of cells, tiles and pages.
const (
	CellHeight       = 16                     // height of every glyph cell in pixels
	TileSize         = 8                      // tiles are TileSize × TileSize pixels
	PageColumns      = 32                     // tile columns per page
	PageRows         = 8                      // tile rows per page
	PageWidth        = PageColumns * TileSize // 256 px
	PageHeight       = PageRows * TileSize    // 64 px
	MaxPageTiles     = PageColumns * PageRows // 256 tiles
	MaxPages         = 16                     // page ceiling of the runtime
	LookupBucketSize = 32                     // glyphs per coarse lookup entry
	CellRows         = CellHeight / TileSize  // tile rows spanned by a cell
	SheetCellSize    = CellHeight             // sheets are cut into square cells
)

// GeneratedPrefix starts the names of all files generated for a font.
const GeneratedPrefix = "CTF_Generated_"

// Codepoint identifies a glyph or a whitespace character.
type Codepoint int

// Hex returns the codepoint as six upper-case hex digits, the format used in
// every generated label.
func (cp Codepoint) Hex() string {
	return fmt.Sprintf("%06X", int(cp))
}

func (cp Codepoint) String() string {
	return "U+" + cp.Hex()
}

// Name returns the Unicode character name of cp, if there is one. It is
// intended for tracing only.
func (cp Codepoint) Name() string {
	if cp < 0 || cp > unicode.MaxRune {
		return "<invalid>"
	}
	if name := runenames.Name(rune(cp)); name != "" {
		return name
	}
	return "<unnamed>"
}

// WidthClass is the width of a glyph's cell in pixels.
type WidthClass int

// Glyph cells are either 8 or 16 pixels wide.
const (
	Narrow WidthClass = 8
	Wide   WidthClass = 16
)

// WidthClassOf returns the width class for a cell width in pixels.
func WidthClassOf(px int) (WidthClass, bool) {
	switch WidthClass(px) {
	case Narrow:
		return Narrow, true
	case Wide:
		return Wide, true
	}
	return 0, false
}

// Tiles returns the number of 8×8 tiles a cell of this class occupies.
func (w WidthClass) Tiles() int {
	return int(w) * CellHeight / (TileSize * TileSize)
}

// Columns returns the number of tile columns a cell of this class spans.
func (w WidthClass) Columns() int {
	return int(w) / TileSize
}

// IsWide reports whether the cell is 16 px wide. This is the cell width flag
// of the metadata table.
func (w WidthClass) IsWide() bool {
	return w == Wide
}

// Metrics are the metric values reported to the runtime for a glyph.
// Margins are measured from the top of the cell: UpperMargin is the first
// visible row, LowerMargin is one past the last visible row.
type Metrics struct {
	Width       int
	UpperMargin int
	LowerMargin int
}

// Overrides are explicit metric values given in a glyph's file name.
// A nil field means that the derived value is used.
type Overrides struct {
	Width       *int
	UpperMargin *int
	LowerMargin *int
}

// IsEmpty is true if no field is overridden.
func (o Overrides) IsEmpty() bool {
	return o.Width == nil && o.UpperMargin == nil && o.LowerMargin == nil
}

// Apply returns m with every overridden field replaced. Fields are replaced
// independently of each other.
func (o Overrides) Apply(m Metrics) Metrics {
	if o.Width != nil {
		m.Width = *o.Width
	}
	if o.UpperMargin != nil {
		m.UpperMargin = *o.UpperMargin
	}
	if o.LowerMargin != nil {
		m.LowerMargin = *o.LowerMargin
	}
	return m
}

// Placement locates a glyph's cell within the set of font pages. Tile is the
// row-major index of the cell's top-left tile.
type Placement struct {
	Page int
	Tile int
}

// Glyph is the final record for a visible character.
type Glyph struct {
	Codepoint Codepoint
	Class     WidthClass
	Metrics
	Placement
}

// WhitespaceEntry declares a character without visible pixels.
type WhitespaceEntry struct {
	Codepoint Codepoint
	Width     int
}

// KerningPair adjusts the spacing between two adjacent glyphs. A negative
// adjustment moves the right glyph closer to the left one.
type KerningPair struct {
	Left       Codepoint
	Right      Codepoint
	Adjustment int
}

// KerningEntry is the right-hand side of a kerning pair, as stored in a
// kerning block.
type KerningEntry struct {
	Right      Codepoint
	Adjustment int
}

// KerningBlock collects all kerning entries for one left-hand codepoint, in
// input order.
type KerningBlock struct {
	Left    Codepoint
	Entries []KerningEntry
}
