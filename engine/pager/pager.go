/*
Package pager packs glyph cells into font pages.

A font page is a 256×64 px indexed canvas, addressed as 32×8 tiles of 8×8 px.
Cells are 16 px tall and thus span two tile rows. The allocator places cells
row by row, from left to right, in the order they arrive; the order is part
of the output contract, as every glyph's tile index depends on it.

A glyph's tile index is the row-major index of its top-left tile,
row × 32 + column. When a cell does not fit into the rest of a row, the
allocator wraps to the next pair of tile rows. When a page runs out of tiles
(or rows), it is sealed and a fresh page is started. At most 16 pages may be
created.

Allocator states are

	Idle → Placing → (PageFull → Placing)* → Done

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pager

import (
	"image"
	"image/color"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/cell"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.pager'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.pager")
}

// State is the state of an allocator.
type State int

// Allocator states
const (
	Idle State = iota
	Placing
	PageFull
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Placing:
		return "Placing"
	case PageFull:
		return "PageFull"
	case Done:
		return "Done"
	}
	return "<unknown state>"
}

// Slot records a cell placed on a page.
type Slot struct {
	Codepoint glyph.Codepoint
	Tile      int
	Class     glyph.WidthClass
}

// Page is a font page. Pages handed out by an allocator are sealed and must
// not be changed.
type Page struct {
	index  int
	canvas *image.Paletted
	slots  []Slot
	tiles  int
}

func newPage(index int, palette color.Palette) *Page {
	return &Page{
		index:  index,
		canvas: image.NewPaletted(image.Rect(0, 0, glyph.PageWidth, glyph.PageHeight), palette),
	}
}

// Index is the page's ordinal number.
func (p *Page) Index() int {
	return p.index
}

// Image returns the page's canvas.
func (p *Page) Image() image.Image {
	return p.canvas
}

// Slots lists the cells on the page in placement order.
func (p *Page) Slots() []Slot {
	return append([]Slot(nil), p.slots...)
}

// Tiles is the number of tiles occupied by cells.
func (p *Page) Tiles() int {
	return p.tiles
}

// IsBlank is true if no pixel of the page is visible.
func (p *Page) IsBlank() bool {
	_, visible := cell.VisibleBounds(p.canvas)
	return !visible
}

// Allocator places normalized cells onto pages.
type Allocator struct {
	palette  color.Palette
	sealed   []*Page
	current  *Page
	col, row int // cursor in tile units
	state    State
}

// New creates an allocator whose pages use palette.
func New(palette color.Palette) *Allocator {
	return &Allocator{palette: palette, state: Idle}
}

// State returns the allocator's current state.
func (a *Allocator) State() State {
	return a.state
}

// Place puts a cell on the current page and returns its placement. Cells
// must be given in ascending codepoint order.
func (a *Allocator) Place(n cell.Normalized) (glyph.Placement, error) {
	if a.state == Done {
		return glyph.Placement{}, core.Error(core.EINTERNAL, "cannot place %s: allocator is done", n.Codepoint)
	}
	required := n.Class.Tiles()
	if required <= 0 || required > glyph.MaxPageTiles {
		return glyph.Placement{}, core.CapacityError("glyph '%s' needs %d tiles, a page holds %d",
			n.Origin, required, glyph.MaxPageTiles)
	}
	if a.current == nil {
		a.current = newPage(0, a.palette)
		a.state = Placing
	}
	if required+a.offset() > glyph.MaxPageTiles {
		if err := a.flush(n); err != nil {
			return glyph.Placement{}, err
		}
	}
	if a.col*glyph.TileSize+int(n.Class) > glyph.PageWidth {
		a.col = 0
		a.row += glyph.CellRows
	}
	if a.row+glyph.CellRows > glyph.PageRows {
		if err := a.flush(n); err != nil {
			return glyph.Placement{}, err
		}
	}
	glyph.Blit(a.current.canvas, image.Pt(a.col*glyph.TileSize, a.row*glyph.TileSize), n.Cell)
	tile := a.offset()
	a.current.slots = append(a.current.slots, Slot{Codepoint: n.Codepoint, Tile: tile, Class: n.Class})
	a.current.tiles += required
	a.col += n.Class.Columns()
	tracer().Debugf("%s %s → page %d, tile %d", n.Codepoint, n.Codepoint.Name(), a.current.index, tile)
	return glyph.Placement{Page: a.current.index, Tile: tile}, nil
}

// Finish seals the last page, if it has visible content, and returns all
// sealed pages. After Finish, no more cells may be placed.
func (a *Allocator) Finish() ([]*Page, error) {
	if a.state != Done {
		if a.current != nil && !a.current.IsBlank() {
			a.seal()
		}
		a.current = nil
		a.state = Done
		tracer().Infof("packed glyphs into %d font page(s)", len(a.sealed))
	}
	return append([]*Page(nil), a.sealed...), nil
}

// offset is the linear tile index of the cursor.
func (a *Allocator) offset() int {
	return a.row*glyph.PageColumns + a.col
}

func (a *Allocator) seal() {
	tracer().Debugf("sealing page %d with %d tiles", a.current.index, a.current.tiles)
	a.sealed = append(a.sealed, a.current)
}

// flush seals the current page and starts a new one for pending.
func (a *Allocator) flush(pending cell.Normalized) error {
	a.state = PageFull
	a.seal()
	if len(a.sealed) == glyph.MaxPages {
		return core.CapacityError("cannot create font page for '%s'; too many font pages (maximum is %d)",
			pending.Origin, glyph.MaxPages)
	}
	a.current = newPage(len(a.sealed), a.palette)
	a.col, a.row = 0, 0
	a.state = Placing
	return nil
}
