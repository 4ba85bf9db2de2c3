package pager

import (
	"image"
	"testing"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/core/glyph/glyphtest"
	"github.com/npillmayer/ctfont/engine/cell"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PagerTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestPagerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.pager")
	defer teardown()
	suite.Run(t, new(PagerTestEnviron))
}

// run once, before test suite methods
func (env *PagerTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("ctfont.pager").SetTraceLevel(tracing.LevelError)
}

// --- Tests -----------------------------------------------------------------

func (env *PagerTestEnviron) TestScenarioMixedWidths() {
	a := New(glyphtest.Palette)
	env.Equal(Idle, a.State())
	p := env.place(a, 0x41, glyph.Wide)
	env.Equal(glyph.Placement{Page: 0, Tile: 0}, p)
	env.Equal(Placing, a.State())
	p = env.place(a, 0x42, glyph.Narrow)
	env.Equal(glyph.Placement{Page: 0, Tile: 2}, p)
	p = env.place(a, 0x43, glyph.Wide)
	env.Equal(glyph.Placement{Page: 0, Tile: 3}, p)
	pages, err := a.Finish()
	env.Require().NoError(err)
	env.Equal(Done, a.State())
	env.Require().Len(pages, 1)
	env.Equal(10, pages[0].Tiles())
	env.Len(pages[0].Slots(), 3)
	// the cell of 0x42 starts at pixel column 16
	img := pages[0].Image().(*image.Paletted)
	env.Equal(uint8(1), img.ColorIndexAt(16, 0))
	env.Equal(uint8(1), img.ColorIndexAt(24, 15))
}

func (env *PagerTestEnviron) TestRowWrap() {
	a := New(glyphtest.Palette)
	for i := 0; i < 31; i++ {
		env.place(a, glyph.Codepoint(i), glyph.Narrow)
	}
	// a wide cell does not fit into the last column
	p := env.place(a, 100, glyph.Wide)
	env.Equal(glyph.Placement{Page: 0, Tile: 2 * 32}, p)
	p = env.place(a, 101, glyph.Narrow)
	env.Equal(glyph.Placement{Page: 0, Tile: 2*32 + 2}, p)
}

func (env *PagerTestEnviron) TestPageOverflowStartsNewPage() {
	a := New(glyphtest.Palette)
	var last glyph.Placement
	for i := 0; i < 4*32+1; i++ {
		last = env.place(a, glyph.Codepoint(i), glyph.Narrow)
	}
	env.Equal(glyph.Placement{Page: 1, Tile: 0}, last)
	pages, err := a.Finish()
	env.Require().NoError(err)
	env.Require().Len(pages, 2)
	env.Equal(glyph.MaxPageTiles, pages[0].Tiles())
	env.Equal(2, pages[1].Tiles())
	env.Equal(1, pages[1].Index())
}

func (env *PagerTestEnviron) TestTilesAreUniquePerPage() {
	a := New(glyphtest.Palette)
	for i := 0; i < 500; i++ {
		class := glyph.Narrow
		if i%3 == 0 {
			class = glyph.Wide
		}
		env.place(a, glyph.Codepoint(i), class)
	}
	pages, err := a.Finish()
	env.Require().NoError(err)
	for _, page := range pages {
		used := make(map[int]glyph.Codepoint)
		sum := 0
		for _, slot := range page.Slots() {
			// mark every tile a cell covers
			row, col := slot.Tile/glyph.PageColumns, slot.Tile%glyph.PageColumns
			for r := row; r < row+glyph.CellRows; r++ {
				for c := col; c < col+slot.Class.Columns(); c++ {
					t := r*glyph.PageColumns + c
					prev, dup := used[t]
					env.False(dup, "tile %d of page %d used by %s and %s", t, page.Index(), prev, slot.Codepoint)
					env.Less(c, glyph.PageColumns)
					env.Less(r, glyph.PageRows)
					used[t] = slot.Codepoint
				}
			}
			sum += slot.Class.Tiles()
		}
		env.LessOrEqual(sum, glyph.MaxPageTiles)
		env.Equal(sum, page.Tiles())
	}
}

func (env *PagerTestEnviron) TestPageCeiling() {
	a := New(glyphtest.Palette)
	perPage := glyph.PageColumns * glyph.PageRows / glyph.CellRows
	var err error
	for i := 0; i < glyph.MaxPages*perPage && err == nil; i++ {
		_, err = a.Place(cellOf(glyph.Codepoint(i), glyph.Narrow))
	}
	env.Require().NoError(err)
	_, err = a.Place(cellOf(0x10000, glyph.Narrow))
	env.Equal(core.ECAPACITY, core.Code(err))
}

func (env *PagerTestEnviron) TestSixteenFullPages() {
	a := New(glyphtest.Palette)
	perPage := glyph.PageColumns * glyph.PageRows / glyph.CellRows
	for i := 0; i < glyph.MaxPages*perPage; i++ {
		env.place(a, glyph.Codepoint(i), glyph.Narrow)
	}
	pages, err := a.Finish()
	env.Require().NoError(err)
	env.Len(pages, glyph.MaxPages)
}

func (env *PagerTestEnviron) TestNothingPlaced() {
	a := New(glyphtest.Palette)
	pages, err := a.Finish()
	env.Require().NoError(err)
	env.Empty(pages)
	_, err = a.Place(cellOf(0x41, glyph.Narrow))
	env.Equal(core.EINTERNAL, core.Code(err))
}

// --- Helpers ---------------------------------------------------------------

func cellOf(cp glyph.Codepoint, class glyph.WidthClass) cell.Normalized {
	return cell.Normalized{
		Codepoint: cp,
		Class:     class,
		Cell:      glyphtest.Box(int(class), image.Rect(0, 0, int(class), glyph.CellHeight)),
		Origin:    cp.Hex() + ".png",
	}
}

func (env *PagerTestEnviron) place(a *Allocator, cp glyph.Codepoint, class glyph.WidthClass) glyph.Placement {
	p, err := a.Place(cellOf(cp, class))
	env.Require().NoError(err)
	return p
}
