package glyphsrc

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/core/glyph/glyphtest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src Source) []Descriptor {
	var ds []Descriptor
	err := src.Walk(func(d Descriptor) error {
		ds = append(ds, d)
		return nil
	})
	require.NoError(t, err)
	return ds
}

func TestLooseOrdersByCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	dir := t.TempDir()
	glyphtest.WritePNG(t, dir, "100.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	glyphtest.WritePNG(t, dir, "0043.png", glyphtest.Box(16, image.Rect(0, 0, 12, 4)))
	glyphtest.WritePNG(t, dir, "41 5.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	glyphtest.WritePNG(t, dir, "CTF_Generated_Page_00.png", glyphtest.Cell(256, 64))
	glyphtest.WriteFile(t, dir, "Whitespace.txt", "000020 3\n")
	src, err := NewLoose(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())
	ds := collect(t, src)
	require.Len(t, ds, 3)
	assert.Equal(t, []glyph.Codepoint{0x41, 0x43, 0x100},
		[]glyph.Codepoint{ds[0].Codepoint, ds[1].Codepoint, ds[2].Codepoint})
	assert.Equal(t, 5, *ds[0].Explicit.Width)
	assert.False(t, ds[0].Sliced)
	assert.Equal(t, 16, ds[1].Cell.Bounds().Dx())
	// walking again yields the same sequence
	assert.Len(t, collect(t, src), 3)
	pal, err := src.Palette()
	require.NoError(t, err)
	assert.Len(t, pal, len(glyphtest.Palette))
}

func TestLooseRejectsBadNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	dir := t.TempDir()
	glyphtest.WritePNG(t, dir, "0041.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	glyphtest.WritePNG(t, dir, "letter B.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	_, err := NewLoose(dir)
	assert.Equal(t, core.EPARSE, core.Code(err))
	assert.Contains(t, err.Error(), "letter B.png")
}

func TestLooseRejectsDuplicateCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	dir := t.TempDir()
	glyphtest.WritePNG(t, dir, "0041.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	glyphtest.WritePNG(t, dir, "41 4.png", glyphtest.Box(8, image.Rect(0, 0, 4, 4)))
	_, err := NewLoose(dir)
	assert.Equal(t, core.ECONFLICT, core.Code(err))
}

func TestLooseEmptyFolder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	_, err := NewLoose(t.TempDir())
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = NewLoose(filepath.Join(t.TempDir(), "nonexistent"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestLooseValidatesImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	for name, img := range map[string]image.Image{
		"rgba":   image.NewRGBA(image.Rect(0, 0, 8, 16)),
		"height": glyphtest.Cell(8, 15),
		"width":  glyphtest.Cell(12, 16),
	} {
		dir := t.TempDir()
		glyphtest.WritePNG(t, dir, "0041.png", img)
		src, err := NewLoose(dir)
		require.NoError(t, err, name)
		err = src.Walk(func(Descriptor) error { return nil })
		assert.Equal(t, core.EINVALID, core.Code(err), name)
		assert.Contains(t, err.Error(), "0041.png", name)
	}
}

func TestSheetAssignsSequentialCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	sheet := glyphtest.Cell(32, 32)
	glyphtest.Fill(sheet, image.Rect(1, 1, 3, 3))   // cell 0
	glyphtest.Fill(sheet, image.Rect(20, 2, 30, 5)) // cell 1
	glyphtest.Fill(sheet, image.Rect(17, 17, 18, 30))
	src, err := SheetFromImage("sheet.png", sheet, 0x20)
	require.NoError(t, err)
	assert.Equal(t, 4, src.Cells())
	ds := collect(t, src)
	require.Len(t, ds, 4)
	for i, d := range ds {
		assert.Equal(t, glyph.Codepoint(0x20+i), d.Codepoint)
		assert.True(t, d.Sliced)
		assert.Equal(t, image.Rect(0, 0, 16, 16), d.Cell.Bounds())
	}
	assert.Equal(t, uint8(1), ds[1].Cell.ColorIndexAt(4, 2))
	assert.Equal(t, uint8(0), ds[2].Cell.ColorIndexAt(1, 1)) // blank cell
	assert.Equal(t, uint8(1), ds[3].Cell.ColorIndexAt(1, 1))
	assert.Equal(t, "sheet.png cell (16,16)", ds[3].Origin)
}

func TestSheetValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.input")
	defer teardown()
	//
	_, err := SheetFromImage("odd.png", glyphtest.Cell(24, 16), 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = SheetFromImage("rgb.png", image.NewRGBA(image.Rect(0, 0, 16, 16)), 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	dir := t.TempDir()
	path := glyphtest.WritePNG(t, dir, "sheet.png", glyphtest.Cell(16, 32))
	src, err := NewSheet(path, 0x41)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Cells())
}
