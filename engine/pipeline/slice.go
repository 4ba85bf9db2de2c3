package pipeline

import (
	"os"

	"github.com/npillmayer/ctfont/backend/emit"
	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/cell"
	"github.com/npillmayer/ctfont/input/glyphsrc"
)

// SliceResult reports on a sliced sheet.
type SliceResult struct {
	Cells   int      // cells in the sheet, blank ones included
	Skipped int      // blank cells
	Files   []string // generated glyph files, in codepoint order
	Written bool
}

// Slice cuts a sheet image into loose glyph images named by codepoint, which
// are written to outDir. Blank cells produce no file. Non-blank cells are
// cropped to 8 px unless they have visible pixels to the right of column 8.
//
// The output folder must exist.
func Slice(sheetPath, outDir string, start glyph.Codepoint, dryRun bool) (*SliceResult, error) {
	if fi, err := os.Stat(outDir); err != nil || !fi.IsDir() {
		return nil, core.Error(core.EMISSING, "cannot find directory '%s'", outDir)
	}
	sheet, err := glyphsrc.NewSheet(sheetPath, start)
	if err != nil {
		return nil, err
	}
	result := &SliceResult{Cells: sheet.Cells()}
	bundle := emit.NewBundle()
	nz := cell.NewNormalizer(nil)
	err = sheet.Walk(func(d glyphsrc.Descriptor) error {
		n, ok, err := nz.Normalize(d)
		if err != nil {
			return err
		}
		if !ok {
			result.Skipped++
			return nil
		}
		data, err := emit.GlyphImage(n.Codepoint, n.Cell)
		if err != nil {
			return err
		}
		bundle.Add(emit.GlyphFile(n.Codepoint), data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Files = bundle.Names()
	tracer().Infof("sliced %d glyphs from %d cells of %s", len(result.Files), result.Cells, sheetPath)
	if dryRun || len(result.Files) == 0 {
		return result, nil
	}
	if err := bundle.Commit(outDir); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}
