package pipeline

import (
	"github.com/npillmayer/ctfont/backend/emit"
	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/cell"
	"github.com/npillmayer/ctfont/engine/metrics"
	"github.com/npillmayer/ctfont/engine/pager"
	"github.com/npillmayer/ctfont/input/glyphsrc"
	"github.com/npillmayer/ctfont/input/tables"
)

// PageSummary describes a sealed font page.
type PageSummary struct {
	Index  int
	Glyphs int
	Tiles  int
}

// Result reports on a successful build.
type Result struct {
	Glyphs     []glyph.Glyph     // in ascending codepoint order
	Whitespace int               // number of whitespace characters
	Kerning    int               // number of kerning blocks
	Pages      []PageSummary     // sealed pages
	Skipped    int               // blank sheet cells
	Unresolved []glyph.Codepoint // kerning codepoints which are neither glyph nor whitespace
	Files      []string          // generated file names
	OutputDir  string
	Written    bool // false for a dry run
}

// Run builds a font as configured by conf.
func Run(conf Config) (*Result, error) {
	conf = conf.Defaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	store, err := loadTables(conf)
	if err != nil {
		return nil, err
	}
	src, err := conf.source()
	if err != nil {
		return nil, err
	}
	palette, err := src.Palette()
	if err != nil {
		return nil, err
	}
	result := &Result{OutputDir: conf.OutputDir}
	alloc := pager.New(palette)
	nz := cell.NewNormalizer(store.WhitespaceSet())
	err = src.Walk(func(d glyphsrc.Descriptor) error {
		n, ok, err := nz.Normalize(d)
		if err != nil {
			return err
		}
		if !ok {
			result.Skipped++
			return nil
		}
		p, err := alloc.Place(n)
		if err != nil {
			return err
		}
		return store.Add(n.Glyph(p))
	})
	if err != nil {
		return nil, err
	}
	pages, err := alloc.Finish()
	if err != nil {
		return nil, err
	}
	if store.Len() == 0 {
		return nil, core.Error(core.EMISSING, "no visible glyphs in '%s'", conf.origin())
	}
	result.Unresolved = store.Check()
	bundle, err := emit.Emit(store, pages, emit.Options{PreviewScale: conf.PreviewScale})
	if err != nil {
		return nil, err
	}
	summarize(result, store, pages)
	result.Files = bundle.Names()
	if conf.DryRun {
		tracer().Infof("dry run, %d files not written", len(result.Files))
		return result, nil
	}
	if err := bundle.Commit(conf.OutputDir); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}

// loadTables parses the whitespace and kerning tables into a new store.
func loadTables(conf Config) (*metrics.Store, error) {
	store := metrics.NewStore()
	ws, ok, err := tables.LoadWhitespace(conf.WhitespaceFile)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := store.SetWhitespace(ws); err != nil {
			return nil, err
		}
	}
	pairs, ok, err := tables.LoadKerning(conf.KerningFile)
	if err != nil {
		return nil, err
	}
	if ok {
		store.SetKerning(pairs)
	}
	return store, nil
}

func summarize(result *Result, store *metrics.Store, pages []*pager.Page) {
	result.Glyphs = store.Glyphs()
	if ws, ok := store.Whitespace(); ok {
		result.Whitespace = len(ws)
	}
	if blocks, ok := store.Kerning(); ok {
		result.Kerning = len(blocks)
	}
	for _, p := range pages {
		result.Pages = append(result.Pages, PageSummary{
			Index:  p.Index(),
			Glyphs: len(p.Slots()),
			Tiles:  p.Tiles(),
		})
	}
	tracer().Infof("%d glyphs on %d pages, %d whitespace, %d kerning blocks",
		len(result.Glyphs), len(result.Pages), result.Whitespace, result.Kerning)
}
