package glyphsrc

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
)

type looseFile struct {
	name string
	spec FileSpec
}

// Loose is a source of loose glyph images in a folder.
type Loose struct {
	dir   string
	files []looseFile // sorted by codepoint
}

var _ Source = (*Loose)(nil)

// NewLoose scans dir for glyph images. File names are checked, but no image
// is opened yet.
func NewLoose(dir string) (*Loose, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read glyph folder '%s'", dir)
	}
	src := &Loose{dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || !IsGlyphFileCandidate(entry.Name()) {
			continue
		}
		spec, err := ParseFileName(entry.Name())
		if err != nil {
			return nil, err
		}
		src.files = append(src.files, looseFile{name: entry.Name(), spec: spec})
	}
	if len(src.files) == 0 {
		return nil, core.Error(core.EMISSING, "could not find any glyph files in folder '%s'", dir)
	}
	sort.SliceStable(src.files, func(i, j int) bool {
		return src.files[i].spec.Codepoint < src.files[j].spec.Codepoint
	})
	for i := 1; i < len(src.files); i++ {
		if src.files[i].spec.Codepoint == src.files[i-1].spec.Codepoint {
			return nil, core.ConflictError("glyph files '%s' and '%s' both define codepoint %s",
				src.files[i-1].name, src.files[i].name, src.files[i].spec.Codepoint.Hex())
		}
	}
	tracer().Infof("found %d glyph files in %s", len(src.files), dir)
	return src, nil
}

// Len is the number of glyph files.
func (src *Loose) Len() int {
	return len(src.files)
}

// Palette returns the palette of the first glyph image.
func (src *Loose) Palette() (color.Palette, error) {
	img, err := src.load(src.files[0])
	if err != nil {
		return nil, err
	}
	return img.Palette, nil
}

// Walk decodes and validates the glyph images in ascending codepoint order.
func (src *Loose) Walk(fn func(Descriptor) error) error {
	for _, f := range src.files {
		img, err := src.load(f)
		if err != nil {
			return err
		}
		d := Descriptor{
			Codepoint: f.spec.Codepoint,
			Origin:    f.name,
			Cell:      img,
			Explicit:  f.spec.Explicit,
		}
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (src *Loose) load(f looseFile) (*image.Paletted, error) {
	path := filepath.Join(src.dir, f.name)
	img, err := decodePNG(path)
	if err != nil {
		return nil, err
	}
	paletted, ok := img.(*image.Paletted)
	if !ok {
		return nil, core.InvalidInput("glyph image '%s' must be an indexed image", f.name)
	}
	b := paletted.Bounds()
	if h := b.Dy(); h != glyph.CellHeight {
		return nil, core.InvalidInput("glyph image '%s' must have a height of %d pixels, got %d",
			f.name, glyph.CellHeight, h)
	}
	if _, ok := glyph.WidthClassOf(b.Dx()); !ok {
		return nil, core.InvalidInput("glyph image '%s' must have a width in pixels of one of [%d %d], got %d",
			f.name, glyph.Narrow, glyph.Wide, b.Dx())
	}
	return paletted, nil
}

func decodePNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open image '%s'", path)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode image '%s'", path)
	}
	return img, nil
}
