package emit

import (
	"bytes"
	"image"
	"image/png"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/pager"
	"golang.org/x/image/draw"
)

// PageImage encodes a sealed page as an indexed PNG.
func PageImage(page *pager.Page) ([]byte, error) {
	var b bytes.Buffer
	if err := png.Encode(&b, page.Image()); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode font page %d", page.Index())
	}
	return b.Bytes(), nil
}

// GlyphFile is the name of a loose glyph image for cp, without explicit
// metrics.
func GlyphFile(cp glyph.Codepoint) string {
	return cp.Hex() + ".png"
}

// GlyphImage encodes a single glyph cell as an indexed PNG.
func GlyphImage(cp glyph.Codepoint, cell *image.Paletted) ([]byte, error) {
	var b bytes.Buffer
	if err := png.Encode(&b, cell); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode glyph %s", cp.Hex())
	}
	return b.Bytes(), nil
}

// Preview encodes a page enlarged by scale as a true-color PNG, for human
// inspection. Pixels are scaled without smoothing.
func Preview(page *pager.Page, scale int) ([]byte, error) {
	if scale < 1 {
		scale = 1
	}
	src := page.Image()
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	var out bytes.Buffer
	if err := png.Encode(&out, dst); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode preview of page %d", page.Index())
	}
	return out.Bytes(), nil
}
