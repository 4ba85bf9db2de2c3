package glyph

import "image"

// Background is the palette index of transparent pixels. Every other index
// counts as visible.
const Background uint8 = 0

// Blit copies the palette indices of src into dst, with src's top-left corner
// at dst position at. Parts falling outside dst are clipped. Indices are
// copied verbatim; palettes are not consulted, so pages keep the exact color
// indices of the source art.
func Blit(dst *image.Paletted, at image.Point, src *image.Paletted) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	sp := sb.Min.Add(r.Min.Sub(at))
	for y := 0; y < r.Dy(); y++ {
		d := dst.PixOffset(r.Min.X, r.Min.Y+y)
		s := src.PixOffset(sp.X, sp.Y+y)
		copy(dst.Pix[d:d+r.Dx()], src.Pix[s:s+r.Dx()])
	}
}

// Crop returns a copy of the region r of src, with bounds starting at (0,0).
func Crop(src *image.Paletted, r image.Rectangle) *image.Paletted {
	r = r.Intersect(src.Bounds())
	dst := image.NewPaletted(image.Rect(0, 0, r.Dx(), r.Dy()), src.Palette)
	Blit(dst, image.Point{}, src.SubImage(r).(*image.Paletted))
	return dst
}
