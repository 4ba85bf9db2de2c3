package emit

import (
	"github.com/npillmayer/ctfont/engine/metrics"
	"github.com/npillmayer/ctfont/engine/pager"
)

// Options control which extra files are generated.
type Options struct {
	PreviewScale int // if > 0, add enlarged page previews
}

// Emit generates all files for a font. The whitespace and kerning files are
// generated only if the store has the respective table.
func Emit(store *metrics.Store, pages []*pager.Page, opts Options) (*Bundle, error) {
	b := NewBundle()
	b.Add(MetadataFile, Metadata(store))
	if entries, ok := store.Whitespace(); ok {
		b.Add(WhitespaceFile, Whitespace(entries))
	}
	if blocks, ok := store.Kerning(); ok {
		b.Add(KerningFile, Kerning(blocks))
	}
	for _, page := range pages {
		data, err := PageImage(page)
		if err != nil {
			return nil, err
		}
		b.Add(PageFile(page.Index()), data)
		if opts.PreviewScale > 0 {
			if data, err = Preview(page, opts.PreviewScale); err != nil {
				return nil, err
			}
			b.Add(PreviewFile(page.Index()), data)
		}
	}
	installer, err := Installer(store, len(pages))
	if err != nil {
		return nil, err
	}
	b.Add(InstallerFile, installer)
	tracer().Debugf("generated %d files", len(b.files))
	return b, nil
}
