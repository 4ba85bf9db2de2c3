package emit

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/metrics"
)

//go:embed installer.event.tmpl
var installerText string

var installerTemplate = template.Must(template.New("installer").Parse(installerText))

const (
	whitespaceInclusion = `  #include "CTF_Generated_Whitespace.tsv.event"`
	kerningInclusion    = `  #include "CTF_Generated_Kerning.event"`
)

type installerFields struct {
	PagePointers   string
	PageInclusions string
	LookupEntries  string
	Whitespace     string
	Kerning        string
}

// LookupEntries returns the codepoints of the coarse lookup table: the first
// glyph of every bucket of LookupBucketSize glyphs.
func LookupEntries(store *metrics.Store) []glyph.Codepoint {
	var entries []glyph.Codepoint
	for i, g := range store.Glyphs() {
		if i%glyph.LookupBucketSize == 0 {
			entries = append(entries, g.Codepoint)
		}
	}
	return entries
}

// Installer renders the installer, which links pageCount pages, the palette,
// the tables and the lookup table.
func Installer(store *metrics.Store, pageCount int) ([]byte, error) {
	fields := installerFields{}
	var pointers, inclusions, lookup []string
	for i := 0; i < pageCount; i++ {
		pointers = append(pointers, fmt.Sprintf("  POIN gCTFGeneratedPage%02d", i))
		inclusions = append(inclusions, fmt.Sprintf("\nALIGN 4; gCTFGeneratedPage%02d:\n#incbin \"CTF_Generated_Page_%02d.4bpp.lz77\"\n", i, i))
	}
	for _, cp := range LookupEntries(store) {
		lookup = append(lookup, fmt.Sprintf("  ChapterTitleLookupEntry(0x%s, %s)", cp.Hex(), Label(cp)))
	}
	fields.PagePointers = strings.Join(pointers, "\n")
	fields.PageInclusions = strings.Join(inclusions, "\n")
	fields.LookupEntries = strings.Join(lookup, "\n")
	if _, ok := store.Whitespace(); ok {
		fields.Whitespace = whitespaceInclusion
	}
	if _, ok := store.Kerning(); ok {
		fields.Kerning = kerningInclusion
	}
	var b bytes.Buffer
	if err := installerTemplate.Execute(&b, fields); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot render installer")
	}
	return b.Bytes(), nil
}
