package emit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/engine/metrics"
)

var metadataHeader = []string{
	"ChapterTitleFontEntry()",
	"Codepoint",
	"Width",
	"CellWidthFlag",
	"UpperMargin",
	"LowerMargin",
	"Page",
	"Tile",
	"Kerning",
}

var whitespaceHeader = []string{
	"ChapterTitleWhitespaceEntry()",
	"Codepoint",
	"Width",
}

// Metadata renders the glyph table of store.
func Metadata(store *metrics.Store) []byte {
	lines := []string{strings.Join(metadataHeader, "\t")}
	for _, g := range store.Glyphs() {
		kerning := NoKerning
		if store.HasKerning(g.Codepoint) {
			kerning = KerningLabel(g.Codepoint)
		}
		lines = append(lines, strings.Join([]string{
			Label(g.Codepoint),
			"0x" + g.Codepoint.Hex(),
			fmt.Sprintf("%d", g.Width),
			flagText(g.Class.IsWide()),
			fmt.Sprintf("%d", g.UpperMargin),
			fmt.Sprintf("%d", g.LowerMargin),
			fmt.Sprintf("%d", g.Page),
			fmt.Sprintf("%d", g.Tile),
			kerning,
		}, "\t"))
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Whitespace renders the whitespace table.
func Whitespace(entries []glyph.WhitespaceEntry) []byte {
	lines := []string{strings.Join(whitespaceHeader, "\t")}
	for _, e := range entries {
		lines = append(lines, strings.Join([]string{
			WhitespaceLabel(e.Codepoint),
			"0x" + e.Codepoint.Hex(),
			fmt.Sprintf("%d", e.Width),
		}, "\t"))
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Kerning renders the kerning blocks as assembler source. Every block is
// terminated by the sentinel.
func Kerning(blocks []glyph.KerningBlock) []byte {
	var b bytes.Buffer
	b.WriteString("\n")
	for _, block := range blocks {
		fmt.Fprintf(&b, "ALIGN 4; %s:\n", KerningLabel(block.Left))
		for _, e := range block.Entries {
			fmt.Fprintf(&b, "ChapterTitleKerningEntry(0x%s, %d)\n", e.Right.Hex(), e.Adjustment)
		}
		b.WriteString(Sentinel + "\n\n")
	}
	return b.Bytes()
}

// The table converter downstream expects boolean columns spelled this way.
func flagText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
