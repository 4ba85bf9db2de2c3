/*
Package emit serializes a packed chapter title font.

The generated files are consumed by the Event Assembler and the runtime of
the Chapter Titles as Text hack:

▪︎ CTF_Generated_Metadata.tsv: a tab-separated table with a row per glyph.

▪︎ CTF_Generated_Whitespace.tsv: a tab-separated table with a row per
whitespace character, if the font has any.

▪︎ CTF_Generated_Kerning.event: kerning blocks, one per left-hand glyph,
each terminated by WORD (-1), if the font has kerning.

▪︎ CTF_Generated_Page_NN.png: the font pages, to be converted to 4bpp and
compressed by other tools.

▪︎ CTF_Generated_Installer.event: links pages, palette, tables and a coarse
lookup table together.

All rows are in ascending codepoint order. The sentinel-terminated lists are
part of the wire contract with the assembler and the runtime.

Files are collected in a Bundle and written only after everything has been
generated successfully.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emit

import (
	"fmt"

	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.emit'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.emit")
}

// Names of generated files.
const (
	MetadataFile   = glyph.GeneratedPrefix + "Metadata.tsv"
	WhitespaceFile = glyph.GeneratedPrefix + "Whitespace.tsv"
	KerningFile    = glyph.GeneratedPrefix + "Kerning.event"
	InstallerFile  = glyph.GeneratedPrefix + "Installer.event"
)

// PageFile is the name of the image of page i.
func PageFile(i int) string {
	return fmt.Sprintf("%sPage_%02d.png", glyph.GeneratedPrefix, i)
}

// PreviewFile is the name of the enlarged preview of page i.
func PreviewFile(i int) string {
	return fmt.Sprintf("%sPreview_%02d.png", glyph.GeneratedPrefix, i)
}

// Label is the assembler label of a glyph's metadata entry.
func Label(cp glyph.Codepoint) string {
	return "CTF_" + cp.Hex()
}

// KerningLabel is the assembler label of a glyph's kerning block.
func KerningLabel(cp glyph.Codepoint) string {
	return "CTF_Kerning_" + cp.Hex()
}

// WhitespaceLabel is the assembler label of a whitespace entry.
func WhitespaceLabel(cp glyph.Codepoint) string {
	return "CTF_Whitespace_" + cp.Hex()
}

// NoKerning is the metadata token for glyphs without a kerning block.
const NoKerning = "NoKerning"

// Sentinel terminates every list in generated assembler files.
const Sentinel = "WORD (-1)"
