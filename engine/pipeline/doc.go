/*
Package pipeline builds a chapter title font from a folder of glyph images or
from a sheet image.

A build is a single linear pass:

	glyph source → cell normalizer → page allocator → metrics store → emitter

Whitespace and kerning tables are parsed before any glyph image is opened.
Any error aborts the build as a whole; output files are written only after
every file has been generated successfully. Building twice from the same input
yields byte-identical output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.pipeline")
}
