/*
Package tables reads the optional whitespace and kerning definitions of a
chapter title font.

Both are line-oriented text files; blank lines are ignored.

Whitespace lines read

	<codepoint> <width>

and kerning lines read

	<left> <right> <adjustment>

where left and right are either a hex codepoint or a single character enclosed
in single quotes, and adjustment is a signed hex number of pixels. For
example, "'A' 'V' -2" kerns 'A' and 'V' two pixels closer than normal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tables

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.input'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.input")
}

// Default file names inside a glyph folder.
const (
	WhitespaceFile = "Whitespace.txt"
	KerningFile    = "Kerning.txt"
)

var whitespaceLinePattern = regexp.MustCompile(`^(?P<codepoint>[0-9a-fA-F]+)\s+(?P<width>[0-9a-fA-F]+)$`)

var kerningLinePattern = regexp.MustCompile(`^(?:'(?P<leftchar>[^'])'|(?P<left>[0-9a-fA-F]+))` +
	`\s+(?:'(?P<rightchar>[^'])'|(?P<right>[0-9a-fA-F]+))` +
	`\s+(?P<adjustment>-?[0-9a-fA-F]+)$`)

// ParseWhitespace reads whitespace definitions from r. origin names the
// input in error messages.
func ParseWhitespace(r io.Reader, origin string) ([]glyph.WhitespaceEntry, error) {
	var entries []glyph.WhitespaceEntry
	err := eachLine(r, origin, func(line string, lineno int) error {
		m := whitespaceLinePattern.FindStringSubmatch(line)
		if m == nil {
			return core.ParseError("%s:%d: unable to parse whitespace character definition: '%s'",
				origin, lineno, line)
		}
		cp, err1 := parseHex(m[whitespaceLinePattern.SubexpIndex("codepoint")])
		w, err2 := parseHex(m[whitespaceLinePattern.SubexpIndex("width")])
		if err := errors.Join(err1, err2); err != nil {
			return core.WrapError(err, core.EPARSE, "%s:%d: number out of range: '%s'", origin, lineno, line)
		}
		entries = append(entries, glyph.WhitespaceEntry{Codepoint: glyph.Codepoint(cp), Width: w})
		return nil
	})
	tracer().Debugf("parsed %d whitespace definitions from %s", len(entries), origin)
	return entries, err
}

// ParseKerning reads kerning pairs from r, in input order. origin names the
// input in error messages.
func ParseKerning(r io.Reader, origin string) ([]glyph.KerningPair, error) {
	var pairs []glyph.KerningPair
	err := eachLine(r, origin, func(line string, lineno int) error {
		m := kerningLinePattern.FindStringSubmatch(line)
		if m == nil {
			return core.ParseError("%s:%d: unable to parse kerning definition: '%s'",
				origin, lineno, line)
		}
		group := func(name string) string {
			return m[kerningLinePattern.SubexpIndex(name)]
		}
		left, err1 := codepointOf(group("leftchar"), group("left"))
		right, err2 := codepointOf(group("rightchar"), group("right"))
		adj, err3 := strconv.ParseInt(group("adjustment"), 16, 32)
		if err := errors.Join(err1, err2, err3); err != nil {
			return core.WrapError(err, core.EPARSE, "%s:%d: number out of range: '%s'", origin, lineno, line)
		}
		pairs = append(pairs, glyph.KerningPair{Left: left, Right: right, Adjustment: int(adj)})
		return nil
	})
	tracer().Debugf("parsed %d kerning pairs from %s", len(pairs), origin)
	return pairs, err
}

// LoadWhitespace parses the whitespace file at path. A missing file is not an
// error; it yields ok=false.
func LoadWhitespace(path string) (entries []glyph.WhitespaceEntry, ok bool, err error) {
	err = withOptionalFile(path, func(f *os.File) error {
		ok = true
		entries, err = ParseWhitespace(f, path)
		return err
	})
	return
}

// LoadKerning parses the kerning file at path. A missing file is not an
// error; it yields ok=false.
func LoadKerning(path string) (pairs []glyph.KerningPair, ok bool, err error) {
	err = withOptionalFile(path, func(f *os.File) error {
		ok = true
		pairs, err = ParseKerning(f, path)
		return err
	})
	return
}

func withOptionalFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no file %s", path)
		return nil
	} else if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open '%s'", path)
	}
	defer f.Close()
	return fn(f)
}

func eachLine(r io.Reader, origin string, fn func(string, int) error) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line, lineno); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot read %s", origin)
	}
	return nil
}

func codepointOf(char, hex string) (glyph.Codepoint, error) {
	if char != "" {
		r := []rune(char)
		return glyph.Codepoint(r[0]), nil
	}
	n, err := parseHex(hex)
	return glyph.Codepoint(n), err
}

func parseHex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 16, 31)
	return int(n), err
}
