package glyphsrc

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
)

// Every field after the codepoint is only allowed if its predecessor is present.
var glyphFilePattern = regexp.MustCompile(`^(?P<codepoint>[0-9a-fA-F]+)` +
	`(?:\s+(?P<width>[0-9a-fA-F]+)` +
	`(?:\s+(?P<upper>[0-9a-fA-F]+)` +
	`(?:\s+(?P<lower>[0-9a-fA-F]+))?)?)?` +
	`\.png$`)

var startCodepointPattern = regexp.MustCompile(`^(?:(?:0x|\$)(?P<prefixed>[0-9a-fA-F]{1,6})|(?P<suffixed>[0-9a-fA-F]{1,6})h)$`)

// FileSpec is the information encoded in a loose glyph's file name.
type FileSpec struct {
	Codepoint glyph.Codepoint
	Explicit  glyph.Overrides
}

// ParseFileName decodes a loose glyph file name (without directory).
func ParseFileName(name string) (FileSpec, error) {
	spec := FileSpec{}
	m := glyphFilePattern.FindStringSubmatch(name)
	if m == nil {
		return spec, core.ParseError("unable to parse glyph file name '%s'", name)
	}
	fields := make(map[string]string, 4)
	for i, group := range glyphFilePattern.SubexpNames() {
		if group != "" && m[i] != "" {
			fields[group] = m[i]
		}
	}
	cp, err := parseHex(fields["codepoint"])
	if err != nil {
		return spec, core.WrapError(err, core.EPARSE, "invalid codepoint in glyph file name '%s'", name)
	}
	spec.Codepoint = glyph.Codepoint(cp)
	for _, f := range []struct {
		group  string
		target **int
	}{
		{"width", &spec.Explicit.Width},
		{"upper", &spec.Explicit.UpperMargin},
		{"lower", &spec.Explicit.LowerMargin},
	} {
		s, ok := fields[f.group]
		if !ok {
			continue
		}
		n, err := parseHex(s)
		if err != nil {
			return spec, core.WrapError(err, core.EPARSE, "invalid %s in glyph file name '%s'", f.group, name)
		}
		*f.target = &n
	}
	return spec, nil
}

// IsGlyphFileCandidate reports whether a directory entry should be treated
// as a loose glyph: a .png file not produced by this module. Skipping
// generated files allows output to be written into the glyph folder.
func IsGlyphFileCandidate(name string) bool {
	return filepath.Ext(name) == ".png" && !strings.HasPrefix(name, glyph.GeneratedPrefix)
}

// ParseStartCodepoint decodes the codepoint of a sheet's first cell. Accepted
// forms are 0x<hex>, $<hex> and <hex>h, with one to six hex digits.
func ParseStartCodepoint(s string) (glyph.Codepoint, error) {
	m := startCodepointPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, core.ParseError("unable to parse codepoint '%s'", s)
	}
	value := m[startCodepointPattern.SubexpIndex("prefixed")]
	if value == "" {
		value = m[startCodepointPattern.SubexpIndex("suffixed")]
	}
	cp, err := parseHex(value)
	if err != nil {
		return 0, core.WrapError(err, core.EPARSE, "unable to parse codepoint '%s'", s)
	}
	return glyph.Codepoint(cp), nil
}

func parseHex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 16, 31)
	return int(n), err
}
