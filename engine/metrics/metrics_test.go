package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphsComeOutAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.metrics")
	defer teardown()
	//
	s := NewStore()
	for _, cp := range []glyph.Codepoint{0x100, 0x41, 0x7a, 0x42} {
		require.NoError(t, s.Add(glyph.Glyph{Codepoint: cp, Class: glyph.Narrow}))
	}
	var cps []glyph.Codepoint
	for _, g := range s.Glyphs() {
		cps = append(cps, g.Codepoint)
	}
	assert.Equal(t, []glyph.Codepoint{0x41, 0x42, 0x7a, 0x100}, cps)
	assert.Equal(t, 4, s.Len())
	g, ok := s.Glyph(0x7a)
	assert.True(t, ok)
	assert.Equal(t, glyph.Codepoint(0x7a), g.Codepoint)
}

func TestConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.metrics")
	defer teardown()
	//
	s := NewStore()
	require.NoError(t, s.SetWhitespace([]glyph.WhitespaceEntry{{Codepoint: 0x20, Width: 3}}))
	err := s.Add(glyph.Glyph{Codepoint: 0x20})
	assert.Equal(t, core.ECONFLICT, core.Code(err))
	require.NoError(t, s.Add(glyph.Glyph{Codepoint: 0x41}))
	err = s.Add(glyph.Glyph{Codepoint: 0x41})
	assert.Equal(t, core.ECONFLICT, core.Code(err))
	err = s.SetWhitespace([]glyph.WhitespaceEntry{{Codepoint: 0x41, Width: 3}})
	assert.Equal(t, core.ECONFLICT, core.Code(err))
	err = NewStore().SetWhitespace([]glyph.WhitespaceEntry{
		{Codepoint: 0x20, Width: 3},
		{Codepoint: 0x20, Width: 4},
	})
	assert.Equal(t, core.ECONFLICT, core.Code(err))
}

func TestOptionalTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.metrics")
	defer teardown()
	//
	s := NewStore()
	_, ok := s.Whitespace()
	assert.False(t, ok)
	_, ok = s.Kerning()
	assert.False(t, ok)
	assert.False(t, s.WhitespaceSet().Contains(0x20))
	require.NoError(t, s.SetWhitespace(nil))
	s.SetKerning([]glyph.KerningPair{})
	_, ok = s.Whitespace()
	assert.False(t, ok)
	_, ok = s.Kerning()
	assert.False(t, ok)
	require.NoError(t, s.SetWhitespace([]glyph.WhitespaceEntry{
		{Codepoint: 0x3000, Width: 14},
		{Codepoint: 0x20, Width: 3},
	}))
	ws, ok := s.Whitespace()
	assert.True(t, ok)
	assert.Equal(t, []glyph.WhitespaceEntry{{Codepoint: 0x20, Width: 3}, {Codepoint: 0x3000, Width: 14}}, ws)
}

func TestKerningBlocksKeepInputOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.metrics")
	defer teardown()
	//
	s := NewStore()
	s.SetKerning([]glyph.KerningPair{
		{Left: 'V', Right: 'A', Adjustment: -2},
		{Left: 'A', Right: 'V', Adjustment: -2},
		{Left: 'V', Right: 'o', Adjustment: -1},
		{Left: 'A', Right: 'T', Adjustment: -1},
	})
	blocks, ok := s.Kerning()
	require.True(t, ok)
	expected := []glyph.KerningBlock{
		{Left: 'V', Entries: []glyph.KerningEntry{{Right: 'A', Adjustment: -2}, {Right: 'o', Adjustment: -1}}},
		{Left: 'A', Entries: []glyph.KerningEntry{{Right: 'V', Adjustment: -2}, {Right: 'T', Adjustment: -1}}},
	}
	if diff := cmp.Diff(expected, blocks); diff != "" {
		t.Errorf("kerning blocks mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.HasKerning('A'))
	assert.False(t, s.HasKerning('o'))
}

func TestCheckReportsUnknownKerningCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.metrics")
	defer teardown()
	//
	s := NewStore()
	require.NoError(t, s.SetWhitespace([]glyph.WhitespaceEntry{{Codepoint: 0x20, Width: 3}}))
	require.NoError(t, s.Add(glyph.Glyph{Codepoint: 'A'}))
	s.SetKerning([]glyph.KerningPair{
		{Left: 'A', Right: 'V', Adjustment: -2},
		{Left: 'A', Right: ' ', Adjustment: 1},
		{Left: 'W', Right: 'V', Adjustment: 1},
	})
	assert.Equal(t, []glyph.Codepoint{'V', 'W'}, s.Check())
}
