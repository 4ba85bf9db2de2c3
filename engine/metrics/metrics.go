/*
Package metrics collects the final records of a chapter title font.

A Store holds the glyph records, keyed and ordered by codepoint, the optional
whitespace table and the optional kerning table. Kerning pairs are grouped
into blocks by left-hand codepoint; blocks appear in the order their left
codepoint first appears in the input, and entries within a block keep input
order.

Codepoints are unique across glyphs and whitespace characters. A Store
refuses any record which would break this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package metrics

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfont.metrics'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.metrics")
}

func codepointComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(glyph.Codepoint)), int(b.(glyph.Codepoint)))
}

// Store aggregates glyphs, whitespace and kerning of a font.
type Store struct {
	glyphs     *treemap.Map       // Codepoint → glyph.Glyph
	whitespace *treemap.Map       // Codepoint → glyph.WhitespaceEntry, nil if absent
	kerning    *linkedhashmap.Map // Codepoint → []glyph.KerningEntry, nil if absent
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{glyphs: treemap.NewWith(codepointComparator)}
}

// SetWhitespace installs the whitespace table. An empty table counts as no
// table. Duplicate codepoints are a conflict.
func (s *Store) SetWhitespace(entries []glyph.WhitespaceEntry) error {
	if len(entries) == 0 {
		s.whitespace = nil
		return nil
	}
	ws := treemap.NewWith(codepointComparator)
	for _, e := range entries {
		if _, found := ws.Get(e.Codepoint); found {
			return core.ConflictError("whitespace character %s defined more than once", e.Codepoint.Hex())
		}
		if _, found := s.glyphs.Get(e.Codepoint); found {
			return core.ConflictError("codepoint %s already defined as a glyph", e.Codepoint.Hex())
		}
		ws.Put(e.Codepoint, e)
	}
	s.whitespace = ws
	tracer().Debugf("installed %d whitespace characters", ws.Size())
	return nil
}

// SetKerning installs the kerning table. An empty table counts as no table.
func (s *Store) SetKerning(pairs []glyph.KerningPair) {
	if len(pairs) == 0 {
		s.kerning = nil
		return
	}
	k := linkedhashmap.New()
	for _, p := range pairs {
		var entries []glyph.KerningEntry
		if v, found := k.Get(p.Left); found {
			entries = v.([]glyph.KerningEntry)
		}
		k.Put(p.Left, append(entries, glyph.KerningEntry{Right: p.Right, Adjustment: p.Adjustment}))
	}
	s.kerning = k
	tracer().Debugf("installed %d kerning pairs in %d blocks", len(pairs), k.Size())
}

// Add stores a finished glyph record.
func (s *Store) Add(g glyph.Glyph) error {
	if s.WhitespaceSet().Contains(g.Codepoint) {
		return core.ConflictError("codepoint %s already defined as whitespace", g.Codepoint.Hex())
	}
	if _, found := s.glyphs.Get(g.Codepoint); found {
		return core.ConflictError("glyph %s defined more than once", g.Codepoint.Hex())
	}
	s.glyphs.Put(g.Codepoint, g)
	return nil
}

// Len is the number of glyphs.
func (s *Store) Len() int {
	return s.glyphs.Size()
}

// Glyph returns the record for cp.
func (s *Store) Glyph(cp glyph.Codepoint) (glyph.Glyph, bool) {
	if v, found := s.glyphs.Get(cp); found {
		return v.(glyph.Glyph), true
	}
	return glyph.Glyph{}, false
}

// Glyphs returns all glyph records in ascending codepoint order.
func (s *Store) Glyphs() []glyph.Glyph {
	glyphs := make([]glyph.Glyph, 0, s.glyphs.Size())
	it := s.glyphs.Iterator()
	for it.Next() {
		glyphs = append(glyphs, it.Value().(glyph.Glyph))
	}
	return glyphs
}

// Whitespace returns the whitespace table in ascending codepoint order. ok is
// false if the font has no whitespace table.
func (s *Store) Whitespace() (entries []glyph.WhitespaceEntry, ok bool) {
	if s.whitespace == nil {
		return nil, false
	}
	it := s.whitespace.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(glyph.WhitespaceEntry))
	}
	return entries, true
}

// WhitespaceSet is the set of whitespace codepoints of a store.
type WhitespaceSet struct {
	m *treemap.Map
}

// Contains is true if cp is a whitespace character.
func (ws WhitespaceSet) Contains(cp glyph.Codepoint) bool {
	if ws.m == nil {
		return false
	}
	_, found := ws.m.Get(cp)
	return found
}

// WhitespaceSet returns the set of whitespace codepoints.
func (s *Store) WhitespaceSet() WhitespaceSet {
	return WhitespaceSet{m: s.whitespace}
}

// HasKerning is true if cp starts a kerning block.
func (s *Store) HasKerning(cp glyph.Codepoint) bool {
	if s.kerning == nil {
		return false
	}
	_, found := s.kerning.Get(cp)
	return found
}

// Kerning returns the kerning blocks. ok is false if the font has no kerning
// table.
func (s *Store) Kerning() (blocks []glyph.KerningBlock, ok bool) {
	if s.kerning == nil {
		return nil, false
	}
	it := s.kerning.Iterator()
	for it.Next() {
		blocks = append(blocks, glyph.KerningBlock{
			Left:    it.Key().(glyph.Codepoint),
			Entries: it.Value().([]glyph.KerningEntry),
		})
	}
	return blocks, true
}

// Check reports kerning pairs which refer to codepoints that are neither
// glyphs nor whitespace. Such pairs are legal, but are probably a typo. The
// unknown codepoints are returned in order of appearance.
func (s *Store) Check() []glyph.Codepoint {
	blocks, ok := s.Kerning()
	if !ok {
		return nil
	}
	seen := make(map[glyph.Codepoint]bool)
	var unknown []glyph.Codepoint
	note := func(cp glyph.Codepoint) {
		if seen[cp] {
			return
		}
		seen[cp] = true
		if _, isGlyph := s.glyphs.Get(cp); !isGlyph && !s.WhitespaceSet().Contains(cp) {
			tracer().Infof("kerning refers to undefined codepoint %s", cp.Hex())
			unknown = append(unknown, cp)
		}
	}
	for _, b := range blocks {
		note(b.Left)
		for _, e := range b.Entries {
			note(e.Right)
		}
	}
	return unknown
}
