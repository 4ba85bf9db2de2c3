package pipeline

import (
	"path/filepath"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph"
	"github.com/npillmayer/ctfont/input/glyphsrc"
	"github.com/npillmayer/ctfont/input/tables"
)

// Config configures a build. Either InputDir or SheetPath selects the glyph
// source; if both are set, glyphs are read from the sheet and InputDir is the
// folder of the whitespace and kerning tables.
type Config struct {
	InputDir       string          // folder of loose glyph images
	SheetPath      string          // sheet image, alternative to loose glyphs
	StartCodepoint glyph.Codepoint // codepoint of the sheet's top-left cell
	OutputDir      string          // default: the input folder
	WhitespaceFile string          // default: Whitespace.txt in the input folder
	KerningFile    string          // default: Kerning.txt in the input folder
	PreviewScale   int             // if > 0, write enlarged page previews
	DryRun         bool            // run the full pass, but write nothing
}

// Defaults returns c with every empty location filled in.
func (c Config) Defaults() Config {
	if c.InputDir == "" && c.SheetPath != "" {
		c.InputDir = filepath.Dir(c.SheetPath)
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	if c.WhitespaceFile == "" {
		c.WhitespaceFile = filepath.Join(c.InputDir, tables.WhitespaceFile)
	}
	if c.KerningFile == "" {
		c.KerningFile = filepath.Join(c.InputDir, tables.KerningFile)
	}
	return c
}

func (c Config) validate() error {
	if c.InputDir == "" && c.SheetPath == "" {
		return core.InvalidInput("no glyph folder or sheet image given")
	}
	if c.StartCodepoint < 0 {
		return core.InvalidInput("starting codepoint must not be negative")
	}
	if c.PreviewScale < 0 || c.PreviewScale > 16 {
		return core.InvalidInput("preview scale must be between 1 and 16, got %d", c.PreviewScale)
	}
	return nil
}

// source opens the glyph source selected by c.
func (c Config) source() (glyphsrc.Source, error) {
	if c.SheetPath != "" {
		return glyphsrc.NewSheet(c.SheetPath, c.StartCodepoint)
	}
	return glyphsrc.NewLoose(c.InputDir)
}

// origin names the glyph source in messages.
func (c Config) origin() string {
	if c.SheetPath != "" {
		return c.SheetPath
	}
	return c.InputDir
}
