package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/input/glyphsrc"
)

// SettingsFile holds per-font build settings inside a glyph folder. It is a
// dotenv file which may set
//
//	CTF_SHEET    sheet image, relative to the folder
//	CTF_START    codepoint of the sheet's top-left cell, required with CTF_SHEET
//	CTF_OUTPUT   output folder, relative to the folder
//	CTF_PREVIEW  preview scale
//
// Settings only fill in values which are not configured otherwise. A sheet
// setting brings its own starting codepoint.
const SettingsFile = "Font.env"

var settingKeys = map[string]bool{
	"CTF_SHEET":   true,
	"CTF_START":   true,
	"CTF_OUTPUT":  true,
	"CTF_PREVIEW": true,
}

// ApplySettings reads the settings file at path into c. A missing file is not
// an error. Paths in the file are relative to the file's folder.
func (c Config) ApplySettings(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return c, core.WrapError(err, core.EPARSE, "cannot read settings '%s'", path)
	}
	base := filepath.Dir(path)
	for key := range env {
		if !settingKeys[key] {
			tracer().Infof("%s: ignoring unknown setting %s", path, key)
		}
	}
	if v := env["CTF_SHEET"]; v != "" && c.SheetPath == "" {
		start := env["CTF_START"]
		if start == "" {
			return c, core.ParseError("%s: CTF_SHEET requires CTF_START", path)
		}
		cp, err := glyphsrc.ParseStartCodepoint(start)
		if err != nil {
			return c, core.WrapError(err, core.EPARSE, "%s: invalid CTF_START '%s'", path, start)
		}
		c.SheetPath = filepath.Join(base, v)
		c.StartCodepoint = cp
		if c.InputDir == "" {
			c.InputDir = base
		}
	}
	if v := env["CTF_OUTPUT"]; v != "" && c.OutputDir == "" {
		c.OutputDir = filepath.Join(base, v)
	}
	if v := env["CTF_PREVIEW"]; v != "" && c.PreviewScale == 0 {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, core.WrapError(err, core.EPARSE, "%s: invalid CTF_PREVIEW '%s'", path, v)
		}
		c.PreviewScale = n
	}
	tracer().Debugf("applied settings from %s", path)
	return c, nil
}
