package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/core/glyph/glyphtest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.pipeline")
	defer teardown()
	//
	dir := t.TempDir()
	path := glyphtest.WriteFile(t, dir, SettingsFile,
		"# font settings\nCTF_SHEET=ascii.png\nCTF_START=0x20\nCTF_OUTPUT=build\nCTF_PREVIEW=3\nCTF_COLOR=red\n")
	conf, err := Config{}.ApplySettings(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		InputDir:       dir,
		SheetPath:      filepath.Join(dir, "ascii.png"),
		StartCodepoint: 0x20,
		OutputDir:      filepath.Join(dir, "build"),
		PreviewScale:   3,
	}, conf)
	// configured values win
	conf, err = Config{OutputDir: "elsewhere", PreviewScale: 1}.ApplySettings(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", conf.OutputDir)
	assert.Equal(t, 1, conf.PreviewScale)
}

func TestApplySettingsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfont.pipeline")
	defer teardown()
	//
	dir := t.TempDir()
	conf, err := Config{InputDir: dir}.ApplySettings(filepath.Join(dir, SettingsFile))
	require.NoError(t, err, "settings are optional")
	assert.Equal(t, Config{InputDir: dir}, conf)
	path := glyphtest.WriteFile(t, dir, SettingsFile, "CTF_SHEET=ascii.png\nCTF_START=G\n")
	_, err = Config{}.ApplySettings(path)
	assert.Equal(t, core.EPARSE, core.Code(err))
	path = glyphtest.WriteFile(t, dir, SettingsFile, "CTF_SHEET=ascii.png\n")
	_, err = Config{}.ApplySettings(path)
	assert.Equal(t, core.EPARSE, core.Code(err))
	path = glyphtest.WriteFile(t, dir, SettingsFile, "CTF_PREVIEW=big\n")
	_, err = Config{}.ApplySettings(path)
	assert.Equal(t, core.EPARSE, core.Code(err))
}
