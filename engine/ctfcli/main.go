/*
Command ctfcli builds chapter title fonts.

Usage:

	ctfcli build [flags] <glyph folder>
	ctfcli build [flags] -sheet <sheet.png> -start <codepoint> [<table folder>]
	ctfcli slice [flags] <sheet.png> <output folder> <codepoint>

build packs glyph images into font pages and writes the font's metadata,
tables and installer. slice cuts a sheet image into loose glyph images,
which may then be edited and built individually.

A glyph folder may hold a settings file Font.env, which supplies defaults for
the sheet, starting codepoint, output folder and preview scale.

Codepoints are given as 0x<hex>, $<hex> or <hex>h.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ctfont/core"
	"github.com/npillmayer/ctfont/engine/pipeline"
	"github.com/npillmayer/ctfont/input/glyphsrc"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'ctfont.cli'
func tracer() tracing.Trace {
	return tracing.Select("ctfont.cli")
}

// Process exit statuses.
const (
	exitOK = iota
	exitInternal
	exitUsage
	exitInvalid
	exitParse
	exitCapacity
	exitConflict
	exitMissing
)

var traceKeys = []string{
	"ctfont.cli",
	"ctfont.input",
	"ctfont.cell",
	"ctfont.pager",
	"ctfont.metrics",
	"ctfont.emit",
	"ctfont.pipeline",
}

// errUsage is returned for malformed command lines.
var errUsage = errors.New("usage error")

func main() {
	initDisplay()
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}
	var err error
	switch cmd := os.Args[1]; cmd {
	case "build":
		err = build(os.Args[2:])
	case "slice":
		err = slice(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
	default:
		pterm.Error.Printfln("unknown command '%s'", cmd)
		usage()
		os.Exit(exitUsage)
	}
	if err != nil {
		os.Exit(report(err))
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  ctfcli build [flags] <glyph folder>
  ctfcli build [flags] -sheet <sheet.png> -start <codepoint> [<table folder>]
  ctfcli slice [flags] <sheet.png> <output folder> <codepoint>

Run 'ctfcli build -h' or 'ctfcli slice -h' for the flags of a command.`)
}

// setupTracing configures all tracers of the module to level.
func setupTracing(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: unknown trace level '%s'", errUsage, level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINTERNAL, "error configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
	return nil
}

func build(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	out := fs.String("out", "", "Output folder (default: the input folder)")
	sheet := fs.String("sheet", "", "Sheet image to read glyphs from, instead of a glyph folder")
	start := fs.String("start", "", "Codepoint of the sheet's top-left cell")
	whitespace := fs.String("whitespace", "", "Whitespace table (default: Whitespace.txt in the input folder)")
	kerning := fs.String("kerning", "", "Kerning table (default: Kerning.txt in the input folder)")
	preview := fs.Int("preview", 0, "Write page previews, enlarged by this factor")
	dryrun := fs.Bool("n", false, "Dry run: build everything, but write no files")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := setupTracing(*tlevel); err != nil {
		return err
	}
	conf := pipeline.Config{
		OutputDir:      *out,
		SheetPath:      *sheet,
		WhitespaceFile: *whitespace,
		KerningFile:    *kerning,
		PreviewScale:   *preview,
		DryRun:         *dryrun,
	}
	switch {
	case fs.NArg() == 1:
		conf.InputDir = fs.Arg(0)
	case fs.NArg() == 0 && *sheet != "":
	default:
		return fmt.Errorf("%w: build takes exactly one glyph folder", errUsage)
	}
	if *sheet != "" {
		if *start == "" {
			return fmt.Errorf("%w: -sheet requires -start", errUsage)
		}
		cp, err := glyphsrc.ParseStartCodepoint(*start)
		if err != nil {
			return err
		}
		conf.StartCodepoint = cp
	}
	if conf.InputDir != "" {
		var err error
		if conf, err = conf.ApplySettings(filepath.Join(conf.InputDir, pipeline.SettingsFile)); err != nil {
			return err
		}
	}
	result, err := pipeline.Run(conf)
	if err != nil {
		return err
	}
	return printBuild(result)
}

func slice(args []string) error {
	fs := flag.NewFlagSet("slice", flag.ContinueOnError)
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dryrun := fs.Bool("n", false, "Dry run: slice the sheet, but write no files")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("%w: slice takes a sheet image, an output folder and a codepoint", errUsage)
	}
	if err := setupTracing(*tlevel); err != nil {
		return err
	}
	start, err := glyphsrc.ParseStartCodepoint(fs.Arg(2))
	if err != nil {
		return err
	}
	result, err := pipeline.Slice(fs.Arg(0), fs.Arg(1), start, *dryrun)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%d cells, %d blank", result.Cells, result.Skipped)
	if !result.Written {
		pterm.Warning.Printfln("%d glyph files not written", len(result.Files))
		return nil
	}
	pterm.Success.Printfln("wrote %d glyph files to %s", len(result.Files), fs.Arg(1))
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func printBuild(result *pipeline.Result) error {
	data := pterm.TableData{{"Page", "Glyphs", "Tiles"}}
	for _, p := range result.Pages {
		data = append(data, []string{
			fmt.Sprintf("%02d", p.Index),
			fmt.Sprintf("%d", p.Glyphs),
			fmt.Sprintf("%d", p.Tiles),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot print summary")
	}
	pterm.Info.Printfln("%d glyphs, %d whitespace characters, %d kerning blocks",
		len(result.Glyphs), result.Whitespace, result.Kerning)
	if result.Skipped > 0 {
		pterm.Info.Printfln("skipped %d blank cells", result.Skipped)
	}
	for _, cp := range result.Unresolved {
		pterm.Warning.Printfln("kerning refers to %s, which is neither a glyph nor whitespace", cp.Hex())
	}
	if !result.Written {
		pterm.Warning.Printfln("dry run, %d files not written", len(result.Files))
		return nil
	}
	pterm.Success.Printfln("wrote %d files to %s", len(result.Files), result.OutputDir)
	return nil
}

// report prints err and returns the matching exit status.
func report(err error) int {
	if errors.Is(err, errUsage) {
		pterm.Error.Println(err.Error())
		usage()
		return exitUsage
	}
	pterm.Error.Println(core.UserMessage(err))
	tracer().Errorf(err.Error())
	return exitStatus(err)
}

func exitStatus(err error) int {
	switch core.Code(err) {
	case core.NOERROR:
		return exitOK
	case core.EINVALID:
		return exitInvalid
	case core.EPARSE:
		return exitParse
	case core.ECAPACITY:
		return exitCapacity
	case core.ECONFLICT:
		return exitConflict
	case core.EMISSING:
		return exitMissing
	}
	return exitInternal
}
