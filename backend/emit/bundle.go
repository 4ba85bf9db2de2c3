package emit

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/ctfont/core"
)

// File is a generated file, held in memory.
type File struct {
	Name string
	Data []byte
}

// Bundle collects generated files. Nothing is written to disk before Commit.
type Bundle struct {
	files []File
	index map[string]int
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{index: make(map[string]int)}
}

// Add puts a file into the bundle, replacing a file of the same name.
func (b *Bundle) Add(name string, data []byte) {
	if i, ok := b.index[name]; ok {
		b.files[i].Data = data
		return
	}
	b.index[name] = len(b.files)
	b.files = append(b.files, File{Name: name, Data: data})
}

// Files returns the files in the order they were added.
func (b *Bundle) Files() []File {
	return append([]File(nil), b.files...)
}

// File returns the file with the given name.
func (b *Bundle) File(name string) (File, bool) {
	if i, ok := b.index[name]; ok {
		return b.files[i], true
	}
	return File{}, false
}

// Names lists the file names in the order they were added.
func (b *Bundle) Names() []string {
	names := make([]string, len(b.files))
	for i, f := range b.files {
		names[i] = f.Name
	}
	return names
}

// Commit writes all files into dir. Files are first written to temporary
// files in dir, which are renamed only after all of them have been written
// successfully; on failure the temporary files are removed and no target
// file is touched.
func (b *Bundle) Commit(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create output folder '%s'", dir)
	}
	temps := make([]string, 0, len(b.files))
	cleanup := func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}
	for _, f := range b.files {
		tmp, err := os.CreateTemp(dir, "."+f.Name+".*")
		if err != nil {
			cleanup()
			return core.WrapError(err, core.EINTERNAL, "cannot create temporary file for '%s'", f.Name)
		}
		temps = append(temps, tmp.Name())
		_, err = tmp.Write(f.Data)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			err = os.Chmod(tmp.Name(), 0644)
		}
		if err != nil {
			cleanup()
			return core.WrapError(err, core.EINTERNAL, "cannot write '%s'", f.Name)
		}
	}
	for i, f := range b.files {
		target := filepath.Join(dir, f.Name)
		if err := os.Rename(temps[i], target); err != nil {
			cleanup()
			return core.WrapError(err, core.EINTERNAL, "cannot move '%s' into place", target)
		}
		tracer().Debugf("wrote %s", target)
	}
	tracer().Infof("wrote %d files to %s", len(b.files), dir)
	return nil
}
