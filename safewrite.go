package joywaves

import (
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/log"
)

// SafeWrite noisily saves ctx to a tmp file and then moves it.
// The format is picked from ext: .png, .svg or .pdf.
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	write, err := contextWriter(ctx, ext)
	if err != nil {
		log.Error("Problem saving", "prefix", prefix, "err", err)
		return err
	}
	return s.SafeWriteFunc(prefix, ext, write)
}

// SafeWriteFunc is SafeWrite for anything that can write itself to a named file.
func (s Seed) SafeWriteFunc(prefix, ext string, write func(fname string) error) error {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(fname, write); err != nil {
		log.Error("Problem saving", "file", fname, "err", err)
		return err
	}
	log.Info("Saved", "file", fname)
	return nil
}

func contextWriter(ctx *Context, ext string) (func(string) error, error) {
	switch ext {
	case ".png":
		return ctx.WritePNG, nil
	case ".svg":
		return ctx.WriteSVG, nil
	case ".pdf":
		return ctx.WritePDF, nil
	}
	return nil, fmt.Errorf("unsupported file format %s", ext)
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(fname string, write func(string) error) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	// The temp file sits next to fname so the rename never crosses drives
	tmpfile, err := os.CreateTemp(path.Dir(fname), "joywaves.*"+ext)
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents unless it already exists.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
