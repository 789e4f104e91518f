package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wordalign/internal/align"
)

// Resolve picks the writer for an output. An explicit format wins, then the
// extension of path, then xlsx.
func Resolve(format, path string) (Writer, error) {
	if format != "" {
		return Lookup(format)
	}

	if ext := filepath.Ext(path); ext != "" {
		if w, ok := DefaultRegistry.ByExtension(ext); ok {
			return w, nil
		}

		return nil, fmt.Errorf("%w for extension %q (available: %s)", ErrUnknownFormat, ext, strings.Join(Formats(), ", "))
	}

	return Lookup("xlsx")
}

// DefaultPath returns alignment_<stem><ext>, where stem is the base name of
// source without its extension.
func DefaultPath(source string, w Writer) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if source == "" || stem == "." || stem == string(filepath.Separator) {
		return "alignment" + w.FileExtension()
	}

	return "alignment_" + stem + w.FileExtension()
}

// WriteFile renders records with w into path, creating parent directories.
func WriteFile(path string, w Writer, records []align.Record, opts Options) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := w.Write(f, records, opts); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	return nil
}
