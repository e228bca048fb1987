package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Unpack writes every entry of the zip archive read from r into dir,
// recreating the archive's relative paths including subdirectories.
// Existing files at the same paths are overwritten.
//
// The stream is spooled to a temporary file first (zip needs random
// access) and entry contents stream from there to disk, so memory use
// stays bounded regardless of archive size. Any I/O error returns a
// *Error carrying the underlying cause; Unpack returns exactly once.
func Unpack(dir string, r io.Reader) error {
	tmp, err := os.CreateTemp("", "mdartifact-*.zip")
	if err != nil {
		return &Error{Err: fmt.Errorf("spool archive: %w", err)}
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return &Error{Err: fmt.Errorf("spool archive: %w", err)}
	}

	archive, err := zip.NewReader(tmp, size)
	if err != nil {
		return &Error{Err: fmt.Errorf("open archive: %w", err)}
	}

	for _, entry := range archive.File {
		if err := writeEntry(dir, entry); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(dir string, entry *zip.File) error {
	path, err := entryPath(dir, entry.Name)
	if err != nil {
		return &Error{Entry: entry.Name, Err: err}
	}

	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return &Error{Entry: entry.Name, Err: err}
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Error{Entry: entry.Name, Err: err}
	}

	src, err := entry.Open()
	if err != nil {
		return &Error{Entry: entry.Name, Err: err}
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return &Error{Entry: entry.Name, Err: err}
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return &Error{Entry: entry.Name, Err: err}
	}
	if err := dst.Close(); err != nil {
		return &Error{Entry: entry.Name, Err: err}
	}
	return nil
}

// entryPath resolves an archive entry name under dir, rejecting names
// that would escape it.
func entryPath(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(name))
	root := filepath.Clean(dir)
	if path != root && !strings.HasPrefix(path, root+string(os.PathSeparator)) {
		return "", ErrUnsafePath
	}
	return path, nil
}
