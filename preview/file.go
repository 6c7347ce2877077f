package preview

import (
	"bytes"
	"io"
	"io/fs"
	"time"
)

// node is one entry of the preview tree.
type node struct {
	info     fileInfo
	data     []byte   // contents, for files
	children []string // base names, for directories
}

// file is an open, in-memory preview file.
type file struct {
	*bytes.Reader
	info fileInfo
}

// Stat returns information about the file.
func (f *file) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Close closes the file. Preview files are in memory, so this function does nothing.
func (f *file) Close() error {
	return nil
}

// dir is an open preview directory.
type dir struct {
	info    fileInfo
	entries []fs.DirEntry
	pos     int
}

// Stat returns information about the directory.
func (d *dir) Stat() (fs.FileInfo, error) {
	return d.info, nil
}

// Read fails because directories have no contents.
func (d *dir) Read(b []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.Name(), Err: fs.ErrInvalid}
}

// Close closes the directory.
func (d *dir) Close() error {
	return nil
}

// ReadDir reads the contents of the directory and returns
// a slice of up to n DirEntry values in directory order.
// Subsequent calls on the same file will yield further DirEntry values.
//
// If n > 0, ReadDir returns at most n DirEntry structures.
// At the end of a directory, the error is io.EOF.
//
// If n <= 0, ReadDir returns all remaining DirEntry values in a single
// slice and a nil error.
func (d *dir) ReadDir(n int) ([]fs.DirEntry, error) {
	rest := len(d.entries) - d.pos
	if n <= 0 {
		dest := make([]fs.DirEntry, rest)
		copy(dest, d.entries[d.pos:])
		d.pos = len(d.entries)
		return dest, nil
	}
	if rest == 0 {
		return nil, io.EOF
	}
	if n > rest {
		n = rest
	}
	dest := make([]fs.DirEntry, n)
	copy(dest, d.entries[d.pos:d.pos+n])
	d.pos += n
	return dest, nil
}

// fileInfo holds the metadata about a preview file.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

// Name returns the base name of the file.
func (fi fileInfo) Name() string {
	return fi.name
}

// Size returns the length in bytes.
func (fi fileInfo) Size() int64 {
	return fi.size
}

// Mode returns the file mode bits of the file.
func (fi fileInfo) Mode() fs.FileMode {
	return fi.mode
}

// ModTime returns the time the preview was built.
func (fi fileInfo) ModTime() time.Time {
	return fi.modTime
}

// IsDir is an abbreviation for Mode().IsDir().
func (fi fileInfo) IsDir() bool {
	return fi.mode.IsDir()
}

// Sys always returns nil.
func (fi fileInfo) Sys() any {
	return nil
}

// dirEntry represents a directory entry.
type dirEntry struct {
	fileInfo
}

// Type returns the type bits for the entry.
func (de dirEntry) Type() fs.FileMode {
	return de.fileInfo.Mode().Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
func (de dirEntry) Info() (fs.FileInfo, error) {
	return de.fileInfo, nil
}
