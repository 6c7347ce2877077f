/*
Package catalog gathers the example blocks shown on the documentation site.

The example root holds one folder per example. Every folder becomes an
Example, and every displayable file inside it becomes a File with its raw
contents, decoded as UTF-8 text. Hidden files (those starting with ".") and
binary assets (".png" and ".arrow") are left out; folders are never filtered
by name.

	examples, err := catalog.Load("static/blocks")
	if err != nil {
		log.Fatal(err)
	}

Entries are returned in the order fs.ReadDir yields them.
*/
package catalog

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"
)

// File is one file of an example.
type File struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Contents string `json:"contents" yaml:"contents" toml:"contents"`
}

// Example is a named group of files shown together in the documentation.
type Example struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Files []File `json:"files" yaml:"files" toml:"files"`
}

// Load builds the catalog from the folder at root on the local disk.
func Load(root string) ([]Example, error) {
	return Build(os.DirFS(root), ".")
}

// Build reads every example folder under dir in fsys. Any read error stops
// the scan and is returned; no partial catalog is produced.
func Build(fsys fs.FS, dir string) ([]Example, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	examples := make([]Example, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ex, err := readExample(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// readExample reads the displayable files of a single example folder.
func readExample(fsys fs.FS, dir string) (Example, error) {
	ex := Example{
		Name:  path.Base(dir),
		Files: []File{},
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return ex, err
	}
	for _, entry := range entries {
		if Excluded(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			log.Printf("catalog: skipping folder %q", path.Join(dir, entry.Name()))
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return ex, err
		}
		ex.Files = append(ex.Files, File{Name: entry.Name(), Contents: decode(b)})
	}
	return ex, nil
}

// decode converts b to text, replacing invalid UTF-8 sequences with U+FFFD.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// Find returns the example with the given name, or nil.
func Find(examples []Example, name string) *Example {
	for i := range examples {
		if examples[i].Name == name {
			return &examples[i]
		}
	}
	return nil
}

// Names returns the example names in catalog order.
func Names(examples []Example) []string {
	r := make([]string, len(examples))
	for i := range examples {
		r[i] = examples[i].Name
	}
	return r
}
