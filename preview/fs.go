/*
Package preview implements a read-only fs.FS that renders the example
catalog as a small HTML site, so the examples can be browsed without running
the full documentation build.

The tree looks like this:

	index.html                 list of examples
	404.html                   not found page
	<example>/index.html       the example's files as code blocks
	<example>/raw/<file>       the file contents, byte for byte

If an example contains a README.md, it is rendered above the files. The
README may start with front matter in TOML format, delimited by "+++":

	+++
	title = "Streaming updates"
	tags = ["websocket", "python"]
	+++
	This example streams rows into a table.

Pages use the site descriptor for the title, favicon, logo, external
navbar links and footer.
*/
package preview

import (
	"bytes"
	"io/fs"
	"log"
	"path"
	"sort"
	"time"

	"github.com/perspective-dev/siteconf/catalog"
	"github.com/perspective-dev/siteconf/site"
)

// readmeFile is rendered on the example page when present.
const readmeFile = "README.md"

// FS is the rendered preview of an example catalog.
type FS struct {
	nodes   map[string]*node
	modTime time.Time
}

// New renders the examples using cfg for site metadata. Links in the pages
// are built under base, the URL path the preview is served from.
func New(examples []catalog.Example, cfg *site.Config, base string) (*FS, error) {
	if base == "" {
		base = "/"
	}
	tpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	p := &FS{
		nodes:   make(map[string]*node),
		modTime: time.Now(),
	}
	p.mkdir(".")

	b, err := render(tpl, "index", data{Site: cfg, Base: base, Title: "Examples", Examples: examples})
	if err != nil {
		return nil, err
	}
	p.add("index.html", b)

	b, err = render(tpl, "notfound", data{Site: cfg, Base: base, Title: "Not Found"})
	if err != nil {
		return nil, err
	}
	p.add("404.html", b)

	for i := range examples {
		ex := &examples[i]
		if !fs.ValidPath(ex.Name) || ex.Name == "." || p.nodes[ex.Name] != nil {
			log.Printf("preview: skipping example %q", ex.Name)
			continue
		}
		d := data{Site: cfg, Base: base, Title: ex.Name, Example: ex}
		for _, f := range ex.Files {
			if f.Name == readmeFile {
				d.FrontMatter, d.Content, err = renderMarkdown([]byte(f.Contents))
				if err != nil {
					log.Printf("preview: %s: %s", ex.Name, err)
				}
				if d.FrontMatter.Title != "" {
					d.Title = d.FrontMatter.Title
				}
			}
		}
		b, err = render(tpl, "example", d)
		if err != nil {
			return nil, err
		}
		p.add(path.Join(ex.Name, "index.html"), b)
		p.mkdir(path.Join(ex.Name, "raw"))
		for _, f := range ex.Files {
			p.add(path.Join(ex.Name, "raw", f.Name), []byte(f.Contents))
		}
	}

	for _, n := range p.nodes {
		sort.Strings(n.children)
	}
	return p, nil
}

// mkdir adds a directory and any missing parents.
func (p *FS) mkdir(name string) *node {
	if n, ok := p.nodes[name]; ok {
		return n
	}
	n := &node{info: fileInfo{name: path.Base(name), mode: fs.ModeDir | 0o555, modTime: p.modTime}}
	p.nodes[name] = n
	if name != "." {
		parent := p.mkdir(path.Dir(name))
		parent.children = append(parent.children, n.info.name)
	}
	return n
}

// add adds a file, creating parent directories as needed.
func (p *FS) add(name string, b []byte) {
	if _, ok := p.nodes[name]; ok {
		return
	}
	parent := p.mkdir(path.Dir(name))
	n := &node{
		info: fileInfo{name: path.Base(name), size: int64(len(b)), mode: 0o444, modTime: p.modTime},
		data: b,
	}
	p.nodes[name] = n
	parent.children = append(parent.children, n.info.name)
}

// Open opens the named file.
//
// When Open returns an error, it is of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
func (p *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	n, ok := p.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if !n.info.IsDir() {
		return &file{Reader: bytes.NewReader(n.data), info: n.info}, nil
	}
	entries := make([]fs.DirEntry, 0, len(n.children))
	for _, c := range n.children {
		entries = append(entries, dirEntry{p.nodes[path.Join(name, c)].info})
	}
	return &dir{info: n.info, entries: entries}, nil
}

// ReadFile returns a copy of the named file's contents.
func (p *FS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	n, ok := p.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrNotExist}
	}
	if n.info.IsDir() {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), n.data...), nil
}
