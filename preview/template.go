package preview

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/perspective-dev/siteconf/catalog"
	"github.com/perspective-dev/siteconf/site"
)

//go:embed default.html
var defaultTemplate string

// data is what is passed to the preview templates.
type data struct {
	Site        *site.Config      // descriptor the preview belongs to
	Base        string            // URL path the preview is served under
	Title       string            // page heading
	Examples    []catalog.Example // all examples, for the index
	Example     *catalog.Example  // current example, if any
	FrontMatter FrontMatter       // front matter of the example README
	Content     template.HTML     // rendered README
}

// languages maps file extensions to code highlighting classes.
var languages = map[string]string{
	".js":   "javascript",
	".mjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "tsx",
	".jsx":  "jsx",
	".html": "html",
	".css":  "css",
	".less": "less",
	".json": "json",
	".md":   "markdown",
	".py":   "python",
	".rs":   "rust",
	".sh":   "bash",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".csv":  "csv",
}

// lang returns the highlighting class for a file name.
func lang(name string) string {
	if l, ok := languages[strings.ToLower(path.Ext(name))]; ok {
		return l
	}
	return "text"
}

// loadTemplates parses the embedded preview templates.
func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"lang":       lang,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
	}
	tpl, err := template.New("preview").Funcs(funcMap).Parse(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, nil
}

// render executes the named template into a byte slice.
func render(tpl *template.Template, name string, d data) ([]byte, error) {
	var wtr bytes.Buffer
	err := tpl.ExecuteTemplate(&wtr, name, d)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return wtr.Bytes(), nil
}
