/*
Package web serves the site descriptor, the example catalog and the HTML
preview over HTTP.

	GET /site.json          the assembled descriptor
	GET /examples           example names
	GET /examples/{name}    one example with its files
	GET /preview/...        the HTML preview
	GET /health             "ok"

The catalog is rebuilt from the configured file system on every request.
Wrap the file system with a cache (github.com/ancientlore/cachefs) to keep
that cheap.
*/
package web

import (
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"

	"github.com/perspective-dev/siteconf/catalog"
	"github.com/perspective-dev/siteconf/preview"
	"github.com/perspective-dev/siteconf/site"
)

const previewPrefix = "/preview"

// ServerOpts configure a Server.
type ServerOpts struct {
	FS            fs.FS             // file system holding the site
	Blocks        string            // example root inside FS
	Site          site.Options      // passed to site.Assemble
	Headers       map[string]string // added to every response
	Expires       time.Duration     // expiry of generated responses
	StaticExpires time.Duration     // expiry of raw example files
}

// Server answers descriptor, catalog and preview requests.
type Server struct {
	opts ServerOpts
}

// NewServer returns a Server using opts.
func NewServer(opts ServerOpts) *Server {
	if opts.Blocks == "" {
		opts.Blocks = site.DefaultBlocks
	}
	return &Server{opts}
}

// Mux returns the routes without any wrapping handlers.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.rootHandler)
	mux.HandleFunc("/site.json", s.siteHandler)
	mux.HandleFunc("/examples", s.exampleListHandler)
	mux.HandleFunc("/examples/", s.exampleHandler)
	mux.HandleFunc(previewPrefix+"/", s.previewHandler)
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

// Handler returns the routes wrapped with headers, expiry and compression.
func (s *Server) Handler() http.Handler {
	return HeaderHandler(
		ExpiresHandler(
			gziphandler.GzipHandler(s.Mux()),
			s.opts.Expires,
			s.opts.StaticExpires,
		),
		s.opts.Headers)
}

// load reads the catalog.
func (s *Server) load() ([]catalog.Example, error) {
	return catalog.Build(s.opts.FS, s.opts.Blocks)
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, previewPrefix+"/", http.StatusFound)
}

func (s *Server) siteHandler(w http.ResponseWriter, r *http.Request) {
	examples, err := s.load()
	if err != nil {
		s.logError(w, err)
		return
	}
	cfg := site.Assemble(examples, s.opts.Site)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	err = site.Encode(w, cfg, site.JSON)
	if err != nil {
		log.Printf("siteHandler: %s", err)
	}
}

func (s *Server) exampleListHandler(w http.ResponseWriter, r *http.Request) {
	examples, err := s.load()
	if err != nil {
		s.logError(w, err)
		return
	}
	s.writeJSON(w, catalog.Names(examples))
}

func (s *Server) exampleHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/examples/")
	examples, err := s.load()
	if err != nil {
		s.logError(w, err)
		return
	}
	ex := catalog.Find(examples, name)
	if ex == nil {
		http.Error(w, "Did not find example: "+name, http.StatusNotFound)
		return
	}
	s.writeJSON(w, ex)
}

func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	examples, err := s.load()
	if err != nil {
		s.logError(w, err)
		return
	}
	p, err := preview.New(examples, site.Assemble(examples, s.opts.Site), previewPrefix+"/")
	if err != nil {
		s.logError(w, err)
		return
	}
	h := ErrorHandler(http.StripPrefix(previewPrefix, http.FileServer(http.FS(p))), p)
	h.ServeHTTP(w, r)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) logError(w http.ResponseWriter, err error) {
	log.Print(err.Error())
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(b)
}
