package web

import (
	"io/fs"
	"net/http"
)

// ErrorHandler captures 404 errors and serves 404.html from fsys instead,
// when fsys has it.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			fsys:           fsys,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	fsys    fs.FS
	noWrite bool
	err     error
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusNotFound {
		b, err := fs.ReadFile(w.fsys, "404.html")
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Del("X-Content-Type-Options")
			w.Header().Del("Content-Length")
			w.ResponseWriter.WriteHeader(statusCode)
			w.noWrite = true
			_, w.err = w.ResponseWriter.Write(b)
			return
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
