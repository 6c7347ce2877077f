package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perspective-dev/siteconf/catalog"
	"github.com/perspective-dev/siteconf/site"
)

func testSite() fstest.MapFS {
	return fstest.MapFS{
		"static/blocks/fractal/index.js":    {Data: []byte("const x = 1;\n")},
		"static/blocks/fractal/preview.png": {Data: []byte{1, 2, 3}},
		"static/blocks/streaming/README.md": {Data: []byte("# Streaming\n")},
	}
}

func newTestServer(t *testing.T, opts ServerOpts) *httptest.Server {
	t.Helper()
	if opts.FS == nil {
		opts.FS = testSite()
	}
	srv := httptest.NewServer(NewServer(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestSiteJSON(t *testing.T) {
	srv := newTestServer(t, ServerOpts{Site: site.Options{Now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}})
	resp, body := get(t, srv.URL+"/site.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var cfg struct {
		Title        string `json:"title"`
		CustomFields struct {
			Examples []catalog.Example `json:"examples"`
		} `json:"customFields"`
		ThemeConfig struct {
			Footer struct {
				Copyright string `json:"copyright"`
			} `json:"footer"`
		} `json:"themeConfig"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &cfg))
	assert.Equal(t, "Perspective", cfg.Title)
	assert.Equal(t, []catalog.Example{
		{Name: "fractal", Files: []catalog.File{{Name: "index.js", Contents: "const x = 1;\n"}}},
		{Name: "streaming", Files: []catalog.File{{Name: "README.md", Contents: "# Streaming\n"}}},
	}, cfg.CustomFields.Examples)
	assert.Equal(t, "Copyright © 2030 The Perspective Authors", cfg.ThemeConfig.Footer.Copyright)
}

func TestExampleList(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, body := get(t, srv.URL+"/examples")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `["fractal","streaming"]`, body)
}

func TestExample(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, body := get(t, srv.URL+"/examples/fractal")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"fractal","files":[{"name":"index.js","contents":"const x = 1;\n"}]}`, body)

	resp, _ = get(t, srv.URL+"/examples/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMissingBlocks(t *testing.T) {
	srv := newTestServer(t, ServerOpts{FS: fstest.MapFS{}})
	for _, p := range []string{"/site.json", "/examples", "/examples/fractal", "/preview/"} {
		resp, _ := get(t, srv.URL+p)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, p)
	}
}

func TestCustomBlocks(t *testing.T) {
	fsys := fstest.MapFS{
		"examples/basic/index.js": {Data: []byte("ok")},
	}
	srv := newTestServer(t, ServerOpts{FS: fsys, Blocks: "examples"})
	_, body := get(t, srv.URL+"/examples")
	assert.JSONEq(t, `["basic"]`, body)
}

func TestPreview(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `/preview/fractal/index.html`)

	resp, body = get(t, srv.URL+"/preview/fractal/raw/index.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "const x = 1;\n", body)

	resp, body = get(t, srv.URL+"/preview/streaming/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>Streaming</h1>")
}

func TestPreviewNotFound(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, body := get(t, srv.URL+"/preview/missing.html")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "does not exist")

	resp, _ = get(t, srv.URL+"/nothing-here")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestHeadersAndExpires(t *testing.T) {
	srv := newTestServer(t, ServerOpts{
		Headers:       map[string]string{"X-Frame-Options": "DENY"},
		Expires:       time.Minute,
		StaticExpires: time.Hour,
	})
	resp, _ := get(t, srv.URL+"/site.json")
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	expires, err := time.Parse(time.RFC1123, resp.Header.Get("Expires"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expires, 5*time.Second)

	resp, _ = get(t, srv.URL+"/preview/fractal/raw/index.js")
	expires, err = time.Parse(time.RFC1123, resp.Header.Get("Expires"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)
}

func TestHealthExpires(t *testing.T) {
	srv := newTestServer(t, ServerOpts{Expires: 0, StaticExpires: time.Hour})
	resp, _ := get(t, srv.URL+"/health")
	assert.Empty(t, resp.Header.Get("Expires"))
}

func TestErrorPageOnlyFor404(t *testing.T) {
	fsys := fstest.MapFS{
		"404.html": {Data: []byte("custom not found")},
		"500.html": {Data: []byte("custom failure")},
	}
	h := ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		http.NotFound(w, r)
	}), fsys)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, body := get(t, srv.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "custom not found", body)

	resp, body = get(t, srv.URL+"/fail")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom\n", body)
}

func TestNoExpires(t *testing.T) {
	srv := newTestServer(t, ServerOpts{})
	resp, _ := get(t, srv.URL+"/site.json")
	assert.Empty(t, resp.Header.Get("Expires"))
}

func TestIsGenerated(t *testing.T) {
	tests := map[string]bool{
		"/site.json":                    true,
		"/examples":                     true,
		"/examples/fractal":             true,
		"/preview/":                     true,
		"/preview/fractal/index.html":   true,
		"/preview/fractal/raw/index.js": false,
		"/preview/fractal/raw/a.html":   false,
		"/health":                       true,
		"/favicon.ico":                  false,
	}
	for p, want := range tests {
		assert.Equal(t, want, isGenerated(p), p)
	}
}
