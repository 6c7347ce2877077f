package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/perspective-dev/siteconf/catalog"
	"github.com/perspective-dev/siteconf/site"
	"github.com/perspective-dev/siteconf/web"
)

func main() {
	// Setup flags
	var (
		fRoot          = flag.String("root", ".", "Root of the documentation site.")
		fBlocks        = flag.String("blocks", "", "Example folder, relative to root. Defaults to the settings file or "+site.DefaultBlocks+".")
		fFormat        = flag.String("format", "json", "Output format: json, yaml, or toml.")
		fOut           = flag.String("out", "-", "Output file; - writes to standard output.")
		fServe         = flag.String("serve", "", "Address to serve on, like :9000. Generates once and exits when empty.")
		fCacheSize     = flag.Int64("cachesize", 10*1024*1024, "Cache size in bytes when serving.")
		fCacheDuration = flag.Duration("cacheduration", 10*time.Second, "Cache expiration when serving.")
	)
	flag.Parse()
	flagenv.Prefix = "SITECONF_"
	flagenv.Parse()

	format, err := site.ParseFormat(*fFormat)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	// Read settings from the site root
	settings, err := site.LoadSettings(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot load settings from %q: %s", *fRoot, err)
		os.Exit(2)
	}
	if settings == nil {
		log.Printf("No %s found; using defaults.", site.SettingsFile)
	}
	blocks := *fBlocks
	if blocks == "" {
		blocks = settings.BlocksDir()
	}
	opts := site.Options{Root: *fRoot, Settings: settings}

	if *fServe != "" {
		serve(*fServe, *fRoot, blocks, opts, *fCacheSize, *fCacheDuration)
		return
	}

	// Build the catalog
	fsys, dir := source(*fRoot, blocks)
	examples, err := catalog.Build(fsys, dir)
	if err != nil {
		log.Printf("Cannot read examples: %s", err)
		os.Exit(3)
	}
	log.Printf("Found %d examples in %q", len(examples), blocks)

	// Write the descriptor
	err = write(*fOut, site.Assemble(examples, opts), format)
	if err != nil {
		log.Printf("Cannot write descriptor: %s", err)
		os.Exit(4)
	}
}

// source returns the file system and folder holding the examples. Absolute
// blocks paths are used as is; others are relative to root. Paths that leave
// root, like "../examples", get a file system of their own.
func source(root, blocks string) (fs.FS, string) {
	if filepath.IsAbs(blocks) {
		return os.DirFS(blocks), "."
	}
	dir := filepath.ToSlash(filepath.Clean(blocks))
	if !fs.ValidPath(dir) {
		return os.DirFS(filepath.Join(root, blocks)), "."
	}
	return os.DirFS(root), dir
}

// write encodes cfg to the named file, or to standard output for "-".
func write(name string, cfg *site.Config, format site.Format) (err error) {
	var w io.Writer = os.Stdout
	if name != "-" {
		var f *os.File
		f, err = os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return site.Encode(w, cfg, format)
}

// serve runs the preview server until interrupted.
func serve(addr, root, blocks string, opts site.Options, cacheSize int64, cacheDuration time.Duration) {
	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	fsys, dir := source(root, blocks)
	cachedFileSystem := cachefs.New(fsys, &cachefs.Config{GroupName: "siteconf", SizeInBytes: cacheSize, Duration: cacheDuration})

	var (
		expires, staticExpires time.Duration
		headers                map[string]string
	)
	if opts.Settings != nil {
		expires = time.Duration(opts.Settings.Expires)
		staticExpires = time.Duration(opts.Settings.StaticExpires)
		headers = opts.Settings.Headers
	}
	server := web.NewServer(web.ServerOpts{
		FS:            cachedFileSystem,
		Blocks:        dir,
		Site:          opts,
		Headers:       headers,
		Expires:       expires,
		StaticExpires: staticExpires,
	})

	srv := http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
		os.Exit(5)
	}
	log.Print("Goodbye.")
}
