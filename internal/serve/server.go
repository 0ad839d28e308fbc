// Package serve provides a local development server for the transformed
// documentation: static file serving plus websocket-driven live reload
// while the docs sources are being edited.
package serve

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures the dev server.
type Options struct {
	Dir          string // site directory to serve
	Port         int
	Open         bool // open browser on start
	LiveReload   bool
	AllowAllCORS bool
}

// Server serves a static documentation site with optional live reload.
type Server struct {
	opts   Options
	hub    *Hub
	router chi.Router
}

// New creates a Server for the given options. When live reload is enabled
// the returned server exposes a /__reload websocket endpoint and injects a
// small client snippet into served HTML pages.
func New(opts Options) *Server {
	s := &Server{opts: opts}
	if opts.LiveReload {
		s.hub = NewHub()
	}
	s.router = s.buildRouter()
	return s
}

// Hub returns the live-reload hub, or nil when live reload is disabled.
func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// No timeout middleware: the reload websocket stays open indefinitely.
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.opts.AllowAllCORS {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.hub != nil {
		r.Get("/__reload", s.hub.HandleWebSocket)
	}

	r.Get("/*", s.servePage)

	return r
}

// servePage serves files from the site directory. HTML responses get the
// live-reload client appended before </body> when reload is enabled.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel += "index.html"
	}
	full := filepath.Join(s.opts.Dir, filepath.FromSlash(rel))

	if !strings.HasSuffix(full, ".html") || s.hub == nil {
		http.ServeFile(w, r, full)
		return
	}

	content, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	page := injectReloadClient(string(content))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// reloadClient reconnects with a short backoff so a rebuild-triggered
// server restart does not strand open tabs.
const reloadClient = `<script>(function() {
  function connect() {
    var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/__reload");
    ws.onmessage = function(ev) { if (ev.data === "reload") location.reload(); };
    ws.onclose = function() { setTimeout(connect, 1000); };
  }
  connect();
})();</script>`

// injectReloadClient appends the reload snippet directly before </body>,
// or at the end of fragment pages.
func injectReloadClient(page string) string {
	if i := strings.Index(page, "</body>"); i >= 0 {
		return page[:i] + reloadClient + "\n" + page[i:]
	}
	return page + "\n" + reloadClient
}

// ListenAndServe starts the server and blocks.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	url := fmt.Sprintf("http://localhost:%d", s.opts.Port)

	if s.opts.Open {
		go openBrowser(url)
	}

	fmt.Printf("Serving documentation at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(addr, s.router)
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
