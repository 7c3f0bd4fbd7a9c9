package web

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/erazemk/najdeno/internal/api"
	"github.com/erazemk/najdeno/internal/store"
	webembed "github.com/erazemk/najdeno/web"
)

// NewRouter creates the board router with all page routes registered.
func NewRouter(st *store.Store) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", staticHandler(webembed.StaticFS()))

	mux.HandleFunc("GET /{$}", s.Board)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("POST /items/{id}/claim", s.ItemClaimSubmit)
	mux.HandleFunc("GET /items/{id}/messages", s.MessagesPage)
	mux.HandleFunc("POST /items/{id}/messages", s.MessageSubmit)

	mux.HandleFunc("/", api.NotFound)

	return mux, nil
}

// staticHandler serves embedded assets. Directories and unknown files get
// the JSON not found response.
func staticHandler(fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/static/")
		if !fs.ValidPath(name) || name == "." {
			api.NotFound(w, r)
			return
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			api.NotFound(w, r)
			return
		}
		http.ServeFileFS(w, r, fsys, name)
	})
}
