package api

import (
	"net/http"

	"github.com/erazemk/najdeno/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Store: st}
	messagesHandler := &MessagesHandler{Store: st}
	statsHandler := &StatsHandler{Store: st}

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PATCH /api/items/{id}/status", itemsHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	mux.HandleFunc("POST /api/items/{id}/messages", messagesHandler.Create)
	mux.HandleFunc("GET /api/items/{id}/messages", messagesHandler.List)

	mux.HandleFunc("GET /api/stats", statsHandler.Get)
	mux.HandleFunc("GET /api/health", Health)

	// Anything else under /api, including known paths with the wrong method.
	mux.HandleFunc("/api/", NotFound)

	return Recover(CORS(mux))
}
