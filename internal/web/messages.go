package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/api"
	"github.com/erazemk/najdeno/internal/store"
)

var errNotFound = store.ErrNotFound

type messagesPage struct {
	PageData
	Card        ItemCard
	Messages    []MessageView
	ReturnQuery template.URL
	Sender      string
	Text        string
}

// MessagesPage handles GET /items/{id}/messages.
func (s *Server) MessagesPage(w http.ResponseWriter, r *http.Request) {
	filters := filtersFrom(r.URL.Query())
	page := &messagesPage{}
	s.renderMessages(w, r, http.StatusOK, filters, page)
}

// MessageSubmit handles POST /items/{id}/messages.
func (s *Server) MessageSubmit(w http.ResponseWriter, r *http.Request) {
	filters := returnFilters(r.FormValue("return"))

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.boardError(w, r, filters, errNotFound, "adding message")
		return
	}

	sender := r.FormValue("sender")
	text := r.FormValue("text")
	msg, err := s.Store.AppendMessage(r.Context(), id, sender, text)
	if errors.Is(err, store.ErrNotFound) {
		s.boardError(w, r, filters, err, "adding message")
		return
	}
	if err != nil {
		status, message := api.Classify(err, "adding message")
		if status == http.StatusInternalServerError {
			slog.Error("failed to add message", "item", id, "error", err)
		}
		page := &messagesPage{Sender: sender, Text: text}
		page.Error = "Error: " + message
		s.renderMessages(w, r, status, filters, page)
		return
	}

	slog.Info("message added", "item", id, "message", msg.ID)
	target := fmt.Sprintf("/items/%d/messages", id)
	if q := filters.Values().Encode(); q != "" {
		target += "?" + q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// renderMessages loads the item named by the path and renders its message dialog.
func (s *Server) renderMessages(w http.ResponseWriter, r *http.Request, status int, filters Filters, page *messagesPage) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.boardError(w, r, filters, errNotFound, "fetching messages")
		return
	}

	item, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.boardError(w, r, filters, err, "fetching messages")
		return
	}

	page.Title = "Messages: " + item.Name
	page.Card = newItemCard(*item)
	page.Messages = newMessageViews(item.Messages)
	page.ReturnQuery = filters.Query()
	s.Templates.Render(w, status, "messages.html", page)
}
