package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/najdeno/internal/store"
)

// MessagesHandler handles the messages attached to an item.
type MessagesHandler struct {
	Store *store.Store
}

type createMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Create handles POST /api/items/{id}/messages.
func (h *MessagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	// An unreadable body leaves both fields empty, which fails validation.
	var req createMessageRequest
	decodeBody(r, &req, func(r *http.Request) {
		req.Sender = r.PostFormValue("sender")
		req.Text = r.PostFormValue("text")
	})

	msg, err := h.Store.AppendMessage(r.Context(), id, req.Sender, req.Text)
	if err != nil {
		storeError(w, err, "adding message")
		return
	}

	slog.Info("message added", "item", id, "message", msg.ID)
	jsonResponse(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Message added successfully",
		Data:    msg,
	})
}

// List handles GET /api/items/{id}/messages.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	msgs, err := h.Store.Messages(r.Context(), id)
	if err != nil {
		storeError(w, err, "fetching messages")
		return
	}
	n := len(msgs)
	jsonResponse(w, http.StatusOK, envelope{Success: true, Data: msgs, Count: &n})
}
