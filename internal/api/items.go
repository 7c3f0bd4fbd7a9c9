package api

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
	"github.com/erazemk/najdeno/internal/uploads"
)

// maxFormMemory is how much of a multipart body is kept in memory.
const maxFormMemory = 1 << 20

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Store *store.Store
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// itemID parses the {id} path segment. Malformed ids are reported as unknown items.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return 0, false
	}
	return id, true
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Store.List(r.Context(), store.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Type:     q.Get("type"),
	})
	if err != nil {
		storeError(w, err, "fetching items")
		return
	}
	n := len(items)
	jsonResponse(w, http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.Store.Get(r.Context(), id)
	if err != nil {
		storeError(w, err, "fetching item")
		return
	}
	jsonResponse(w, http.StatusOK, envelope{Success: true, Data: item})
}

// Create handles POST /api/items. The body is a multipart form with an
// optional "photo" file; JSON and urlencoded bodies are accepted without one.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, photo, err := ParseNewItem(w, r)
	if err != nil {
		storeError(w, err, "creating item")
		return
	}
	if photo != nil {
		if c, ok := photo.Body.(io.Closer); ok {
			defer c.Close()
		}
	}

	item, err := h.Store.Create(r.Context(), in, photo)
	if err != nil {
		storeError(w, err, "creating item")
		return
	}

	slog.Info("item posted", "id", item.ID, "type", item.Type, "photo", item.PhotoFile != "")
	jsonResponse(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Item posted successfully",
		Data:    item,
	})
}

// UpdateStatus handles PATCH /api/items/{id}/status.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	// An unreadable body leaves Status empty, which fails validation.
	var req updateStatusRequest
	decodeBody(r, &req, func(r *http.Request) {
		req.Status = r.PostFormValue("status")
	})

	item, err := h.Store.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		storeError(w, err, "updating item status")
		return
	}

	slog.Info("item status updated", "id", item.ID, "status", item.Status)
	jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: "Item status updated",
		Data:    item,
	})
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		storeError(w, err, "deleting item")
		return
	}

	slog.Info("item deleted", "id", item.ID)
	jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: "Item deleted successfully",
		Data:    item,
	})
}

// ParseNewItem reads the item fields and optional photo from a request.
func ParseNewItem(w http.ResponseWriter, r *http.Request) (model.NewItem, *uploads.File, error) {
	var in model.NewItem

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		// A malformed body creates nothing and is reported as missing fields.
		_ = decodeJSON(r, &in)
		return in, nil, nil

	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxSize+maxFormMemory)
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return in, nil, uploads.ErrTooLarge
			}
			return in, nil, &store.ValidationError{Message: "Invalid form data"}
		}

	default:
		if err := r.ParseForm(); err != nil {
			return in, nil, &store.ValidationError{Message: "Invalid form data"}
		}
	}

	in = model.NewItem{
		Type:        r.FormValue("type"),
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Poster:      r.FormValue("poster"),
	}

	if r.MultipartForm == nil {
		return in, nil, nil
	}
	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, nil
	}
	if err != nil {
		return in, nil, err
	}
	return in, &uploads.File{Name: header.Filename, Body: file}, nil
}
