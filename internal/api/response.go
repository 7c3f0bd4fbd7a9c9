package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/erazemk/najdeno/internal/imaging"
	"github.com/erazemk/najdeno/internal/store"
	"github.com/erazemk/najdeno/internal/uploads"
)

// envelope is the shape of every API response.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, envelope{Success: false, Message: message})
}

// WriteError writes a JSON error response carrying err's text.
func WriteError(w http.ResponseWriter, status int, message string, err error) {
	body := envelope{Success: false, Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	jsonResponse(w, status, body)
}

// NotFound answers any unmatched route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	jsonError(w, http.StatusNotFound, "Route not found")
}

// Classify maps a store error to a status code and a caller-facing message.
// action names the failed operation for unexpected errors, e.g. "creating item".
func Classify(err error, action string) (int, string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Only image files are allowed!"
	case errors.Is(err, uploads.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "Photo is too large"
	default:
		return http.StatusInternalServerError, "Error " + action
	}
}

// storeError writes the response for a failed store operation. Validation
// and lookup failures carry only the message; everything else echoes err.
func storeError(w http.ResponseWriter, err error, action string) {
	status, message := Classify(err, action)

	var verr *store.ValidationError
	if errors.As(err, &verr) || errors.Is(err, store.ErrNotFound) {
		jsonError(w, status, message)
		return
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "action", action, "error", err)
	}
	WriteError(w, status, message, err)
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// decodeBody fills target from a JSON body. Urlencoded and multipart bodies
// are parsed as forms and handed to fromForm instead. An unreadable body
// leaves target untouched.
func decodeBody(r *http.Request, target any, fromForm func(r *http.Request)) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err == nil {
			fromForm(r)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err == nil {
			fromForm(r)
		}
	default:
		_ = decodeJSON(r, target)
	}
}
