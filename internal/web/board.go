package web

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/erazemk/najdeno/internal/api"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/uploads"
)

// notices are the confirmations shown after a redirect.
var notices = map[string]string{
	"posted":  "Item posted successfully!",
	"claimed": "Item marked as claimed successfully!",
}

type boardPage struct {
	PageData
	Tab         string
	Filters     Filters
	ReturnQuery template.URL
	Cards       []ItemCard
	Categories  []string
	Stats       *model.Stats
	Form        model.NewItem
	MaxPhoto    string
}

// Board handles GET /.
func (s *Server) Board(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := &boardPage{
		Tab:     q.Get("tab"),
		Filters: filtersFrom(q),
		Form:    model.NewItem{Type: model.TypeLost},
	}
	page.Success = notices[q.Get("notice")]
	s.renderBoard(w, r, http.StatusOK, page)
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	in, photo, err := api.ParseNewItem(w, r)
	if err == nil {
		if photo != nil {
			if c, ok := photo.Body.(io.Closer); ok {
				defer c.Close()
			}
		}
		var item *model.Item
		item, err = s.Store.Create(r.Context(), in, photo)
		if err == nil {
			slog.Info("item posted", "id", item.ID, "type", item.Type, "photo", item.PhotoFile != "")
			http.Redirect(w, r, "/?notice=posted", http.StatusSeeOther)
			return
		}
	}

	status, message := api.Classify(err, "posting item")
	if status == http.StatusInternalServerError {
		slog.Error("failed to post item", "error", err)
	}
	page := &boardPage{Tab: "post", Form: in}
	page.Error = "Error: " + message
	s.renderBoard(w, r, status, page)
}

// ItemClaimSubmit handles POST /items/{id}/claim.
func (s *Server) ItemClaimSubmit(w http.ResponseWriter, r *http.Request) {
	filters := returnFilters(r.FormValue("return"))

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err == nil {
		_, err = s.Store.UpdateStatus(r.Context(), id, model.StatusClaimed)
	} else {
		err = errNotFound
	}
	if err != nil {
		s.boardError(w, r, filters, err, "updating item status")
		return
	}

	slog.Info("item claimed", "id", id)
	v := filters.Values()
	v.Set("notice", "claimed")
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

// renderBoard lists items for page.Filters and renders the board.
func (s *Server) renderBoard(w http.ResponseWriter, r *http.Request, status int, page *boardPage) {
	ctx := r.Context()

	items, err := s.Store.List(ctx, page.Filters.storeFilter())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		page.Error = "Failed to load items."
	}
	stats, err := s.Store.Stats(ctx)
	if err != nil {
		slog.Error("failed to load stats", "error", err)
		stats = &model.Stats{}
	}

	page.Title = "Lost & Found"
	page.Cards = make([]ItemCard, 0, len(items))
	for _, it := range items {
		page.Cards = append(page.Cards, newItemCard(it))
	}
	page.Categories = model.Categories
	page.Stats = stats
	page.ReturnQuery = page.Filters.Query()
	page.MaxPhoto = humanize.IBytes(uploads.MaxSize)

	s.Templates.Render(w, status, "board.html", page)
}

// boardError renders the board with the message for a failed operation.
func (s *Server) boardError(w http.ResponseWriter, r *http.Request, filters Filters, err error, action string) {
	status, message := api.Classify(err, action)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "action", action, "error", err)
	}
	page := &boardPage{Filters: filters}
	page.Error = "Error: " + message
	s.renderBoard(w, r, status, page)
}

// returnFilters recovers the board filters from a "return" form field,
// dropping anything that is not a filter.
func returnFilters(raw string) Filters {
	v, err := url.ParseQuery(raw)
	if err != nil {
		return Filters{}
	}
	return filtersFrom(v)
}
