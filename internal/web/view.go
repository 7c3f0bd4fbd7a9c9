package web

import (
	"html/template"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
)

const placeholderPhoto = "/static/placeholder.svg"

// Filters are the board's filter inputs, carried in the query string.
type Filters struct {
	Search   string
	Category string
	Status   string
	Type     string
}

func filtersFrom(v url.Values) Filters {
	return Filters{
		Search:   v.Get("search"),
		Category: v.Get("category"),
		Status:   v.Get("status"),
		Type:     v.Get("type"),
	}
}

// Values encodes the non-empty filters.
func (f Filters) Values() url.Values {
	v := url.Values{}
	for key, val := range map[string]string{
		"search":   f.Search,
		"category": f.Category,
		"status":   f.Status,
		"type":     f.Type,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// Query is the encoded filter query, safe to place after "?" in a link.
func (f Filters) Query() template.URL {
	return template.URL(f.Values().Encode())
}

func (f Filters) storeFilter() store.Filter {
	return store.Filter{
		Search:   f.Search,
		Category: f.Category,
		Status:   f.Status,
		Type:     f.Type,
	}
}

// ItemCard is one item as the board shows it.
type ItemCard struct {
	ID           int64
	Name         string
	Marker       string
	Description  string
	Location     string
	Date         string
	Posted       string
	Poster       string
	Category     string
	PhotoURL     string
	Status       string
	StatusLabel  string
	MessageCount int
	Claimable    bool
}

func newItemCard(it model.Item) ItemCard {
	card := ItemCard{
		ID:           it.ID,
		Name:         it.Name,
		Marker:       "✨",
		Description:  it.Description,
		Location:     it.Location,
		Date:         it.Date,
		Posted:       humanize.Time(it.CreatedAt),
		Poster:       it.Poster,
		Category:     it.Category,
		PhotoURL:     placeholderPhoto,
		Status:       it.Status,
		StatusLabel:  "✗ Claimed",
		MessageCount: len(it.Messages),
		Claimable:    it.Status == model.StatusUnclaimed,
	}
	if it.Type == model.TypeLost {
		card.Marker = "🔍"
	}
	if it.Photo != nil && *it.Photo != "" {
		card.PhotoURL = *it.Photo
	}
	if card.Claimable {
		card.StatusLabel = "✓ Available"
	}
	return card
}

// MessageView is one message in the message dialog.
type MessageView struct {
	Sender string
	Text   string
	Date   string
}

func newMessageViews(msgs []model.Message) []MessageView {
	views := make([]MessageView, len(msgs))
	for i, m := range msgs {
		views[i] = MessageView{Sender: m.Sender, Text: m.Text, Date: m.Date}
	}
	return views
}
