package model

import "time"

// Item types.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item statuses.
const (
	StatusUnclaimed = "unclaimed"
	StatusClaimed   = "claimed"
)

// Categories offered by the board. Category itself is free text.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Accessories",
	"Documents",
	"Keys",
	"Bags",
	"Books",
	"Other",
}

// Display layouts for the date strings carried in JSON.
const (
	ItemDateLayout    = "1/2/2006"
	MessageDateLayout = "1/2/2006, 3:04:05 PM"
)

// Item is a lost or found listing.
type Item struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Poster      string    `json:"poster" db:"poster"`
	Status      string    `json:"status" db:"status"`
	Date        string    `json:"date" db:"-"`
	Photo       *string   `json:"photo" db:"photo"`
	Messages    []Message `json:"messages" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// PhotoFile is the stored upload backing Photo, empty for external URLs.
	PhotoFile string `json:"-" db:"photo_file"`
}

// Message is a reply attached to an item. IDs are per item, starting at 1.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	ItemID    int64     `json:"-" db:"item_id"`
	Sender    string    `json:"sender" db:"sender"`
	Text      string    `json:"text" db:"text"`
	Date      string    `json:"date" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewItem holds the caller-supplied fields of an item being created.
type NewItem struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Poster      string `json:"poster"`

	// PhotoURL points at an externally hosted photo. Ignored when a file is uploaded.
	PhotoURL string `json:"-"`
}

// Stats aggregates the board.
type Stats struct {
	Total      int            `json:"total"`
	Lost       int            `json:"lost"`
	Found      int            `json:"found"`
	Unclaimed  int            `json:"unclaimed"`
	Claimed    int            `json:"claimed"`
	Categories map[string]int `json:"categories"`
}

// ValidType reports whether t is a known item type.
func ValidType(t string) bool {
	return t == TypeLost || t == TypeFound
}

// ValidStatus reports whether s is a known item status.
func ValidStatus(s string) bool {
	return s == StatusUnclaimed || s == StatusClaimed
}

// FormatDates fills the display date strings from the creation times.
func (it *Item) FormatDates() {
	it.Date = it.CreatedAt.Local().Format(ItemDateLayout)
	for i := range it.Messages {
		it.Messages[i].FormatDate()
	}
}

// FormatDate fills Date from CreatedAt.
func (m *Message) FormatDate() {
	m.Date = m.CreatedAt.Local().Format(MessageDateLayout)
}
