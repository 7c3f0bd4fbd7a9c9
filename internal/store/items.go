package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/uploads"
)

const itemColumns = `id, type, name, category, description, location, poster, status, photo, photo_file, created_at`

// List returns items matching f, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.Type != "" {
		query += ` AND type = ?`
		args = append(args, f.Type)
	}
	query += ` ORDER BY id DESC`

	var items []model.Item
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	// SQLite's lower() only folds ASCII, so the search runs here.
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		matched := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle) {
				matched = append(matched, it)
			}
		}
		items = matched
	}

	if err := s.attachMessages(ctx, items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Get returns an item with its messages.
func (s *Store) Get(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	err := s.db.GetContext(ctx, &item, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	items := []model.Item{item}
	if err := s.attachMessages(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Create validates and inserts a new unclaimed item. photo is optional.
func (s *Store) Create(ctx context.Context, in model.NewItem, photo *uploads.File) (*model.Item, error) {
	in = trimNewItem(in)
	if in.Type == "" || in.Name == "" || in.Category == "" ||
		in.Description == "" || in.Location == "" || in.Poster == "" {
		return nil, invalid("All required fields must be provided")
	}
	if !model.ValidType(in.Type) {
		return nil, invalid("Invalid type value")
	}

	var photoURL *string
	var photoFile string
	switch {
	case photo != nil:
		if s.photos == nil {
			return nil, errors.New("photo uploads are not configured")
		}
		name, err := s.photos.Save(*photo)
		if err != nil {
			return nil, fmt.Errorf("saving photo: %w", err)
		}
		u := s.photos.URL(name)
		photoURL, photoFile = &u, name
	case in.PhotoURL != "":
		u := in.PhotoURL
		photoURL = &u
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO items (type, name, category, description, location, poster, status, photo, photo_file, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Type, in.Name, in.Category, in.Description, in.Location, in.Poster,
		model.StatusUnclaimed, photoURL, photoFile, s.now(),
	)
	if err != nil {
		s.removePhoto(photoFile)
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return s.Get(ctx, id)
}

// UpdateStatus sets an item's status.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) (*model.Item, error) {
	if !model.ValidStatus(status) {
		return nil, invalid("Invalid status value")
	}

	result, err := s.db.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("updating item status: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("updating item status: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes an item, its messages and its uploaded photo, and returns
// the item as it was.
func (s *Store) Delete(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	s.removePhoto(item.PhotoFile)
	return item, nil
}

// Count returns the number of items.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM items`); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

func (s *Store) removePhoto(name string) {
	if name == "" || s.photos == nil {
		return
	}
	if err := s.photos.Remove(name); err != nil {
		slog.Warn("failed to remove photo", "file", name, "error", err)
	}
}

// attachMessages loads the messages of items in place and formats dates.
func (s *Store) attachMessages(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	query, args, err := sqlx.In(
		`SELECT item_id, id, sender, text, created_at FROM messages
		 WHERE item_id IN (?) ORDER BY item_id, id`, ids)
	if err != nil {
		return fmt.Errorf("building message query: %w", err)
	}

	var msgs []model.Message
	if err := s.db.SelectContext(ctx, &msgs, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("listing messages: %w", err)
	}

	byItem := make(map[int64][]model.Message, len(items))
	for _, m := range msgs {
		byItem[m.ItemID] = append(byItem[m.ItemID], m)
	}
	for i := range items {
		items[i].Messages = byItem[items[i].ID]
		if items[i].Messages == nil {
			items[i].Messages = []model.Message{}
		}
		items[i].FormatDates()
	}
	return nil
}

func trimNewItem(in model.NewItem) model.NewItem {
	in.Type = strings.TrimSpace(in.Type)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Poster = strings.TrimSpace(in.Poster)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
	return in
}
