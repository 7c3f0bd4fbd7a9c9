package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/erazemk/najdeno/internal/model"
)

// AppendMessage adds a message to an item. The message id is the item's
// current message count plus one.
func (s *Store) AppendMessage(ctx context.Context, itemID int64, sender, text string) (*model.Message, error) {
	sender = strings.TrimSpace(sender)
	text = strings.TrimSpace(text)
	if sender == "" || text == "" {
		return nil, invalid("Sender and text are required")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM items WHERE id = ?)`, itemID); err != nil {
		return nil, fmt.Errorf("checking item: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	var count int64
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages WHERE item_id = ?`, itemID); err != nil {
		return nil, fmt.Errorf("counting messages: %w", err)
	}

	msg := model.Message{
		ID:        count + 1,
		ItemID:    itemID,
		Sender:    sender,
		Text:      text,
		CreatedAt: s.now(),
	}
	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO messages (item_id, id, sender, text, created_at)
		 VALUES (:item_id, :id, :sender, :text, :created_at)`, msg,
	); err != nil {
		return nil, fmt.Errorf("adding message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing message: %w", err)
	}

	msg.FormatDate()
	return &msg, nil
}

// Messages returns an item's messages in the order they were added.
func (s *Store) Messages(ctx context.Context, itemID int64) ([]model.Message, error) {
	item, err := s.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return item.Messages, nil
}
