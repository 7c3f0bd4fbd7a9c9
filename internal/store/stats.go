package store

import (
	"context"
	"fmt"

	"github.com/erazemk/najdeno/internal/model"
)

// Stats returns aggregate counts over all items.
func (s *Store) Stats(ctx context.Context) (*model.Stats, error) {
	var totals struct {
		Total     int `db:"total"`
		Lost      int `db:"lost"`
		Found     int `db:"found"`
		Unclaimed int `db:"unclaimed"`
		Claimed   int `db:"claimed"`
	}
	err := s.db.GetContext(ctx, &totals,
		`SELECT COUNT(*) AS total,
		        COALESCE(SUM(type = 'lost'), 0) AS lost,
		        COALESCE(SUM(type = 'found'), 0) AS found,
		        COALESCE(SUM(status = 'unclaimed'), 0) AS unclaimed,
		        COALESCE(SUM(status = 'claimed'), 0) AS claimed
		 FROM items`,
	)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}

	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"n"`
	}
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT category, COUNT(*) AS n FROM items GROUP BY category ORDER BY category`,
	); err != nil {
		return nil, fmt.Errorf("counting categories: %w", err)
	}

	stats := &model.Stats{
		Total:      totals.Total,
		Lost:       totals.Lost,
		Found:      totals.Found,
		Unclaimed:  totals.Unclaimed,
		Claimed:    totals.Claimed,
		Categories: make(map[string]int, len(rows)),
	}
	for _, r := range rows {
		stats.Categories[r.Category] = r.Count
	}
	return stats, nil
}
