package store

import (
	"context"
	"fmt"

	"github.com/erazemk/najdeno/internal/model"
)

// sampleItems are the listings a fresh board starts with, in listing order.
var sampleItems = []model.NewItem{
	{
		Type:        model.TypeFound,
		Name:        "Blue Water Bottle",
		Category:    "Other",
		Description: "Blue stainless steel water bottle found near the gym",
		Location:    "Sports Complex",
		Poster:      "John Doe",
		PhotoURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400",
	},
	{
		Type:        model.TypeLost,
		Name:        "Laptop Charger",
		Category:    "Electronics",
		Description: "MacBook Pro charger with USB-C cable, lost in Room 301",
		Location:    "Engineering Building",
		Poster:      "Jane Smith",
		PhotoURL:    "https://miro.medium.com/v2/resize:fit:720/format:webp/1*n35mA_P-qf8lahgwaIzEOw.jpeg",
	},
}

// Seed adds the sample listings to an empty board. It reports how many were added.
func (s *Store) Seed(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	// Newest is listed first, so insert from the end.
	for i := len(sampleItems) - 1; i >= 0; i-- {
		in := sampleItems[i]
		if _, err := s.Create(ctx, in, nil); err != nil {
			return 0, fmt.Errorf("seeding %q: %w", in.Name, err)
		}
	}
	return len(sampleItems), nil
}
