package store

import (
	"context"
	"testing"

	"github.com/erazemk/najdeno/internal/model"
)

func TestStatsEmpty(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 0 || stats.Lost != 0 || stats.Claimed != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.Categories == nil {
		t.Error("expected non-nil categories map")
	}
}

func TestStatsTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, newItem(model.TypeLost, "Keys", "Keys"))
	mustCreate(t, s, newItem(model.TypeLost, "Phone", "Electronics"))
	laptop := mustCreate(t, s, newItem(model.TypeFound, "Laptop", "Electronics"))
	mustCreate(t, s, newItem(model.TypeFound, "Scarf", "Clothing"))
	s.UpdateStatus(ctx, laptop.ID, model.StatusClaimed)

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Total != 4 || stats.Lost != 2 || stats.Found != 2 {
		t.Errorf("unexpected type counts %+v", stats)
	}
	if stats.Unclaimed != 3 || stats.Claimed != 1 {
		t.Errorf("unexpected status counts %+v", stats)
	}
	if stats.Categories["Electronics"] != 2 || stats.Categories["Keys"] != 1 || stats.Categories["Clothing"] != 1 {
		t.Errorf("unexpected categories %v", stats.Categories)
	}

	if stats.Lost+stats.Found != stats.Total {
		t.Error("lost + found != total")
	}
	if stats.Unclaimed+stats.Claimed != stats.Total {
		t.Error("unclaimed + claimed != total")
	}
	sum := 0
	for _, n := range stats.Categories {
		sum += n
	}
	if sum != stats.Total {
		t.Errorf("category counts sum to %d, want %d", sum, stats.Total)
	}
}
