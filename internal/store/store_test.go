package store

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/erazemk/najdeno/internal/db"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/uploads"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	photos, err := uploads.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("uploads.New: %v", err)
	}
	return New(db.NewTestDB(t), photos)
}

func newItem(typ, name, category string) model.NewItem {
	return model.NewItem{
		Type:        typ,
		Name:        name,
		Category:    category,
		Description: name + " description",
		Location:    "Library",
		Poster:      "Al",
	}
}

func mustCreate(t *testing.T, s *Store, in model.NewItem) *model.Item {
	t.Helper()
	item, err := s.Create(context.Background(), in, nil)
	if err != nil {
		t.Fatalf("Create %q: %v", in.Name, err)
	}
	return item
}

func testPhoto(t *testing.T, name string) *uploads.File {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return &uploads.File{Name: name, Body: &buf}
}
