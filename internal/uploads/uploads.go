// Package uploads stores item photos in a directory served under /uploads/.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/erazemk/najdeno/internal/imaging"
)

// MaxSize is the largest accepted photo, in bytes.
const MaxSize = 5 << 20

// URLPrefix is the path photos are served under.
const URLPrefix = "/uploads/"

// ErrTooLarge is returned for photos over MaxSize.
var ErrTooLarge = fmt.Errorf("photo exceeds %s", humanize.IBytes(MaxSize))

// File is a photo as received from a client.
type File struct {
	Name string
	Body io.Reader
}

// Dir is a directory of uploaded photos.
type Dir struct {
	Root    string
	BaseURL string
}

// New creates the directory if needed. baseURL is prefixed to photo URLs;
// empty yields root-relative URLs.
func New(root, baseURL string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Dir{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save validates the photo and writes it under a new unique name, which it returns.
func (d *Dir) Save(f File) (string, error) {
	data, err := io.ReadAll(io.LimitReader(f.Body, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	result, err := imaging.Process(data, f.Name)
	if err != nil {
		return "", err
	}

	// Millisecond timestamp plus a random suffix keeps concurrent uploads apart.
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), result.Ext)
	if err := os.WriteFile(filepath.Join(d.Root, name), result.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return name, nil
}

// URL returns the public URL of a stored photo.
func (d *Dir) URL(name string) string {
	return d.BaseURL + URLPrefix + name
}

// Path returns the file system path of a stored photo.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.Root, filepath.Base(name))
}

// Remove deletes a stored photo. A photo that is already gone is not an error.
func (d *Dir) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(d.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing photo: %w", err)
	}
	return nil
}

// Handler serves stored photos. Mount it at URLPrefix. Directories and
// missing photos are answered by notFound.
func (d *Dir) Handler(notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, URLPrefix)
		if name == "" || strings.Contains(name, "/") || name != filepath.Base(name) {
			notFound.ServeHTTP(w, r)
			return
		}

		f, err := os.Open(d.Path(name))
		if err != nil {
			notFound.ServeHTTP(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, name, info.ModTime(), f)
	})
}
