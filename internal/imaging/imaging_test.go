package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return img
}

func createTestJPEG(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, createTestImage(w, h), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, createTestImage(w, h))
	return buf.Bytes()
}

func createTestGIF(w, h int) []byte {
	var buf bytes.Buffer
	gif.Encode(&buf, createTestImage(w, h), nil)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Process(data, "wallet.JPEG")
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if result.Ext != ".jpg" {
		t.Errorf("expected .jpg, got %s", result.Ext)
	}
	if !bytes.Equal(result.Data, data) {
		t.Error("small photo should be stored unchanged")
	}
}

func TestProcessPNG(t *testing.T) {
	result, err := Process(createTestPNG(100, 100), "keys.png")
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/png" || result.Ext != ".png" {
		t.Errorf("expected image/png with .png, got %s %s", result.MIME, result.Ext)
	}
}

func TestProcessGIF(t *testing.T) {
	result, err := Process(createTestGIF(40, 40), "scarf.gif")
	if err != nil {
		t.Fatalf("Process GIF: %v", err)
	}
	if result.MIME != "image/gif" {
		t.Errorf("expected image/gif, got %s", result.MIME)
	}
}

func TestProcessDownscale(t *testing.T) {
	result, err := Process(createTestPNG(2048, 1024), "poster.png")
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected downscaled photo to be re-encoded as JPEG, got %s", result.MIME)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != MaxDimension || bounds.Dy() != MaxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", MaxDimension, MaxDimension/2, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessRejects(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
	}{
		{"text content", []byte("not an image"), "note.png"},
		{"text extension", createTestPNG(10, 10), "note.txt"},
		{"no extension", createTestPNG(10, 10), "photo"},
		{"truncated jpeg", createTestJPEG(10, 10)[:20], "cut.jpg"},
	}

	for _, tt := range tests {
		_, err := Process(tt.data, tt.filename)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", tt.name, err)
		}
	}
}
