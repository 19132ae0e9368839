package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestInspectPNG(t *testing.T) {
	info, err := Inspect(pngBytes(t, 8, 4))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Format != "png" || info.Width != 8 || info.Height != 4 {
		t.Errorf("Expected png 8x4, got %+v", info)
	}
}

func TestInspectRejectsNonImages(t *testing.T) {
	_, err := Inspect([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}

	_, err = Inspect(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}

func TestIsWEBP(t *testing.T) {
	header := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	if !isWEBP(header) {
		t.Error("Expected RIFF/WEBP header to be detected")
	}
	if isWEBP([]byte("RIFF")) {
		t.Error("Expected short input to be rejected")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "product.png")
	if err := os.WriteFile(path, pngBytes(t, 2, 2), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if f.Name != "product.png" {
		t.Errorf("Expected name product.png, got %q", f.Name)
	}

	if _, err := Open(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
