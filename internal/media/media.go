// Package media inspects local reference images before they are uploaded.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"
)

// MaxFileSize is the largest image accepted for upload.
const MaxFileSize = 10 << 20

var (
	ErrTooLarge    = errors.New("image exceeds 10 MB")
	ErrUnsupported = errors.New("unsupported image format")
	ErrEmpty       = errors.New("file is empty")
)

// Info describes a decoded image header.
type Info struct {
	Format string
	Width  int
	Height int
	Size   int
}

// File is an image read from disk and ready for upload.
type File struct {
	Name string
	Data []byte
	Info Info
}

// Open reads and inspects the image at path.
func Open(path string) (*File, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return &File{Name: filepath.Base(path), Data: data, Info: info}, nil
}

// Inspect validates that data is a png, jpeg, gif or webp image.
func Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmpty
	}
	if len(data) > MaxFileSize {
		return Info{}, ErrTooLarge
	}

	if isWEBP(data) {
		img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
		if err != nil {
			return Info{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		b := img.Bounds()
		return Info{Format: "webp", Width: b.Dx(), Height: b.Dy(), Size: len(data)}, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height, Size: len(data)}, nil
}

func isWEBP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	return string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}
