package media

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	apperrors "bloghub/internal/errors"
)

// MaxDimension bounds both sides of stored profile pictures.
const MaxDimension = 125

// Store persists uploaded profile pictures as thumbnails under a fixed
// directory, using random filenames instead of client-supplied ones.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SavePicture decodes the uploaded image, downscales it so neither dimension
// exceeds MaxDimension (aspect preserved, never upscaled), writes it under
// the store directory and returns the generated filename. Undecodable input
// or an unsupported extension yields ErrInvalidImage.
func (s *Store) SavePicture(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", apperrors.ErrInvalidImage
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", apperrors.ErrInvalidImage
	}
	thumb := thumbnail(src)

	name, err := randomName(ext)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create picture file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		err = png.Encode(f, thumb)
	case ".gif":
		err = gif.Encode(f, thumb, nil)
	default:
		err = jpeg.Encode(f, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return name, nil
}

// randomName renders 8 bytes of entropy as hex, keeping the extension.
func randomName(ext string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random filename: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}

func thumbnail(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return src
	}

	scale := float64(MaxDimension) / float64(w)
	if h > w {
		scale = float64(MaxDimension) / float64(h)
	}
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
