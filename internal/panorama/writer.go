package panorama

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Save encodes img to path, choosing the codec by extension:
// .webp, .jpg/.jpeg (with the given quality, 1-100) or .png.
func Save(path string, img *Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("panorama: create %s: %w", path, err)
	}

	var encErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		encErr = nativewebp.Encode(f, img.ToNRGBA(), nil)
	case ".jpg", ".jpeg":
		encErr = jpeg.Encode(f, img.ToNRGBA(), &jpeg.Options{Quality: quality})
	case ".png":
		encErr = png.Encode(f, img.ToNRGBA())
	default:
		encErr = fmt.Errorf("panorama: unsupported output format: %s", filepath.Ext(path))
	}

	if encErr != nil {
		f.Close()
		return encErr
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("panorama: close %s: %w", path, err)
	}
	return nil
}
