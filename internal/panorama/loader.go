package panorama

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decoder turns raw file bytes into a decoded image. The strategy is
// picked once per load: TGA headers have no reliable magic for
// image.Decode to sniff, so .tga files go straight to the TGA decoder;
// everything else goes through the registered-format sniffer
// (JPEG/PNG stdlib, WebP/BMP/TIFF via x/image).
type decoder func(raw []byte) (image.Image, error)

func decoderFor(path string) decoder {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return func(raw []byte) (image.Image, error) {
			return tga.Decode(bytes.NewReader(raw))
		}
	}
	return func(raw []byte) (image.Image, error) {
		img, _, err := image.Decode(bytes.NewReader(raw))
		return img, err
	}
}

// Load reads and decodes an equirectangular panorama into an RGB buffer.
func Load(path string) (*Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("panorama: read %s: %w", path, err)
	}

	img, err := decoderFor(path)(raw)
	if err != nil {
		return nil, fmt.Errorf("panorama: decode %s: %w", path, err)
	}

	out, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("panorama: %s: %w", path, err)
	}
	return out, nil
}
