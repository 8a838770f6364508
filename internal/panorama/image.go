// Package panorama holds the in-memory pixel buffer shared by the
// projection pipeline plus decoding and encoding of panorama files.
package panorama

import (
	"fmt"
	"image"
	"image/color"
)

// Image is an 8-bit RGB buffer, three bytes per pixel, row-major.
// It is the in-memory form of both the source panorama and a rendered
// perspective view. The pipeline never mutates a source Image; a
// decoded panorama is safe to share across concurrent renders.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*3
}

// NewImage allocates a zeroed width×height RGB buffer.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// PixOffset returns the index of the first channel of pixel (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y*m.Width + x) * 3
}

// At returns the RGB channels of pixel (x, y).
func (m *Image) At(x, y int) (r, g, b uint8) {
	i := m.PixOffset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set writes the RGB channels of pixel (x, y).
func (m *Image) Set(x, y int, r, g, b uint8) {
	i := m.PixOffset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// FromImage converts any decoded image into the packed RGB buffer.
// Alpha is discarded. Fast paths read raw Pix for the common decoder
// outputs; everything else (YCbCr from JPEG, paletted PNG, ...) goes
// through the color model.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("panorama: image must have non-zero dimensions, got %dx%d", w, h)
	}

	dst := NewImage(w, h)
	switch s := src.(type) {
	case *image.NRGBA:
		copyStrided(dst, s.Pix, s.PixOffset(b.Min.X, b.Min.Y), s.Stride, 4)
	case *image.RGBA:
		// Opaque RGBA is byte-identical to NRGBA; panoramas carry no alpha.
		copyStrided(dst, s.Pix, s.PixOffset(b.Min.X, b.Min.Y), s.Stride, 4)
	default:
		for y := 0; y < h; y++ {
			di := dst.PixOffset(0, y)
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.Pix[di] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				di += 3
			}
		}
	}
	return dst, nil
}

func copyStrided(dst *Image, pix []uint8, offset, stride, bpp int) {
	for y := 0; y < dst.Height; y++ {
		si := offset + y*stride
		di := dst.PixOffset(0, y)
		for x := 0; x < dst.Width; x++ {
			dst.Pix[di] = pix[si]
			dst.Pix[di+1] = pix[si+1]
			dst.Pix[di+2] = pix[si+2]
			si += bpp
			di += 3
		}
	}
}

// ToNRGBA expands the RGB buffer to an opaque NRGBA image for the
// standard encoders.
func (m *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		si := m.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		for x := 0; x < m.Width; x++ {
			dst.Pix[di] = m.Pix[si]
			dst.Pix[di+1] = m.Pix[si+1]
			dst.Pix[di+2] = m.Pix[si+2]
			dst.Pix[di+3] = 255
			si += 3
			di += 4
		}
	}
	return dst
}
