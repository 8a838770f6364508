package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"equirec-perspective/internal/panorama"
)

// Downscale reduces a supersampled render to the target size with
// CatmullRom filtering. Perspective output is opaque, so no alpha
// premultiplication is needed. Returns img unchanged when it is
// already at or below the target size.
func Downscale(img *panorama.Image, width, height int) *panorama.Image {
	if img.Width <= width && img.Height <= height {
		return img
	}

	src := img.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := panorama.NewImage(width, height)
	for y := 0; y < height; y++ {
		si := dst.PixOffset(0, y)
		di := out.PixOffset(0, y)
		for x := 0; x < width; x++ {
			out.Pix[di] = dst.Pix[si]
			out.Pix[di+1] = dst.Pix[si+1]
			out.Pix[di+2] = dst.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return out
}
