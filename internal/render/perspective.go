// Package render resamples an equirectangular panorama into a
// rectilinear perspective view. It drives the stages in
// internal/projection and owns the final remap step with its
// seam-wrap and NaN policies.
package render

import (
	"fmt"
	"runtime"
	"sync"

	"equirec-perspective/internal/panorama"
	"equirec-perspective/internal/profiling"
	"equirec-perspective/internal/projection"
)

// Params describes one perspective extraction.
type Params struct {
	FOV    float64 // horizontal field of view, degrees, 1 to 180
	Theta  float64 // yaw, degrees, -180 to 180
	Phi    float64 // pitch, degrees, -90 to 90
	Width  int     // output width in pixels
	Height int     // output height in pixels
	Kernel Kernel
}

// Validate checks params and the source buffer before any computation.
// The checks also reject NaN angles, since NaN fails every range
// comparison.
func Validate(src *panorama.Image, p Params) error {
	if !(p.FOV >= 1 && p.FOV <= 180) {
		return fmt.Errorf("render: FOV must be between 1 and 180 degrees, got %v", p.FOV)
	}
	if !(p.Theta >= -180 && p.Theta <= 180) {
		return fmt.Errorf("render: THETA must be between -180 and 180 degrees, got %v", p.Theta)
	}
	if !(p.Phi >= -90 && p.Phi <= 90) {
		return fmt.Errorf("render: PHI must be between -90 and 90 degrees, got %v", p.Phi)
	}
	if p.Height <= 0 {
		return fmt.Errorf("render: height must be greater than 0, got %d", p.Height)
	}
	if p.Width <= 0 {
		return fmt.Errorf("render: width must be greater than 0, got %d", p.Width)
	}
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("render: source image must have non-zero dimensions")
	}
	if len(src.Pix) != src.Width*src.Height*3 {
		return fmt.Errorf("render: source image must have exactly 3 channels, buffer holds %d bytes for %dx%d",
			len(src.Pix), src.Width, src.Height)
	}
	return nil
}

// Perspective extracts a rectilinear view from an equirectangular
// panorama. The source is read-only and may be shared across
// concurrent calls; the returned buffer is freshly allocated. Output
// is byte-for-byte deterministic for identical inputs.
func Perspective(src *panorama.Image, p Params) (*panorama.Image, error) {
	if err := Validate(src, p); err != nil {
		return nil, err
	}

	stop := profiling.Track("build_camera_matrix")
	cam := projection.NewIntrinsics(p.FOV, p.Width, p.Height)
	stop()

	stop = profiling.Track("generate_rays")
	rays := projection.Rays(p.Width, p.Height, cam.KInv)
	stop()

	stop = profiling.Track("compute_rotation")
	rot := projection.Orientation(p.Theta, p.Phi)
	stop()

	stop = profiling.Track("project_sphere")
	sphere := projection.ToSphere(rays, rot)
	stop()

	stop = profiling.Track("map_coordinates")
	coords := projection.ToPixels(sphere, src.Width, src.Height)
	stop()

	stop = profiling.Track("remap")
	out := Remap(src, coords, p.Width, p.Height, p.Kernel)
	stop()

	return out, nil
}

// Remap samples src at every mapped coordinate, producing a
// width×height output. Rows are independent, so the loop is split
// across a bounded worker set; each output pixel is written exactly
// once, keeping the result deterministic.
func Remap(src *panorama.Image, coords []projection.Coord, width, height int, k Kernel) *panorama.Image {
	out := panorama.NewImage(width, height)

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}

	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				base := y * width
				for x := 0; x < width; x++ {
					c := coords[base+x]
					r, g, b := Sample(src, c.X, c.Y, k)
					i := (base + x) * 3
					out.Pix[i], out.Pix[i+1], out.Pix[i+2] = r, g, b
				}
			}
		}()
	}

	for y := 0; y < height; y++ {
		rowChan <- y
	}
	close(rowChan)
	wg.Wait()

	return out
}
