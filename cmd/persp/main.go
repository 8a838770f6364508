package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"equirec-perspective/internal/config"
	"equirec-perspective/internal/panorama"
	"equirec-perspective/internal/postprocess"
	"equirec-perspective/internal/profiling"
	"equirec-perspective/internal/render"
)

func main() {
	// CLI flags
	fov := flag.Float64("fov", 60, "Field of view in degrees (1-180)")
	theta := flag.Float64("theta", 0, "Horizontal look angle in degrees (-180 to 180)")
	phi := flag.Float64("phi", 0, "Vertical look angle in degrees (-90 to 90)")
	width := flag.Int("width", 0, "Output width in pixels (default: derived at 16:9)")
	height := flag.Int("height", 0, "Output height in pixels (default: derived at 16:9)")
	interp := flag.String("interpolation", "bicubic", "Interpolation: nearest, bilinear, bicubic or lanczos")
	quality := flag.Int("quality", 95, "JPEG quality 1-100")
	supersample := flag.Int("supersample", 1, "Render at N× target size, then downscale")
	verbose := flag.Bool("verbose", false, "Print progress details")
	profile := flag.Bool("profile", false, "Print per-stage timings")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: persp [flags] input-panorama output-image\n\n")
		fmt.Fprintf(os.Stderr, "Extracts a rectilinear perspective view from an equirectangular panorama.\n")
		fmt.Fprintf(os.Stderr, "Output format follows the output extension (.webp, .jpg, .png).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	if *quality < 1 || *quality > 100 {
		fmt.Fprintf(os.Stderr, "Error: quality must be between 1 and 100, got %d\n", *quality)
		os.Exit(1)
	}
	if *supersample < 1 {
		fmt.Fprintf(os.Stderr, "Error: supersample must be at least 1, got %d\n", *supersample)
		os.Exit(1)
	}

	kernel, err := render.ParseKernel(*interp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outW, outH := config.DefaultDimensions(*width, *height)

	if *profile {
		profiling.Enable(true)
	}

	if *verbose {
		fmt.Printf("Loading equirectangular image: %s\n", inPath)
	}
	src, err := panorama.Load(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Extracting %dx%d perspective view: FOV=%g°, θ=%g°, φ=%g°, interpolation=%s\n",
			outW, outH, *fov, *theta, *phi, kernel)
	}

	start := time.Now()

	p := render.Params{
		FOV:    *fov,
		Theta:  *theta,
		Phi:    *phi,
		Width:  outW * *supersample,
		Height: outH * *supersample,
		Kernel: kernel,
	}
	img, err := render.Perspective(src, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *supersample > 1 {
		img = postprocess.Downscale(img, outW, outH)
	}

	if *verbose {
		fmt.Printf("Rendered in %.3fs\n", time.Since(start).Seconds())
		fmt.Printf("Saving to: %s\n", outPath)
	}

	if err := panorama.Save(outPath, img, *quality); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Covers both the -profile flag and the EQUIREC_PROFILE env var.
	if profiling.Enabled() {
		fmt.Println(profiling.Summary())
	}

	fmt.Printf("✓ %s\n", outPath)
}
