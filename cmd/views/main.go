package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"equirec-perspective/internal/batch"
	"equirec-perspective/internal/config"
	"equirec-perspective/internal/panorama"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to YAML view-list config (required)")
	input := flag.String("input", "", "Input panorama (overrides config)")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	format := flag.String("format", "", "Output format: webp, jpg or png (overrides config)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (overrides config)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Input:     *input,
		OutputDir: *outputDir,
		Format:    *format,
		Quality:   *quality,
		Workers:   *workers,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := panorama.Load(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Equirectangular panorama → perspective views\n")
	fmt.Printf("Source: %s (%dx%d)\n", cfg.Input, src.Width, src.Height)
	fmt.Printf("Views: %d, Workers: %d\n", len(cfg.Views), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Source:      src,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Quality:     cfg.Quality,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    true,
	}, cfg.Views)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(cfg.Views))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.Views, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
