// Package batch renders many perspective views from one shared
// panorama using a worker pool. The source buffer is read-only, so
// workers share it without locking.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"equirec-perspective/internal/config"
	"equirec-perspective/internal/panorama"
	"equirec-perspective/internal/postprocess"
	"equirec-perspective/internal/render"
)

// Config holds the shared resources for a batch run.
type Config struct {
	Source      *panorama.Image
	OutputDir   string
	Format      string // webp, jpg or png
	Quality     int
	Supersample int
	Workers     int
	Progress    bool // print periodic throughput to stdout
}

// Result holds the outcome of rendering one view.
type Result struct {
	Name    string
	File    string
	Success bool
	Error   string
}

// Run renders all views using a worker pool and returns one Result per
// view, in input order.
func Run(cfg Config, views []config.View) []Result {
	total := len(views)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		if !cfg.Progress {
			return
		}
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f views/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	viewChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range viewChan {
				results[idx] = renderView(cfg, views[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range views {
		viewChan <- i
	}
	close(viewChan)

	wg.Wait()
	close(done)

	return results
}

func renderView(cfg Config, v config.View) Result {
	kernel, err := render.ParseKernel(v.Interpolation)
	if err != nil {
		return Result{Name: v.Name, Error: err.Error()}
	}

	p := render.Params{
		FOV:    v.FOV,
		Theta:  v.Theta,
		Phi:    v.Phi,
		Width:  v.Width,
		Height: v.Height,
		Kernel: kernel,
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	rp := p
	rp.Width *= ss
	rp.Height *= ss

	img, err := render.Perspective(cfg.Source, rp)
	if err != nil {
		return Result{Name: v.Name, Error: err.Error()}
	}
	if ss > 1 {
		img = postprocess.Downscale(img, p.Width, p.Height)
	}

	file := v.Name + "." + normalizeExt(cfg.Format)
	outPath := filepath.Join(cfg.OutputDir, file)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: v.Name, Error: err.Error()}
	}
	if err := panorama.Save(outPath, img, cfg.Quality); err != nil {
		return Result{Name: v.Name, Error: err.Error()}
	}

	return Result{Name: v.Name, File: file, Success: true}
}

func normalizeExt(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
