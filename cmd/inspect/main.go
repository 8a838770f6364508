package main

import (
	"flag"
	"fmt"
	"os"

	"equirec-perspective/internal/panorama"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: inspect panorama...\n\n")
		fmt.Fprintf(os.Stderr, "Prints dimensions and aspect information for panorama files.\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exit := 0
	for _, path := range flag.Args() {
		img, err := panorama.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}

		aspect := float64(img.Width) / float64(img.Height)
		fmt.Printf("%s\n", path)
		fmt.Printf("  Size:   %dx%d (%.1f MP)\n", img.Width, img.Height,
			float64(img.Width)*float64(img.Height)/1e6)
		fmt.Printf("  Aspect: %.3f", aspect)
		if aspect < 1.99 || aspect > 2.01 {
			fmt.Printf("  (warning: equirectangular panoramas are 2:1)")
		}
		fmt.Println()
	}
	os.Exit(exit)
}
