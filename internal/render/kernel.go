package render

import "fmt"

// Kernel selects the resampling filter.
type Kernel int

const (
	Nearest Kernel = iota
	Bilinear
	Bicubic
	Lanczos
)

// ParseKernel maps a selector string to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	switch name {
	case "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	case "bicubic":
		return Bicubic, nil
	case "lanczos":
		return Lanczos, nil
	}
	return 0, fmt.Errorf("render: unsupported interpolation method: %q", name)
}

func (k Kernel) String() string {
	switch k {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	case Lanczos:
		return "lanczos"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}
