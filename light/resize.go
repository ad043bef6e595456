package light

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used when resizing.
type Filter string

const (
	Nearest    Filter = "nearest"
	Linear     Filter = "linear"
	Gaussian   Filter = "gaussian"
	CatmullRom Filter = "catmullrom"
	Lanczos3   Filter = "lanczos3"
)

// Filters lists every supported filter.
var Filters = []Filter{Nearest, Linear, Gaussian, CatmullRom, Lanczos3}

// ParseFilter accepts a filter name in any letter case.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

var (
	gaussianKernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
		const r = 0.5
		return math.Exp(-t*t/(2*r*r)) / (math.Sqrt(2*math.Pi) * r)
	}}
	lanczos3Kernel = &draw.Kernel{Support: 3, At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		if t >= 3 || t <= -3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	}}
)

func sinc(t float64) float64 {
	t *= math.Pi
	return math.Sin(t) / t
}

func (f Filter) scaler() draw.Scaler {
	switch f {
	case Nearest:
		return draw.NearestNeighbor
	case Linear:
		return draw.BiLinear
	case Gaussian:
		return gaussianKernel
	case Lanczos3:
		return lanczos3Kernel
	default:
		return draw.CatmullRom
	}
}

// ResizeDimensions returns the largest size with the aspect ratio of
// width x height that fits inside boundW x boundH. Neither side drops
// below one pixel.
func ResizeDimensions(width, height, boundW, boundH int) (int, int) {
	wratio := float64(boundW) / float64(width)
	hratio := float64(boundH) / float64(height)
	ratio := math.Min(wratio, hratio)
	nw := int(math.Round(float64(width) * ratio))
	nh := int(math.Round(float64(height) * ratio))
	return max(nw, 1), max(nh, 1)
}

// Resize scales img to fit inside boundW x boundH, keeping its aspect
// ratio. An image that already has the target size is returned unchanged.
func Resize(img image.Image, boundW, boundH int, f Filter) image.Image {
	sr := img.Bounds()
	nw, nh := ResizeDimensions(sr.Dx(), sr.Dy(), boundW, boundH)
	if nw == sr.Dx() && nh == sr.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	f.scaler().Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}
