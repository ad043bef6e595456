package light

import (
	"fmt"
	"image"
)

// Preprocess resizes img to the requested width, bounded by its current
// height, and returns the lightness of the result.
func Preprocess(img image.Image, width int, f Filter) (*Map, error) {
	b := img.Bounds()
	if width <= 0 || b.Empty() {
		return nil, fmt.Errorf("cannot resize %dx%d image to width %d", b.Dx(), b.Dy(), width)
	}
	return FromImage(Resize(img, width, b.Dy(), f))
}

// FitWidth resizes img towards width using CatmullRom, bounding the
// height by height*width_src/width.
func FitWidth(img image.Image, width int) (image.Image, error) {
	b := img.Bounds()
	if width <= 0 || b.Empty() {
		return nil, fmt.Errorf("cannot resize %dx%d image to width %d", b.Dx(), b.Dy(), width)
	}
	boundH := b.Dy() * b.Dx() / width
	return Resize(img, width, boundH, CatmullRom), nil
}
