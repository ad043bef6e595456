// Package gen turns lightness maps into closed lithophane meshes.
package gen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rneatherway/lith/light"
)

// HeightField is a row-major grid of surface heights together with the
// height of the backing surface (the floor). It is not modified after
// it is built.
type HeightField struct {
	heights []float32
	width   int
	height  int
	floor   float32

	min float32
	max float32
}

// Build scales every lightness value by scale. The floor is placed at the
// height a lightness of 1 would get, so the brim has the same depth for
// every image whatever its actual range.
func Build(lm *light.Map, scale float32) *HeightField {
	heights := make([]float32, len(lm.Values))
	for i, l := range lm.Values {
		heights[i] = l * scale
	}
	return newHeightField(heights, lm.Width, lm.Height, 1*scale)
}

// NewHeightField wraps precomputed heights. It takes ownership of heights.
func NewHeightField(heights []float32, width, height int, floor float32) (*HeightField, error) {
	if width < 0 || height < 0 || len(heights) != width*height {
		return nil, fmt.Errorf("height field %dx%d needs %d values, got %d", width, height, width*height, len(heights))
	}
	return newHeightField(heights, width, height, floor), nil
}

func newHeightField(heights []float32, width, height int, floor float32) *HeightField {
	hf := &HeightField{heights: heights, width: width, height: height, floor: floor}
	if len(heights) > 0 {
		hf.min, hf.max = heights[0], heights[0]
		for _, h := range heights {
			if h < hf.min {
				hf.min = h
			}
			if h > hf.max {
				hf.max = h
			}
		}
	}
	return hf
}

func (hf *HeightField) Width() int     { return hf.width }
func (hf *HeightField) Height() int    { return hf.height }
func (hf *HeightField) Floor() float32 { return hf.floor }
func (hf *HeightField) Min() float32   { return hf.min }
func (hf *HeightField) Max() float32   { return hf.max }

// Imagine width is three, height is two and the heights are:
//
// a b c
// d e f
//
// They are stored as a b c d e f, so each row advances by width:
// x + y*width
func (hf *HeightField) At(x, y int) float32 {
	return hf.heights[x+y*hf.width]
}

// ToImage renders the field as 16-bit grey, black at the lowest height
// and white at the highest.
func (hf *HeightField) ToImage() image.Image {
	img := image.NewGray16(image.Rect(0, 0, hf.width, hf.height))
	span := hf.max - hf.min
	for y := 0; y < hf.height; y++ {
		for x := 0; x < hf.width; x++ {
			var c float32
			if span > 0 {
				c = 65535 * (hf.At(x, y) - hf.min) / span
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(c)})
		}
	}
	return img
}

// DegenerateInputError reports a grid too small to triangulate. Target is
// set when the requested output width, rather than a grid, was unusable.
type DegenerateInputError struct {
	Width  int
	Height int
	Target bool
}

func (e *DegenerateInputError) Error() string {
	if e.Target {
		return fmt.Sprintf("degenerate input: target width %d must be positive", e.Width)
	}
	return fmt.Sprintf("degenerate input: %dx%d grid needs at least 2x2 points", e.Width, e.Height)
}

func checkDims(hf *HeightField) error {
	if hf.width < 2 || hf.height < 2 {
		return &DegenerateInputError{Width: hf.width, Height: hf.height}
	}
	return nil
}
