// Package light converts decoded images into maps of perceived lightness.
package light

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPixelLength is returned for pixel data that is not made of
// 3-channel samples.
var ErrInvalidPixelLength = errors.New("pixel does not have exactly 3 channels")

// SRGBToLinear converts a gamma encoded sRGB channel in [0, 1] to linear RGB.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance Y of an 8-bit sRGB pixel.
func Luminance(pixel []uint8) (float64, error) {
	if len(pixel) != 3 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPixelLength, len(pixel))
	}
	r := SRGBToLinear(float64(pixel[0]) / 255)
	g := SRGBToLinear(float64(pixel[1]) / 255)
	b := SRGBToLinear(float64(pixel[2]) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// LuminanceToLightness maps luminance in [0, 1] to CIE L* in [0, 100].
func LuminanceToLightness(y float64) float64 {
	if y < 216.0/24389.0 {
		return y * 24389.0 / 27.0
	}
	return 116*math.Cbrt(y) - 16
}

// Lightness returns the perceived lightness of an 8-bit sRGB pixel scaled
// to [0, 1]. Results are not clamped and may overshoot 1 by rounding.
func Lightness(pixel []uint8) (float32, error) {
	y, err := Luminance(pixel)
	if err != nil {
		return 0, err
	}
	return float32(LuminanceToLightness(y) / 100), nil
}
