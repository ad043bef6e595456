package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/airbusgeo/godal"
)

// LoadGDAL reads any raster GDAL can open. With three or more bands the
// first three are used as RGB, clamped to 0..255. A single band, such as
// an elevation model, is stretched from its minimum to its maximum into
// grey.
func LoadGDAL(path string) (image.Image, error) {
	godal.RegisterAll()
	ds, err := godal.Open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	structure := ds.Structure()
	w, h := structure.SizeX, structure.SizeY
	bands := ds.Bands()
	if len(bands) == 0 || w == 0 || h == 0 {
		return nil, fmt.Errorf("%s: no raster data (%dx%d, %d bands)", path, w, h, len(bands))
	}

	n := 1
	if len(bands) >= 3 {
		n = 3
	}
	channels := make([][]float32, n)
	for i := range channels {
		buf := make([]float32, w*h)
		if err := bands[i].Read(0, 0, buf, w, h); err != nil {
			return nil, fmt.Errorf("%s: reading band %d: %w", path, i+1, err)
		}
		channels[i] = buf
	}

	if n == 1 {
		return grey(channels[0], w, h), nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[4*i] = clamp8(channels[0][i])
		img.Pix[4*i+1] = clamp8(channels[1][i])
		img.Pix[4*i+2] = clamp8(channels[2][i])
		img.Pix[4*i+3] = 255
	}
	return img, nil
}

// grey stretches buf into an 8-bit grey image. Undefined samples
// (-MaxFloat32) become black.
func grey(buf []float32, w, h int) *image.Gray {
	lo, hi := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for _, v := range buf {
		if v == -math.MaxFloat32 {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	span := hi - lo
	for i, v := range buf {
		var c float32
		if v != -math.MaxFloat32 && span > 0 {
			c = 255 * (v - lo) / span
		}
		img.Pix[i] = clamp8(c)
	}
	return img
}

func clamp8(v float32) uint8 {
	switch {
	case math.IsNaN(float64(v)) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
