package gen

import (
	"fmt"
	"image"

	"github.com/rneatherway/lith/geo"
	"github.com/rneatherway/lith/light"
)

// Generate runs the whole pipeline on a decoded image: resize, lightness,
// height field and the mesh generator selected by opts.Kind.
func Generate(opts Options, src image.Image) (*geo.Mesh, error) {
	hf, err := Prepare(opts, src)
	if err != nil {
		return nil, err
	}
	return FromHeightField(opts, hf)
}

// Prepare resizes src as opts.Kind requires and builds its height field.
// FlatImage resizes with its own rule; the other kinds use
// light.Preprocess with opts.Filter.
func Prepare(opts Options, src image.Image) (*HeightField, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if b := src.Bounds(); b.Empty() {
		return nil, &DegenerateInputError{Width: b.Dx(), Height: b.Dy()}
	}

	var (
		lm  *light.Map
		err error
	)
	switch opts.Kind {
	case FlatImage:
		lm, err = flatImageLightMap(src, opts.Width)
	default:
		lm, err = light.Preprocess(src, opts.Width, opts.Filter)
	}
	if err != nil {
		return nil, err
	}
	return Build(lm, opts.heightScale()), nil
}

// flatImageLightMap applies the FlatImage resize rule: CatmullRom, with
// the height bounded by height*width_src/width.
func flatImageLightMap(src image.Image, width int) (*light.Map, error) {
	img, err := light.FitWidth(src, width)
	if err != nil {
		return nil, err
	}
	return light.FromImage(img)
}

// FromLightMap builds the height field for lm and triangulates it.
func FromLightMap(opts Options, lm *light.Map) (*geo.Mesh, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(lm.Values) != lm.Width*lm.Height {
		return nil, fmt.Errorf("lightness map %dx%d has %d values", lm.Width, lm.Height, len(lm.Values))
	}
	hf := Build(lm, opts.heightScale())
	return FromHeightField(opts, hf)
}

// FromHeightField triangulates hf with the generator selected by opts.Kind.
func FromHeightField(opts Options, hf *HeightField) (*geo.Mesh, error) {
	switch opts.Kind {
	case FlatGrid, FlatImage:
		return FlatMesh(hf)
	case Cylinder:
		return CylinderMesh(hf, opts.CylinderRadius, opts.CylinderHeight)
	default:
		return nil, fmt.Errorf("unknown generator %v", opts.Kind)
	}
}
