package gen

import (
	"fmt"
	"math"
	"strings"

	"github.com/rneatherway/lith/light"
)

// Kind selects the mesh topology.
type Kind int

const (
	// FlatGrid is a flat slab built from an already resized lightness map.
	FlatGrid Kind = iota
	// FlatImage is a flat slab that resizes its source image itself.
	FlatImage
	// Cylinder wraps the image around a vertical axis.
	Cylinder
)

var kindNames = map[Kind]string{
	FlatGrid:  "flat",
	FlatImage: "flat-image",
	Cylinder:  "cylinder",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown generator %q", s)
}

// Options configures one generation run.
type Options struct {
	Kind Kind
	// Scale is the relief depth. It must not be negative; it is negated
	// exactly once, by heightScale, before it reaches the height field.
	Scale float32
	// Width is the target width in pixels, which is also the number of
	// grid columns.
	Width int
	// Filter is the resampling kernel for FlatGrid and Cylinder.
	Filter light.Filter

	CylinderRadius float32
	CylinderHeight float32
}

// DefaultOptions returns a flat lithophane 80 pixels wide with 2 units
// of relief.
func DefaultOptions() Options {
	return Options{
		Kind:           FlatGrid,
		Scale:          2,
		Width:          80,
		Filter:         light.CatmullRom,
		CylinderRadius: 20,
		CylinderHeight: 20,
	}
}

// Validate reports the first unusable setting.
func (o Options) Validate() error {
	if _, ok := kindNames[o.Kind]; !ok {
		return fmt.Errorf("unknown generator %v", o.Kind)
	}
	if o.Width <= 0 {
		return &DegenerateInputError{Width: o.Width, Target: true}
	}
	if !finite(o.Scale) || o.Scale < 0 {
		return fmt.Errorf("scale must be a finite non-negative number, got %v", o.Scale)
	}
	if o.Kind == Cylinder {
		if !finite(o.CylinderRadius) || o.CylinderRadius <= 0 {
			return fmt.Errorf("cylinder radius must be positive, got %v", o.CylinderRadius)
		}
		if !finite(o.CylinderHeight) || o.CylinderHeight <= 0 {
			return fmt.Errorf("cylinder height must be positive, got %v", o.CylinderHeight)
		}
		// The inner wall sits at CylinderRadius-Scale.
		if o.Scale >= o.CylinderRadius {
			return fmt.Errorf("scale %v must be smaller than cylinder radius %v", o.Scale, o.CylinderRadius)
		}
	}
	return nil
}

// heightScale is the factor applied to lightness values. The surface then
// sits between -Scale and 0, with the floor at -Scale, so light pixels
// give thin material and dark pixels thick material.
func (o Options) heightScale() float32 {
	return -o.Scale
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
