package psdfx

import (
	"fmt"

	"github.com/gogpu/psdfx/internal/field"
)

// GradientKind is the shape of a gradient fill.
type GradientKind int

const (
	// Linear ramps along the gradient angle.
	Linear GradientKind = iota
	// Radial grows with distance from the canvas center.
	Radial
	// Angle sweeps around the canvas center.
	Angle
	// Reflected mirrors a linear ramp around the center line.
	Reflected
	// Diamond grows with L1 distance from the center in the rotated frame.
	Diamond
)

// String returns the kind name.
func (k GradientKind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Radial:
		return "Radial"
	case Angle:
		return "Angle"
	case Reflected:
		return "Reflected"
	case Diamond:
		return "Diamond"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// GradientForm selects how gradient positions turn into colors.
type GradientForm int

const (
	// FormCustomStops interpolates between color (and alpha) stops.
	FormCustomStops GradientForm = iota
	// FormNoise looks colors up in a seeded random table.
	FormNoise
)

// String returns the form name.
func (f GradientForm) String() string {
	switch f {
	case FormCustomStops:
		return "CustomStops"
	case FormNoise:
		return "ColorNoise"
	default:
		return fmt.Sprintf("GradientForm(%d)", int(f))
	}
}

// StopLocationMax is the stored location of a stop at the end of the ramp.
const StopLocationMax = 4096

// ColorStop is a color at a position along the gradient.
type ColorStop struct {
	Location int       // 0..StopLocationMax
	Color    []float64 // channel values as stored in the document
}

// AlphaStop is an opacity at a position along the gradient.
type AlphaStop struct {
	Location int     // 0..StopLocationMax
	Opacity  float64 // percent
}

// Noise describes a color-noise gradient.
type Noise struct {
	Smoothness int       // 0..4096, larger is sharper
	Seed       int64     // random seed
	Min, Max   []float64 // per-channel range in percent
}

// Gradient is a gradient fill setting.
type Gradient struct {
	Kind    GradientKind
	Angle   float64 // degrees
	Scale   float64 // percent; 0 means 100
	Reverse bool

	// Opacity is the fill opacity in percent. Decoders set 100 when the
	// document omits it.
	Opacity int

	Form   GradientForm
	Colors []ColorStop
	Alphas []AlphaStop
	Noise  *Noise
}

// shapeFor maps a gradient kind to its shape function. ok is false for
// kinds it does not know.
func shapeFor(kind GradientKind, angle float64) (shape field.Shape, ok bool) {
	switch kind {
	case Linear:
		return field.Linear(angle), true
	case Radial:
		return field.Radial(), true
	case Angle:
		return field.Angle(angle), true
	case Reflected:
		return field.Reflected(angle), true
	case Diamond:
		return field.Diamond(angle), true
	default:
		return nil, false
	}
}

// GradientField computes the gradient position of every pixel of a
// width*height canvas: the shape function evaluated over the centered
// coordinate mesh, clamped to [0, 1] and reversed if requested. The result
// is row-major.
//
// An unknown kind logs a warning and yields a uniform 0.5 field.
func GradientField(width, height int, g *Gradient, opts ...Option) []float64 {
	o := newOptions(opts)
	return gradientField(width, height, g, o)
}

func gradientField(width, height int, g *Gradient, o options) []float64 {
	scale := g.Scale
	if scale == 0 {
		scale = 100
	}

	var z []float64
	if shape, ok := shapeFor(g.Kind, g.Angle); ok {
		pool := o.pool()
		z = field.NewMesh(width, height, g.Angle, scale/100).Eval(shape, pool)
		pool.Close()
	} else {
		o.logger.Warn("psdfx: unknown gradient style", "kind", g.Kind)
		z = field.Uniform(width*height, 0.5)
	}

	for i, v := range z {
		v = max(0, min(1, v))
		if g.Reverse {
			v = 1 - v
		}
		z[i] = v
	}
	return z
}

// RenderGradient renders a gradient fill of the given mode and size.
//
// Custom-stop gradients interpolate the color stops over the gradient field;
// if mode has alpha and the gradient has alpha stops, the alpha stops are
// interpolated into the alpha channel, otherwise the result has no alpha.
// Noise gradients are an approximation of the reference renderer. The fill
// opacity is applied last (see ApplyOpacity).
//
// Errors: ErrInvalidDimensions, ErrInvalidMode, ErrNilDescriptor, ErrUnsupportedForm for an
// unknown form and ErrBackendUnavailable when no numeric backend is
// registered. In every error case no raster is produced.
//
// RenderGradient panics if a custom-stop gradient has no color stops.
func RenderGradient(mode Mode, width, height int, g *Gradient, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gradient %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("gradient %s: %w", mode, ErrInvalidMode)
	}
	if g == nil {
		return nil, fmt.Errorf("gradient: %w", ErrNilDescriptor)
	}

	o := newOptions(opts)
	if o.backend == nil {
		o.logger.Error("psdfx: gradient fill requires a numeric backend")
		return nil, ErrBackendUnavailable
	}

	z := gradientField(width, height, g, o)

	var (
		r   *Raster
		err error
	)
	switch g.Form {
	case FormCustomStops:
		r, err = applyColorStops(mode, width, height, g, z, o)
	case FormNoise:
		r, err = applyNoise(mode, width, height, g.Noise, z, o)
	default:
		o.logger.Error("psdfx: unknown gradient form", "form", g.Form)
		return nil, fmt.Errorf("gradient form %s: %w", g.Form, ErrUnsupportedForm)
	}
	if err != nil {
		return nil, err
	}
	return ApplyOpacity(r, g.Opacity), nil
}
