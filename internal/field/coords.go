// Package field builds the per-pixel scalar fields behind gradient fills.
//
// A gradient is rendered in three steps: a coordinate mesh centered on the
// canvas, a shape function mapping each (x, y) to a scalar, and a color
// lookup on that scalar. This package owns the first two.
package field

import (
	"math"

	"github.com/gogpu/psdfx/internal/parallel"
)

// Mesh is a row-major grid of (X, Y) sample coordinates.
// X[r*W+c] is the same for every row r and Y[r*W+c] the same for every
// column c.
type Mesh struct {
	W, H int
	X, Y []float64
}

// Mod returns a modulo b with the sign of b, so Mod(-30, 360) == 330.
func Mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// Linspace returns n evenly spaced samples over [start, stop].
// The last sample is exactly stop; for n == 1 the only sample is start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// EffectiveScale blends the canvas width and height by how far the angle is
// from the horizontal axis, so the gradient period looks the same as it
// rotates between axis-aligned and diagonal. scale is a factor (1 == 100%).
func EffectiveScale(w, h int, angle, scale float64) float64 {
	ratio := Mod(angle, 90)
	return scale * ((90-ratio)/90*float64(w) + ratio/90*float64(h))
}

// NewMesh builds the coordinate mesh for a w*h canvas. X spans
// [-w/s, w/s] across columns and Y spans [-h/s, h/s] across rows, where s is
// EffectiveScale(w, h, angle, scale).
func NewMesh(w, h int, angle, scale float64) Mesh {
	s := EffectiveScale(w, h, angle, scale)
	xs := Linspace(-float64(w)/s, float64(w)/s, w)
	ys := Linspace(-float64(h)/s, float64(h)/s, h)

	m := Mesh{W: w, H: h, X: make([]float64, w*h), Y: make([]float64, w*h)}
	for r := 0; r < h; r++ {
		row := r * w
		copy(m.X[row:row+w], xs)
		for c := 0; c < w; c++ {
			m.Y[row+c] = ys[r]
		}
	}
	return m
}

// Eval applies shape to every mesh sample, distributing rows over pool.
// A nil pool evaluates on the calling goroutine.
func (m Mesh) Eval(shape Shape, pool *parallel.WorkerPool) []float64 {
	z := make([]float64, len(m.X))
	rows := func(y0, y1 int) {
		for i := y0 * m.W; i < y1*m.W; i++ {
			z[i] = shape(m.X[i], m.Y[i])
		}
	}
	if pool == nil {
		rows(0, m.H)
	} else {
		pool.Rows(m.H, rows)
	}
	return z
}

// Uniform returns a field of n samples all equal to v.
func Uniform(n int, v float64) []float64 {
	z := make([]float64, n)
	for i := range z {
		z[i] = v
	}
	return z
}
