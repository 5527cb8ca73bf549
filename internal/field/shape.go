package field

import "math"

// Shape maps a mesh coordinate to a gradient position. The result is not
// clamped; callers clamp to [0, 1].
type Shape func(x, y float64) float64

func radians(angle float64) float64 {
	return Mod(angle, 360) * math.Pi / 180
}

// Linear ramps along the angle direction: 0.5*(cos t*x - sin t*y + 1).
func Linear(angle float64) Shape {
	sin, cos := math.Sincos(radians(angle))
	return func(x, y float64) float64 {
		return 0.5 * (cos*x - sin*y + 1)
	}
}

// Radial is the Euclidean distance from the mesh origin.
func Radial() Shape {
	return func(x, y float64) float64 {
		return math.Sqrt(x*x + y*y)
	}
}

// Angle sweeps once around the origin, starting at the given angle.
func Angle(angle float64) Shape {
	return func(x, y float64) float64 {
		deg := 180 * math.Atan2(y, x) / math.Pi
		return Mod(deg+angle, 360) / 360
	}
}

// Reflected mirrors a linear ramp around the center line.
func Reflected(angle float64) Shape {
	sin, cos := math.Sincos(radians(angle))
	return func(x, y float64) float64 {
		return math.Abs(cos*x - sin*y)
	}
}

// Diamond is the L1 distance from the origin in the rotated frame.
func Diamond(angle float64) Shape {
	sin, cos := math.Sincos(radians(angle))
	return func(x, y float64) float64 {
		return math.Abs(cos*x-sin*y) + math.Abs(sin*x+cos*y)
	}
}
