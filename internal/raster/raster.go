// Package raster fills single bezier contours into 8-bit coverage masks.
//
// Coverage is computed by golang.org/x/image/vector, which accumulates
// signed area per pixel and therefore antialiases edges analytically.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float32
}

// Cubic is one cubic bezier segment. The start point is the end point of
// the previous segment (or the contour start).
type Cubic struct {
	C1, C2 Point // control points
	To     Point
}

// Contour is a single path: a start point followed by cubic segments.
type Contour struct {
	Start  Point
	Curves []Cubic
}

// Fill rasterizes the contour into a width*height mask. Interior pixels are
// 255, exterior pixels 0. The contour is closed with a straight segment back
// to Start before filling, so open contours fill like closed ones.
//
// A contour with no curves yields an all-zero mask. Geometry outside the
// mask bounds is clipped.
func Fill(c Contour, width, height int) []uint8 {
	if width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(c.Curves) == 0 {
		return dst.Pix
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	z.MoveTo(c.Start.X, c.Start.Y)
	for _, s := range c.Curves {
		z.CubeTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return dst.Pix
}
