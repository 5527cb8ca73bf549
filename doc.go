// Package psdfx renders the vector masks and fill layers of layered
// (PSD-style) documents into 8-bit rasters.
//
// # Overview
//
// Three kinds of layer content are covered:
//   - Vector masks: bezier sub-paths combined with boolean operators into a
//     grayscale mask ([CompositeVectorMask]).
//   - Gradient fills: linear, radial, angle, reflected and diamond shapes,
//     colored by interpolated stops or a seeded noise table
//     ([RenderGradient]).
//   - Solid and pattern fills ([RenderSolidFill], [RenderPatternFill]).
//
// Every render call validates its inputs, returns a freshly allocated
// [Raster] and applies the fill opacity last ([ApplyOpacity]).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/psdfx"
//	    _ "github.com/gogpu/psdfx/numeric" // gradient interpolation
//	)
//
//	r, err := psdfx.RenderGradient(psdfx.ModeRGB, 640, 480, g)
//	if err != nil {
//	    // substitute a blank layer
//	}
//	png.Encode(w, r.Image())
//
// # Coordinate System
//
// Path coordinates are normalized to [0, 1] and stored vertical first:
// Coord{v, h} maps to pixel (h*width, v*height). Origin is top-left, Y
// grows down. Gradient angles are in degrees, counter-clockwise from the
// positive X axis.
//
// # Concurrency
//
// Render calls are safe for concurrent use. Each call spreads pixel rows
// over a worker pool sized by [WithWorkers]; the output does not depend on
// the worker count.
package psdfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
