package psdfx

import "errors"

// Errors returned by the render entry points. A non-nil error always comes
// with a nil raster; callers are expected to substitute a blank layer.
var (
	// ErrInvalidDimensions is returned when a canvas width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("psdfx: invalid dimensions")

	// ErrInvalidMode is returned for a color mode outside the defined set.
	ErrInvalidMode = errors.New("psdfx: invalid color mode")

	// ErrInvalidFillRule is returned when a vector mask's initial fill rule
	// is neither 0 nor 1.
	ErrInvalidFillRule = errors.New("psdfx: invalid initial fill rule")

	// ErrNilDescriptor is returned when a fill setting is nil.
	ErrNilDescriptor = errors.New("psdfx: nil fill descriptor")

	// ErrUnsupportedForm is returned for a gradient form other than custom
	// stops or color noise.
	ErrUnsupportedForm = errors.New("psdfx: unsupported gradient form")

	// ErrPatternNotFound is returned when a pattern fill references an id the
	// resolver does not know.
	ErrPatternNotFound = errors.New("psdfx: pattern not found")

	// ErrBackendUnavailable is returned by gradient rendering when no numeric
	// backend is registered. Import github.com/gogpu/psdfx/numeric to
	// register the default one.
	ErrBackendUnavailable = errors.New("psdfx: numeric backend unavailable")
)
