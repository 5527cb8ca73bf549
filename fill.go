package psdfx

import "fmt"

// SolidFill is a solid color fill setting.
type SolidFill struct {
	// Color holds channel values as stored in the document: 0..255 for RGB,
	// percent for gray and CMYK.
	Color []float64

	// Opacity is the fill opacity in percent.
	Opacity int
}

// RenderSolidFill renders a uniform fill of the given mode and size, then
// applies the fill opacity. Stored values are truncated to integers before
// unit conversion; alpha modes start opaque.
func RenderSolidFill(mode Mode, width, height int, s *SolidFill) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid fill %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("solid fill %s: %w", mode, ErrInvalidMode)
	}
	if s == nil {
		return nil, fmt.Errorf("solid fill: %w", ErrNilDescriptor)
	}

	px := make([]uint8, mode.Channels())
	scale := mode.stopScale()
	for c := range mode.ColorChannels() {
		if c < len(s.Color) {
			px[c] = toLevel(scale * float64(int(s.Color[c])))
		}
	}
	if mode.HasAlpha() {
		px[len(px)-1] = 255
	}

	r := NewRaster(mode, width, height)
	r.Fill(px...)
	return ApplyOpacity(r, s.Opacity), nil
}
