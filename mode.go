package psdfx

import "fmt"

// Mode is the color mode of a Raster. Names follow the PIL convention used
// by document tooling ("L", "RGB", "CMYKA", ...).
type Mode uint8

const (
	// ModeGray is 8-bit grayscale ("L").
	ModeGray Mode = iota
	// ModeGrayAlpha is grayscale with alpha ("LA").
	ModeGrayAlpha
	// ModeRGB is 24-bit RGB.
	ModeRGB
	// ModeRGBA is RGB with straight (non-premultiplied) alpha.
	ModeRGBA
	// ModeCMYK is 32-bit CMYK.
	ModeCMYK
	// ModeCMYKA is CMYK with alpha.
	ModeCMYKA
)

var modeNames = [...]string{
	ModeGray:      "L",
	ModeGrayAlpha: "LA",
	ModeRGB:       "RGB",
	ModeRGBA:      "RGBA",
	ModeCMYK:      "CMYK",
	ModeCMYKA:     "CMYKA",
}

// String returns the PIL-style mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode returns the Mode with the given PIL-style name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("psdfx: unknown color mode %q", s)
}

// ColorChannels returns the number of color channels, excluding alpha.
func (m Mode) ColorChannels() int {
	switch m {
	case ModeGray, ModeGrayAlpha:
		return 1
	case ModeRGB, ModeRGBA:
		return 3
	case ModeCMYK, ModeCMYKA:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the mode carries an alpha channel.
func (m Mode) HasAlpha() bool {
	return m == ModeGrayAlpha || m == ModeRGBA || m == ModeCMYKA
}

// Channels returns the number of bytes per pixel.
func (m Mode) Channels() int {
	if m.HasAlpha() {
		return m.ColorChannels() + 1
	}
	return m.ColorChannels()
}

// WithAlpha returns the alpha variant of m.
func (m Mode) WithAlpha() Mode {
	switch m {
	case ModeGray:
		return ModeGrayAlpha
	case ModeRGB:
		return ModeRGBA
	case ModeCMYK:
		return ModeCMYKA
	default:
		return m
	}
}

// WithoutAlpha returns m with its alpha channel dropped.
func (m Mode) WithoutAlpha() Mode {
	switch m {
	case ModeGrayAlpha:
		return ModeGray
	case ModeRGBA:
		return ModeRGB
	case ModeCMYKA:
		return ModeCMYK
	default:
		return m
	}
}

// valid reports whether m is one of the defined modes.
func (m Mode) valid() bool {
	return int(m) < len(modeNames)
}

// stopScale converts stored stop channel values to 8-bit levels.
// Gray and CMYK stops are stored as percentages, RGB stops as 0..255.
func (m Mode) stopScale() float64 {
	switch m.WithoutAlpha() {
	case ModeGray, ModeCMYK:
		return 2.55
	default:
		return 1.0
	}
}
