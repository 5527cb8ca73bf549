package psdfx

import "image"

// Mask is a single-channel coverage buffer used to accumulate vector mask
// sub-paths. Values range from 0 (outside) to 255 (inside).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new mask with every value set to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Fill sets every value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert replaces every value v with 255 - v.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// The combine methods below take a plane of the same size as the mask.

// Difference sets m = |m - plane|.
func (m *Mask) Difference(plane []uint8) {
	for i, p := range plane[:len(m.data)] {
		if a := m.data[i]; a >= p {
			m.data[i] = a - p
		} else {
			m.data[i] = p - a
		}
	}
}

// Lighter sets m = max(m, plane).
func (m *Mask) Lighter(plane []uint8) {
	for i, p := range plane[:len(m.data)] {
		m.data[i] = max(m.data[i], p)
	}
}

// Subtract sets m = max(0, m - plane).
func (m *Mask) Subtract(plane []uint8) {
	for i, p := range plane[:len(m.data)] {
		if a := m.data[i]; a > p {
			m.data[i] = a - p
		} else {
			m.data[i] = 0
		}
	}
}

// Darker sets m = min(m, plane).
func (m *Mask) Darker(plane []uint8) {
	for i, p := range plane[:len(m.data)] {
		m.data[i] = min(m.data[i], p)
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Raster returns the mask as a ModeGray raster sharing no memory with m.
func (m *Mask) Raster() *Raster {
	r := NewRaster(ModeGray, m.width, m.height)
	copy(r.data, m.data)
	return r
}
