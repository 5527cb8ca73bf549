package psdfx

import "image"

// Raster is an interleaved 8-bit pixel buffer with a color mode.
// Every render call returns a freshly allocated Raster owned by the caller.
type Raster struct {
	width  int
	height int
	mode   Mode
	data   []uint8 // row-major, Channels() bytes per pixel
}

// NewRaster creates a zero-filled raster.
func NewRaster(mode Mode, width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		mode:   mode,
		data:   make([]uint8, width*height*mode.Channels()),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Mode returns the color mode.
func (r *Raster) Mode() Mode { return r.mode }

// Channels returns the number of bytes per pixel.
func (r *Raster) Channels() int { return r.mode.Channels() }

// Data returns the underlying pixel data.
func (r *Raster) Data() []uint8 { return r.data }

// Bounds returns the raster dimensions as an image.Rectangle.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Pixel returns the channel values at (x, y), or nil outside the raster.
// The slice aliases the raster data.
func (r *Raster) Pixel(x, y int) []uint8 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return nil
	}
	n := r.Channels()
	i := (y*r.width + x) * n
	return r.data[i : i+n : i+n]
}

// SetPixel sets the channel values at (x, y). Missing values are left
// unchanged, extra values ignored. Coordinates outside are ignored.
func (r *Raster) SetPixel(x, y int, values ...uint8) {
	copy(r.Pixel(x, y), values)
}

// Fill sets every pixel to values.
func (r *Raster) Fill(values ...uint8) {
	n := r.Channels()
	px := make([]uint8, n)
	copy(px, values)
	for i := 0; i < len(r.data); i += n {
		copy(r.data[i:i+n], px)
	}
}

// Channel returns a copy of channel c as a width*height plane.
func (r *Raster) Channel(c int) []uint8 {
	n := r.Channels()
	if c < 0 || c >= n {
		return nil
	}
	plane := make([]uint8, r.width*r.height)
	for i := range plane {
		plane[i] = r.data[i*n+c]
	}
	return plane
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	out := NewRaster(r.mode, r.width, r.height)
	copy(out.data, r.data)
	return out
}

// Crop returns the part of r inside box as a new raster of box's size.
// Parts of box outside r are zero.
func (r *Raster) Crop(box image.Rectangle) *Raster {
	box = box.Canon()
	out := NewRaster(r.mode, box.Dx(), box.Dy())
	src := box.Intersect(r.Bounds())
	if src.Empty() {
		return out
	}

	n := r.Channels()
	rowBytes := src.Dx() * n
	for y := src.Min.Y; y < src.Max.Y; y++ {
		si := (y*r.width + src.Min.X) * n
		di := ((y-box.Min.Y)*out.width + (src.Min.X - box.Min.X)) * n
		copy(out.data[di:di+rowBytes], r.data[si:si+rowBytes])
	}
	return out
}

// Image converts the raster to a standard library image for encoding or
// display. Gray maps to *image.Gray, RGB to an opaque *image.RGBA, alpha
// modes to *image.NRGBA and CMYK modes to *image.CMYK (alpha dropped).
func (r *Raster) Image() image.Image {
	rect := r.Bounds()
	n := r.Channels()
	switch r.mode {
	case ModeGray:
		img := image.NewGray(rect)
		copy(img.Pix, r.data)
		return img
	case ModeGrayAlpha:
		img := image.NewNRGBA(rect)
		for i := 0; i < r.width*r.height; i++ {
			v, a := r.data[i*n], r.data[i*n+1]
			copy(img.Pix[i*4:], []uint8{v, v, v, a})
		}
		return img
	case ModeRGB:
		img := image.NewRGBA(rect)
		for i := 0; i < r.width*r.height; i++ {
			copy(img.Pix[i*4:], r.data[i*n:i*n+3])
			img.Pix[i*4+3] = 0xff
		}
		return img
	case ModeRGBA:
		img := image.NewNRGBA(rect)
		copy(img.Pix, r.data)
		return img
	case ModeCMYK, ModeCMYKA:
		img := image.NewCMYK(rect)
		for i := 0; i < r.width*r.height; i++ {
			copy(img.Pix[i*4:i*4+4], r.data[i*n:i*n+4])
		}
		return img
	default:
		return image.NewGray(image.Rectangle{})
	}
}

// SetChannel overwrites channel c from a width*height plane.
func (r *Raster) SetChannel(c int, plane []uint8) {
	n := r.Channels()
	if c < 0 || c >= n {
		return
	}
	for i := 0; i < r.width*r.height && i < len(plane); i++ {
		r.data[i*n+c] = plane[i]
	}
}
