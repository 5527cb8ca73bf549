package psdfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRaster(t *testing.T) {
	r := NewRaster(ModeRGBA, 3, 2)
	if r.Width() != 3 || r.Height() != 2 || r.Mode() != ModeRGBA {
		t.Fatalf("got %dx%d %v", r.Width(), r.Height(), r.Mode())
	}
	if len(r.Data()) != 3*2*4 {
		t.Errorf("len(Data()) = %d, want 24", len(r.Data()))
	}
}

func TestRasterPixel(t *testing.T) {
	r := NewRaster(ModeRGB, 2, 2)
	r.SetPixel(1, 0, 10, 20, 30)

	if diff := cmp.Diff([]uint8{10, 20, 30}, r.Pixel(1, 0)); diff != "" {
		t.Errorf("Pixel(1,0) mismatch (-want +got):\n%s", diff)
	}
	if r.Pixel(2, 0) != nil || r.Pixel(0, -1) != nil {
		t.Error("Pixel outside bounds should be nil")
	}
	r.SetPixel(5, 5, 1, 2, 3) // ignored
}

func TestRasterFillAndChannel(t *testing.T) {
	r := NewRaster(ModeGrayAlpha, 2, 2)
	r.Fill(7, 200)

	if diff := cmp.Diff([]uint8{7, 7, 7, 7}, r.Channel(0)); diff != "" {
		t.Errorf("Channel(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{200, 200, 200, 200}, r.Channel(1)); diff != "" {
		t.Errorf("Channel(1) mismatch (-want +got):\n%s", diff)
	}
	if r.Channel(2) != nil {
		t.Error("Channel(2) of LA raster should be nil")
	}

	r.SetChannel(1, []uint8{1, 2, 3, 4})
	if diff := cmp.Diff([]uint8{7, 1, 7, 2, 7, 3, 7, 4}, r.Data()); diff != "" {
		t.Errorf("SetChannel mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterClone(t *testing.T) {
	r := NewRaster(ModeGray, 2, 1)
	r.Fill(9)
	c := r.Clone()
	r.Fill(0)
	if c.Pixel(0, 0)[0] != 9 {
		t.Error("clone should not be affected by changes to the original")
	}
}

func TestRasterCrop(t *testing.T) {
	r := NewRaster(ModeGray, 4, 3)
	for i := range r.Data() {
		r.Data()[i] = uint8(i + 1)
	}
	// 1  2  3  4
	// 5  6  7  8
	// 9 10 11 12

	tests := []struct {
		name string
		box  image.Rectangle
		want []uint8
		w, h int
	}{
		{"inside", image.Rect(1, 1, 3, 3), []uint8{6, 7, 10, 11}, 2, 2},
		{"full", image.Rect(0, 0, 4, 3), []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 4, 3},
		{"partly outside", image.Rect(3, 2, 5, 4), []uint8{12, 0, 0, 0}, 2, 2},
		{"negative origin", image.Rect(-1, -1, 1, 1), []uint8{0, 0, 0, 1}, 2, 2},
		{"disjoint", image.Rect(10, 10, 12, 11), []uint8{0, 0}, 2, 1},
		{"empty", image.Rectangle{}, []uint8{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Crop(tt.box)
			if got.Width() != tt.w || got.Height() != tt.h {
				t.Fatalf("Crop size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.w, tt.h)
			}
			if diff := cmp.Diff(tt.want, got.Data()); diff != "" {
				t.Errorf("Crop mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRasterImage(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		px   []uint8
		want color.Color
	}{
		{"gray", ModeGray, []uint8{80}, color.Gray{Y: 80}},
		{"gray alpha", ModeGrayAlpha, []uint8{80, 128}, color.NRGBA{80, 80, 80, 128}},
		{"rgb", ModeRGB, []uint8{1, 2, 3}, color.RGBA{1, 2, 3, 255}},
		{"rgba", ModeRGBA, []uint8{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{"cmyk", ModeCMYK, []uint8{1, 2, 3, 4}, color.CMYK{1, 2, 3, 4}},
		{"cmyka", ModeCMYKA, []uint8{1, 2, 3, 4, 5}, color.CMYK{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRaster(tt.mode, 1, 1)
			r.SetPixel(0, 0, tt.px...)
			img := r.Image()
			if img.Bounds() != image.Rect(0, 0, 1, 1) {
				t.Fatalf("Bounds() = %v", img.Bounds())
			}
			if got := img.At(0, 0); got != tt.want {
				t.Errorf("At(0,0) = %#v, want %#v", got, tt.want)
			}
		})
	}
}
