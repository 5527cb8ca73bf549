package psdfx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// checker2 is a 2x2 gray tile:
//
//	10 20
//	30 40
func checker2() *Raster {
	r := NewRaster(ModeGray, 2, 2)
	copy(r.Data(), []uint8{10, 20, 30, 40})
	return r
}

func TestTileWraps(t *testing.T) {
	got := Tile(checker2(), 5, 3)
	want := []uint8{
		10, 20, 10, 20, 10,
		30, 40, 30, 40, 30,
		10, 20, 10, 20, 10,
	}
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("Tile() mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleNearest(t *testing.T) {
	src := NewRaster(ModeRGB, 2, 1)
	copy(src.Data(), []uint8{1, 2, 3, 4, 5, 6})

	got := ScaleNearest(src, 4, 2)
	if got.Mode() != ModeRGB || got.Width() != 4 || got.Height() != 2 {
		t.Fatalf("got %dx%d %v", got.Width(), got.Height(), got.Mode())
	}
	row := []uint8{1, 2, 3, 1, 2, 3, 4, 5, 6, 4, 5, 6}
	want := append(append([]uint8(nil), row...), row...)
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("ScaleNearest() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPatternFill(t *testing.T) {
	set := PatternSet{}
	set.Add("abc", checker2())

	r, err := RenderPatternFill(3, 3, &PatternFill{PatternID: "abc", Opacity: 100}, set)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		10, 20, 10,
		30, 40, 30,
		10, 20, 10,
	}
	if diff := cmp.Diff(want, r.Data()); diff != "" {
		t.Errorf("pattern fill mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPatternFillScaleAndOpacity(t *testing.T) {
	set := PatternSet{}
	tile := checker2()
	set.Add("p", tile)

	r, err := RenderPatternFill(4, 4, &PatternFill{PatternID: "p", Scale: 200, Opacity: 50}, set)
	if err != nil {
		t.Fatal(err)
	}
	if r.Mode() != ModeGrayAlpha {
		t.Fatalf("mode = %v, want LA", r.Mode())
	}
	if got := r.Pixel(1, 1); !cmp.Equal(got, []uint8{10, 128}) {
		t.Errorf("pixel(1,1) = %v, want [10 128]", got)
	}
	if got := r.Pixel(3, 3); !cmp.Equal(got, []uint8{40, 128}) {
		t.Errorf("pixel(3,3) = %v, want [40 128]", got)
	}

	// The resolved tile is left untouched.
	if diff := cmp.Diff([]uint8{10, 20, 30, 40}, tile.Data()); diff != "" {
		t.Errorf("source tile modified (-want +got):\n%s", diff)
	}
}

func TestRenderPatternFillNotFound(t *testing.T) {
	r, err := RenderPatternFill(2, 2, &PatternFill{PatternID: "missing"}, PatternSet{})
	if !errors.Is(err, ErrPatternNotFound) {
		t.Errorf("err = %v, want ErrPatternNotFound", err)
	}
	if r != nil {
		t.Error("raster returned alongside error")
	}
}

func TestRenderPatternFillErrors(t *testing.T) {
	if _, err := RenderPatternFill(0, 2, &PatternFill{}, PatternSet{}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := RenderPatternFill(2, 2, nil, PatternSet{}); !errors.Is(err, ErrNilDescriptor) {
		t.Errorf("err = %v, want ErrNilDescriptor", err)
	}
	if _, err := RenderPatternFill(2, 2, &PatternFill{}, nil); !errors.Is(err, ErrNilDescriptor) {
		t.Errorf("err = %v, want ErrNilDescriptor", err)
	}
}

func TestNormalizePatternID(t *testing.T) {
	decomposed := "cafe\u0301\x00\x00"
	if got, want := NormalizePatternID(decomposed), "caf\u00e9"; got != want {
		t.Errorf("NormalizePatternID() = %q, want %q", got, want)
	}

	set := PatternSet{}
	set.Add("caf\u00e9", checker2())
	if _, ok := set.ResolvePattern(decomposed); !ok {
		t.Error("decomposed id did not resolve to the composed entry")
	}
}
