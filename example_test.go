package psdfx_test

import (
	"fmt"
	"image"

	"github.com/gogpu/psdfx"
	_ "github.com/gogpu/psdfx/numeric"
)

func ExampleRenderGradient() {
	g := &psdfx.Gradient{
		Kind:    psdfx.Linear,
		Scale:   100,
		Opacity: 100,
		Colors: []psdfx.ColorStop{
			{Location: 0, Color: []float64{0}},
			{Location: psdfx.StopLocationMax, Color: []float64{100}},
		},
	}
	r, err := psdfx.RenderGradient(psdfx.ModeRGB, 5, 1, g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for x := range r.Width() {
		fmt.Println(r.Pixel(x, 0))
	}
	// Output:
	// [0 0 0]
	// [25 0 0]
	// [50 0 0]
	// [75 0 0]
	// [100 0 0]
}

func ExampleCompositeVectorMask() {
	square := func(v, h float64) psdfx.Knot {
		c := psdfx.Coord{v, h}
		return psdfx.Knot{Preceding: c, Anchor: c, Leaving: c}
	}
	vm := &psdfx.VectorMask{
		InitialFillRule: 0,
		Paths: []psdfx.SubPath{{
			Closed: true,
			Op:     psdfx.OpSubtractInverted,
			Knots: []psdfx.Knot{
				square(0, 0), square(0, 0.5), square(0.5, 0.5), square(0.5, 0),
			},
		}},
	}
	r, err := psdfx.CompositeVectorMask(vm, 4, 2, image.Rect(0, 0, 4, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	for y := range r.Height() {
		fmt.Println(r.Data()[y*4 : y*4+4])
	}
	// Output:
	// [0 0 255 255]
	// [255 255 255 255]
}

func ExampleRenderPatternFill() {
	tile := psdfx.NewRaster(psdfx.ModeGray, 2, 1)
	tile.SetPixel(0, 0, 10)
	tile.SetPixel(1, 0, 20)

	set := psdfx.PatternSet{}
	set.Add("stripes", tile)

	r, err := psdfx.RenderPatternFill(5, 1, &psdfx.PatternFill{PatternID: "stripes", Opacity: 100}, set)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Data())
	// Output:
	// [10 20 10 20 10]
}
