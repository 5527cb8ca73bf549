// Command psdfxdemo renders a gradient fill clipped by a vector mask to PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/psdfx"
	_ "github.com/gogpu/psdfx/numeric"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		kind    = flag.Int("kind", int(psdfx.Radial), "gradient kind (0 linear, 1 radial, 2 angle, 3 reflected, 4 diamond)")
		angle   = flag.Float64("angle", 45, "gradient angle in degrees")
		scale   = flag.Float64("scale", 100, "gradient scale in percent")
		noise   = flag.Int64("noise", -1, "render a noise gradient with this seed")
		output  = flag.String("output", "psdfx.png", "output file")
		verbose = flag.Bool("v", false, "log render diagnostics")
	)
	flag.Parse()

	if *verbose {
		psdfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g := &psdfx.Gradient{
		Kind:    psdfx.GradientKind(*kind),
		Angle:   *angle,
		Scale:   *scale,
		Opacity: 100,
		Colors: []psdfx.ColorStop{
			{Location: 0, Color: []float64{20, 40, 120}},
			{Location: 2048, Color: []float64{230, 90, 60}},
			{Location: psdfx.StopLocationMax, Color: []float64{250, 220, 120}},
		},
	}
	if *noise >= 0 {
		g.Form = psdfx.FormNoise
		g.Noise = &psdfx.Noise{Smoothness: 2048, Seed: *noise}
	}

	fill, err := psdfx.RenderGradient(psdfx.ModeRGB, *width, *height, g)
	if err != nil {
		log.Fatalf("gradient: %v", err)
	}

	mask, err := psdfx.CompositeVectorMask(demoMask(), *width, *height, image.Rect(0, 0, *width, *height))
	if err != nil {
		log.Fatalf("vector mask: %v", err)
	}

	out := psdfx.NewRaster(psdfx.ModeRGBA, *width, *height)
	for c := range 3 {
		out.SetChannel(c, fill.Channel(c))
	}
	out.SetChannel(3, mask.Channel(0))

	if err := savePNG(*output, out.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// demoMask is a rounded frame: a curved outer contour with a rectangular
// hole.
func demoMask() *psdfx.VectorMask {
	curved := func(v, h, dv, dh float64) psdfx.Knot {
		return psdfx.Knot{
			Preceding: psdfx.Coord{v - dv, h - dh},
			Anchor:    psdfx.Coord{v, h},
			Leaving:   psdfx.Coord{v + dv, h + dh},
		}
	}
	corner := func(v, h float64) psdfx.Knot {
		c := psdfx.Coord{v, h}
		return psdfx.Knot{Preceding: c, Anchor: c, Leaving: c}
	}
	return &psdfx.VectorMask{
		Paths: []psdfx.SubPath{
			{
				Closed: true,
				Op:     psdfx.OpUnion,
				Knots: []psdfx.Knot{
					curved(0.05, 0.5, 0, 0.25),
					curved(0.5, 0.95, 0.25, 0),
					curved(0.95, 0.5, 0, -0.25),
					curved(0.5, 0.05, -0.25, 0),
				},
			},
			{
				Closed: true,
				Op:     psdfx.OpSubtractInverted,
				Knots: []psdfx.Knot{
					corner(0.4, 0.4),
					corner(0.4, 0.6),
					corner(0.6, 0.6),
					corner(0.6, 0.4),
				},
			},
		},
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
