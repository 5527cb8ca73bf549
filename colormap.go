package psdfx

import (
	"fmt"
	"log/slog"
	"sort"
)

// rampStop is a stop normalized to [0, 1] with its values already in
// 8-bit units.
type rampStop struct {
	loc  float64
	vals []float64
}

// collapseStops orders stops by location and keeps only the last stop at
// each location. A single remaining stop is widened to a flat ramp over
// [0, 1]. stops must not be empty.
func collapseStops(stops []rampStop, logger *slog.Logger) []rampStop {
	if len(stops) == 0 {
		panic("psdfx: gradient ramp has no stops")
	}

	sorted := make([]rampStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].loc < sorted[j].loc
	})

	out := make([]rampStop, 0, len(sorted))
	for _, s := range sorted {
		if n := len(out); n > 0 && out[n-1].loc == s.loc {
			logger.Debug("psdfx: duplicate gradient stop", "location", s.loc)
			out[n-1] = s
			continue
		}
		out = append(out, s)
	}

	if len(out) == 1 {
		out = []rampStop{{loc: 0, vals: out[0].vals}, {loc: 1, vals: out[0].vals}}
	}
	return out
}

// fitRamp fits one piecewise-linear curve per channel through the stops.
func fitRamp(b NumericBackend, stops []rampStop, channels int) ([]Predictor, error) {
	xs := make([]float64, len(stops))
	for i, s := range stops {
		xs[i] = s.loc
	}

	curves := make([]Predictor, channels)
	for c := range curves {
		ys := make([]float64, len(stops))
		for i, s := range stops {
			ys[i] = s.vals[c]
		}
		p, err := b.PiecewiseLinear(xs, ys)
		if err != nil {
			return nil, fmt.Errorf("psdfx: fit gradient channel %d: %w", c, err)
		}
		curves[c] = p
	}
	return curves, nil
}

// toLevel truncates v to an 8-bit level, saturating at both ends.
func toLevel(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default: // negative or NaN
		return 0
	}
}

// colorRamp converts the color stops of g to ramp stops in 8-bit units for
// mode. Missing channels read as 0.
func colorRamp(mode Mode, g *Gradient) []rampStop {
	n := mode.ColorChannels()
	scale := mode.stopScale()
	stops := make([]rampStop, len(g.Colors))
	for i, s := range g.Colors {
		vals := make([]float64, n)
		for c := range vals {
			if c < len(s.Color) {
				vals[c] = scale * s.Color[c]
			}
		}
		stops[i] = rampStop{loc: float64(s.Location) / StopLocationMax, vals: vals}
	}
	return stops
}

// alphaRamp converts the alpha stops of g to ramp stops in 8-bit units.
func alphaRamp(g *Gradient) []rampStop {
	stops := make([]rampStop, len(g.Alphas))
	for i, s := range g.Alphas {
		stops[i] = rampStop{
			loc:  float64(s.Location) / StopLocationMax,
			vals: []float64{s.Opacity * 2.55},
		}
	}
	return stops
}

// applyColorStops maps the gradient field z through the color stops of g
// and, for alpha modes with alpha stops, through the alpha stops.
func applyColorStops(mode Mode, width, height int, g *Gradient, z []float64, o options) (*Raster, error) {
	if len(g.Colors) == 0 {
		panic("psdfx: custom-stop gradient has no color stops")
	}

	colorMode := mode.WithoutAlpha()
	nc := colorMode.ColorChannels()
	curves, err := fitRamp(o.backend, collapseStops(colorRamp(colorMode, g), o.logger), nc)
	if err != nil {
		o.logger.Error("psdfx: gradient color stops", "err", err)
		return nil, err
	}

	outMode := colorMode
	if mode.HasAlpha() && len(g.Alphas) > 0 {
		alpha, err := fitRamp(o.backend, collapseStops(alphaRamp(g), o.logger), 1)
		if err != nil {
			o.logger.Error("psdfx: gradient alpha stops", "err", err)
			return nil, err
		}
		curves = append(curves, alpha[0])
		outMode = mode
	}

	r := NewRaster(outMode, width, height)
	n := r.Channels()
	pool := o.pool()
	defer pool.Close()
	pool.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			px := r.data[i*n : i*n+n]
			for c, curve := range curves {
				px[c] = toLevel(curve.Predict(z[i]))
			}
		}
	})
	return r, nil
}
