package psdfx

import "math"

// ApplyOpacity applies a fill opacity in percent to r.
//
// At 100 percent r is returned unchanged. If r has an alpha channel every
// alpha value is scaled by percent/100 (truncating) and r is returned.
// Otherwise a new raster with the alpha variant of r's mode is returned,
// carrying a uniform alpha of round(percent*2.55). Percent is clamped to
// [0, 100].
func ApplyOpacity(r *Raster, percent int) *Raster {
	if r == nil || percent == 100 {
		return r
	}
	percent = max(0, min(100, percent))
	if percent == 100 {
		return r
	}

	n := r.Channels()
	if r.mode.HasAlpha() {
		for i := n - 1; i < len(r.data); i += n {
			r.data[i] = uint8(int(r.data[i]) * percent / 100)
		}
		return r
	}

	out := NewRaster(r.mode.WithAlpha(), r.width, r.height)
	alpha := uint8(math.Round(float64(percent*255) / 100))
	for i, j := 0, 0; i < len(r.data); i, j = i+n, j+n+1 {
		copy(out.data[j:j+n], r.data[i:i+n])
		out.data[j+n] = alpha
	}
	return out
}
