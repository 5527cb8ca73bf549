package psdfx

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

// PatternResolver looks up pattern tiles by id. It is supplied by the
// document layer that owns the pattern resources.
type PatternResolver interface {
	// ResolvePattern returns the tile for id, or false if there is none.
	// The returned raster is not modified.
	ResolvePattern(id string) (*Raster, bool)
}

// PatternSet is an in-memory PatternResolver keyed by normalized id.
type PatternSet map[string]*Raster

// Add registers tile under id.
func (s PatternSet) Add(id string, tile *Raster) {
	s[NormalizePatternID(id)] = tile
}

// ResolvePattern implements PatternResolver.
func (s PatternSet) ResolvePattern(id string) (*Raster, bool) {
	tile, ok := s[NormalizePatternID(id)]
	return tile, ok && tile != nil
}

// NormalizePatternID strips the NUL padding documents store after pattern
// ids and puts the id in Unicode NFC, so ids decoded from different string
// encodings compare equal.
func NormalizePatternID(id string) string {
	return norm.NFC.String(strings.TrimRight(id, "\x00"))
}

// PatternFill is a pattern fill setting.
type PatternFill struct {
	PatternID string
	Scale     float64 // percent; 0 means 100
	Opacity   int     // percent
}

// RenderPatternFill tiles the pattern referenced by p over a width*height
// canvas, starting at the origin. The tile is first scaled (nearest
// neighbor) and has the fill opacity applied; the result has the tile's
// mode, with alpha added if opacity required it.
//
// A pattern id the resolver does not know logs an error and returns
// ErrPatternNotFound with no raster.
func RenderPatternFill(width, height int, p *PatternFill, res PatternResolver, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pattern fill %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if p == nil || res == nil {
		return nil, fmt.Errorf("pattern fill: %w", ErrNilDescriptor)
	}
	o := newOptions(opts)

	id := NormalizePatternID(p.PatternID)
	tile, ok := res.ResolvePattern(id)
	if !ok || tile.Width() <= 0 || tile.Height() <= 0 {
		o.logger.Error("psdfx: pattern not found", "id", id)
		return nil, fmt.Errorf("pattern %q: %w", id, ErrPatternNotFound)
	}

	scale := p.Scale
	if scale == 0 {
		scale = 100
	}
	if scale != 100 {
		tile = ScaleNearest(tile,
			max(1, int(float64(tile.Width())*scale/100)),
			max(1, int(float64(tile.Height())*scale/100)))
	} else {
		tile = tile.Clone()
	}
	tile = ApplyOpacity(tile, p.Opacity)

	return Tile(tile, width, height), nil
}

// ScaleNearest resamples r to width*height with nearest-neighbor sampling.
// Channels are resampled independently, so every mode is supported.
func ScaleNearest(r *Raster, width, height int) *Raster {
	out := NewRaster(r.mode, width, height)
	src := &image.Gray{Stride: r.width, Rect: r.Bounds()}
	dst := image.NewGray(out.Bounds())
	for c := range r.Channels() {
		src.Pix = r.Channel(c)
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		out.SetChannel(c, dst.Pix)
	}
	return out
}

// Tile repeats tile across a width*height raster of the tile's mode,
// anchored at the origin.
func Tile(tile *Raster, width, height int) *Raster {
	out := NewRaster(tile.mode, width, height)
	n := tile.Channels()
	for y := 0; y < height; y++ {
		srow := (y % tile.height) * tile.width
		for x := 0; x < width; x += tile.width {
			w := min(tile.width, width-x)
			di := (y*width + x) * n
			si := srow * n
			copy(out.data[di:di+w*n], tile.data[si:si+w*n])
		}
	}
	return out
}
