package psdfx

import (
	"fmt"
	"math"

	"github.com/gogpu/psdfx/internal/cache"
	"github.com/gogpu/psdfx/internal/filter"
)

// noiseTableSize is the number of entries in a noise gradient lookup table.
const noiseTableSize = 256

// noiseKey identifies a noise lookup table. Tables are immutable once built.
type noiseKey struct {
	backend    string
	seed       int64
	smoothness int
	channels   int
	ranges     string
}

var noiseTables = cache.New[noiseKey, []uint8](32)

// cachedNoiseTable returns the lookup table for n, building it on first use.
func cachedNoiseTable(b NumericBackend, n *Noise, channels int) []uint8 {
	key := noiseKey{
		backend:    b.Name(),
		seed:       n.Seed,
		smoothness: n.Smoothness,
		channels:   channels,
		ranges:     fmt.Sprint(n.Min, n.Max),
	}
	return noiseTables.GetOrCreate(key, func() []uint8 {
		return noiseTable(b, n, channels)
	})
}

// noiseTable builds the lookup table of a noise gradient: noiseTableSize
// rows of channels 8-bit values each, row-major.
//
// Each channel starts as fair coin flips, is widened by a maximum filter,
// smoothed by a box filter along the table, and mapped from [0, 1] into
// the channel's [Min, Max] percent range. The table matches the reference
// renderer statistically, not pixel for pixel.
func noiseTable(b NumericBackend, n *Noise, channels int) []uint8 {
	roughness := float64(n.Smoothness) / 4096
	size := max(1, int(roughness*4))

	coins := b.Bernoulli(n.Seed, noiseTableSize*channels)
	table := make([]uint8, noiseTableSize*channels)
	column := make([]float64, noiseTableSize)
	for c := range channels {
		for i := range column {
			column[i] = coins[i*channels+c]
		}
		smoothed := filter.Uniform1D(filter.Maximum1D(column, size), size*64)

		lo, hi := channelRange(n, c)
		for i, v := range smoothed {
			table[i*channels+c] = toLevel(2.55 * ((hi-lo)*v + lo))
		}
	}
	return table
}

// channelRange returns the percent range of channel c, defaulting to the
// full [0, 100] range for channels the descriptor does not list.
func channelRange(n *Noise, c int) (lo, hi float64) {
	lo, hi = 0, 100
	if c < len(n.Min) {
		lo = n.Min[c]
	}
	if c < len(n.Max) {
		hi = n.Max[c]
	}
	return lo, hi
}

// applyNoise maps the gradient field z through a noise lookup table. Alpha
// modes get an opaque alpha channel.
func applyNoise(mode Mode, width, height int, n *Noise, z []float64, o options) (*Raster, error) {
	if n == nil {
		return nil, fmt.Errorf("noise gradient: %w", ErrNilDescriptor)
	}
	o.logger.Debug("psdfx: noise gradient is an approximation", "seed", n.Seed, "smoothness", n.Smoothness)

	nc := mode.ColorChannels()
	table := cachedNoiseTable(o.backend, n, nc)

	r := NewRaster(mode, width, height)
	ch := r.Channels()
	pool := o.pool()
	defer pool.Close()
	pool.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			k := quantize(z[i])
			px := r.data[i*ch : i*ch+ch]
			copy(px, table[k*nc:k*nc+nc])
			if ch > nc {
				px[nc] = math.MaxUint8
			}
		}
	})
	return r, nil
}

// quantize maps a gradient position in [0, 1] to a lookup table index.
func quantize(z float64) int {
	return int(math.Floor(255 * max(0, min(1, z))))
}
