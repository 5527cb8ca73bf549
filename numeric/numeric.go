// Package numeric registers the default psdfx numeric backend, built on
// gonum.
//
// Gradient rendering needs piecewise-linear interpolation and a seeded
// random source. Enable them with a blank import:
//
//	import _ "github.com/gogpu/psdfx/numeric"
package numeric

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/gogpu/psdfx"
)

func init() {
	// Registering a non-nil backend cannot fail.
	_ = psdfx.RegisterBackend(New())
}

// Fit errors.
var (
	ErrTooFewPoints   = errors.New("numeric: need at least two points")
	ErrLengthMismatch = errors.New("numeric: xs and ys differ in length")
	ErrNotIncreasing  = errors.New("numeric: xs not strictly increasing")
	ErrNaN            = errors.New("numeric: NaN in input")
)

// Backend implements psdfx.NumericBackend with gonum interpolation and a
// PCG random source.
type Backend struct {
	logger atomic.Pointer[slog.Logger]
}

// New returns a Backend that logs nothing until SetLogger is called.
func New() *Backend {
	return &Backend{}
}

// Name implements psdfx.NumericBackend.
func (*Backend) Name() string { return "gonum" }

// SetLogger receives the psdfx logger.
func (b *Backend) SetLogger(l *slog.Logger) {
	b.logger.Store(l)
}

func (b *Backend) debug(msg string, args ...any) {
	if l := b.logger.Load(); l != nil {
		l.Debug(msg, args...)
	}
}

// PiecewiseLinear implements psdfx.NumericBackend. Input problems that
// gonum would panic on are reported as errors.
func (b *Backend) PiecewiseLinear(xs, ys []float64) (psdfx.Predictor, error) {
	switch {
	case len(xs) != len(ys):
		return nil, ErrLengthMismatch
	case len(xs) < 2:
		return nil, ErrTooFewPoints
	case floats.HasNaN(xs) || floats.HasNaN(ys):
		return nil, ErrNaN
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	b.debug("numeric: fitted piecewise-linear curve", "points", len(xs),
		"min", floats.Min(ys), "max", floats.Max(ys))
	return &pl, nil
}

// Bernoulli implements psdfx.NumericBackend.
func (*Backend) Bernoulli(seed int64, n int) []float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.Uint64() >> 63)
	}
	return out
}

// pcgStream is the fixed PCG stream selector; only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15
