package psdfx

import (
	"errors"
	"sync"
)

// Predictor evaluates a fitted one-dimensional curve.
type Predictor interface {
	Predict(x float64) float64
}

// NumericBackend supplies the numeric routines gradient rendering needs and
// that a minimal build may leave out.
//
// Implementations are provided by backend packages and registered with
// RegisterBackend. The default one is enabled with a blank import:
//
//	import _ "github.com/gogpu/psdfx/numeric"
//
// Without a registered backend, RenderGradient reports ErrBackendUnavailable
// and produces no raster.
type NumericBackend interface {
	// Name returns the backend name (e.g., "gonum").
	Name() string

	// PiecewiseLinear fits a piecewise-linear curve through (xs[i], ys[i]).
	// xs is strictly increasing and has at least two entries. Outside
	// [xs[0], xs[len-1]] the curve holds the end values.
	PiecewiseLinear(xs, ys []float64) (Predictor, error)

	// Bernoulli returns n independent draws of 0 or 1 with probability 0.5
	// each. Equal seeds produce equal sequences.
	Bernoulli(seed int64, n int) []float64
}

var (
	backendMu sync.RWMutex
	backend   NumericBackend
)

// RegisterBackend installs b as the numeric backend, replacing any previous
// one. The current logger is handed to b if it accepts one.
//
// Typical usage from a backend package:
//
//	func init() {
//	    psdfx.RegisterBackend(Backend{})
//	}
func RegisterBackend(b NumericBackend) error {
	if b == nil {
		return errors.New("psdfx: backend must not be nil")
	}
	backendMu.Lock()
	backend = b
	backendMu.Unlock()

	propagateLogger(b, Logger())
	return nil
}

// Backend returns the registered numeric backend, or nil if none.
func Backend() NumericBackend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
