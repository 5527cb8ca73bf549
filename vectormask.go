package psdfx

import (
	"fmt"
	"image"

	"github.com/gogpu/psdfx/internal/raster"
)

// Coord is a normalized path position in document order: index 0 is the
// vertical component and index 1 the horizontal one, both in [0, 1].
type Coord [2]float64

// pixel scales c to a width*height canvas. The horizontal component scales
// by width and the vertical one by height.
func (c Coord) pixel(width, height int) raster.Point {
	return raster.Point{
		X: float32(c[1] * float64(width)),
		Y: float32(c[0] * float64(height)),
	}
}

// Knot is one bezier anchor of a sub-path with its two handles. A handle
// equal to its anchor makes the adjoining segment straight.
type Knot struct {
	Preceding Coord // incoming handle
	Anchor    Coord
	Leaving   Coord // outgoing handle
}

// BoolOp is how a sub-path's area combines with the shapes before it.
type BoolOp int

const (
	// OpExclude keeps the area covered by exactly one of the two (XOR).
	OpExclude BoolOp = 0
	// OpUnion adds the sub-path area.
	OpUnion BoolOp = 1
	// OpSubtractInverted removes the sub-path area.
	OpSubtractInverted BoolOp = 2
	// OpIntersectInverted keeps only the area inside the sub-path.
	OpIntersectInverted BoolOp = 3
)

// String returns the operator name.
func (op BoolOp) String() string {
	switch op {
	case OpExclude:
		return "Exclude"
	case OpUnion:
		return "Union"
	case OpSubtractInverted:
		return "SubtractInverted"
	case OpIntersectInverted:
		return "IntersectInverted"
	default:
		return fmt.Sprintf("BoolOp(%d)", int(op))
	}
}

// SubPath is a single contour of a vector mask.
type SubPath struct {
	Knots  []Knot
	Closed bool
	Op     BoolOp
}

// contour converts the sub-path to pixel-space cubic segments. Segment i
// runs from knot i's anchor through knot i's leaving handle and knot i+1's
// preceding handle to knot i+1's anchor; a closed path also joins the last
// knot to the first.
func (sp *SubPath) contour(width, height int) raster.Contour {
	n := len(sp.Knots)
	if n == 0 {
		return raster.Contour{}
	}

	segments := n - 1
	if sp.Closed {
		segments = n
	}
	c := raster.Contour{
		Start:  sp.Knots[0].Anchor.pixel(width, height),
		Curves: make([]raster.Cubic, 0, segments),
	}
	for i := range segments {
		p1, p2 := sp.Knots[i], sp.Knots[(i+1)%n]
		c.Curves = append(c.Curves, raster.Cubic{
			C1: p1.Leaving.pixel(width, height),
			C2: p2.Preceding.pixel(width, height),
			To: p2.Anchor.pixel(width, height),
		})
	}
	return c
}

// VectorMask is the decoded vector mask of a layer.
type VectorMask struct {
	Paths []SubPath

	// InitialFillRule is 1 if the canvas starts fully covered, 0 if it
	// starts empty.
	InitialFillRule int
}

// RasterizeSubPath fills one sub-path into a width*height coverage plane
// (255 inside, 0 outside, antialiased edges).
func RasterizeSubPath(sp *SubPath, width, height int) []uint8 {
	return raster.Fill(sp.contour(width, height), width, height)
}

// CompositeVectorMask renders vm on a width*height canvas and returns the
// part inside bbox (absolute canvas coordinates) as a ModeGray raster.
//
// The canvas starts at 255*InitialFillRule. Each sub-path, in order, is
// filled into a plane and combined with the canvas by its operator:
//
//	Exclude            |canvas - plane|
//	Union              max(canvas, plane)
//	SubtractInverted   max(0, canvas - plane)
//	IntersectInverted  min(canvas, plane)
//
// Before combining, SubtractInverted and IntersectInverted invert the
// canvas if their sub-path is the first one. A nil vm is an empty mask
// with fill rule 0.
func CompositeVectorMask(vm *VectorMask, width, height int, bbox image.Rectangle, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vector mask %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if vm == nil {
		vm = &VectorMask{}
	}
	if vm.InitialFillRule != 0 && vm.InitialFillRule != 1 {
		return nil, fmt.Errorf("vector mask fill rule %d: %w", vm.InitialFillRule, ErrInvalidFillRule)
	}

	o := newOptions(opts)
	pool := o.pool()
	defer pool.Close()

	acc := NewMask(width, height)
	acc.Fill(uint8(255 * vm.InitialFillRule))

	st := compositeState{first: true}
	planes := make([][]uint8, pool.Workers())
	for start := 0; start < len(vm.Paths); start += len(planes) {
		batch := vm.Paths[start:min(start+len(planes), len(vm.Paths))]

		// Planes depend only on their own sub-path, so a batch can be
		// filled concurrently; combining stays in path order.
		work := make([]func(), len(batch))
		for i := range batch {
			work[i] = func() {
				planes[i] = RasterizeSubPath(&batch[i], width, height)
			}
		}
		pool.ExecuteAll(work)

		for i := range batch {
			st.apply(acc, batch[i].Op, planes[i], o)
		}
	}

	return acc.Raster().Crop(bbox), nil
}

// compositeState carries the per-composite "first sub-path" flag. The flag
// is cleared after every sub-path, whatever its operator.
type compositeState struct {
	first bool
}

func (st *compositeState) apply(acc *Mask, op BoolOp, plane []uint8, o options) {
	defer func() { st.first = false }()

	switch op {
	case OpExclude:
		acc.Difference(plane)
	case OpUnion:
		acc.Lighter(plane)
	case OpSubtractInverted:
		if st.first {
			acc.Invert()
		}
		acc.Subtract(plane)
	case OpIntersectInverted:
		if st.first {
			acc.Invert()
		}
		acc.Darker(plane)
	default:
		o.logger.Warn("psdfx: unknown path operation, sub-path ignored", "op", op)
	}
}
