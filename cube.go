package ndcube

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Cube is the full puzzle: the fixed collection of all 3^dims points,
// indexed by the mixed-radix-3 encoding of their original coordinates.
// A Cube is not safe for concurrent use.
type Cube struct {
	dims   int
	points []Point
	rng    *rand.Rand
}

// New creates a solved cube of side 3 in dims dimensions. Fails with
// ErrInvalidDimension (wrapped in a DimensionError) when dims < MinDims,
// since no valid rotation triple exists below three dimensions.
func New(dims int, opts ...Option) (*Cube, error) {
	if dims < MinDims {
		return nil, &DimensionError{Dims: dims}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	size := pow3(dims)
	points := make([]Point, size)
	for i := range points {
		points[i] = pointFromIndex(i, dims)
	}

	return &Cube{dims: dims, points: points, rng: rng}, nil
}

func pow3(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 3
	}
	return result
}

// Dims returns the cube's dimension count.
func (c *Cube) Dims() int { return c.dims }

// Size returns the number of points, 3^dims.
func (c *Cube) Size() int { return len(c.points) }

// Rotate applies a quarter-turn to every point. Each point's update depends
// only on its own prior state, so the broadcast is order-insensitive.
// An invalid rotation reaching the cube is a caller bug, not a reachable
// puzzle state, and panics.
func (c *Cube) Rotate(r Rotation) {
	if err := r.Validate(c.dims); err != nil {
		panic(err)
	}
	for i := range c.points {
		c.points[i].rotate(r)
	}
}

// RotateN applies the same rotation n times in sequence.
func (c *Cube) RotateN(r Rotation, n int) {
	for i := 0; i < n; i++ {
		c.Rotate(r)
	}
}

// Undo reverses one application of r by applying it three more times;
// quarter-turns have order 4 on the affected slice.
func (c *Cube) Undo(r Rotation) {
	c.RotateN(r, 3)
}

// IsSolved reports whether every point is at its original position and
// either in its original orientation or a face center (for which orientation
// is irrelevant).
func (c *Cube) IsSolved() bool {
	for i := range c.points {
		p := &c.points[i]
		if !p.InOriginalPosition() {
			return false
		}
		if !p.InOriginalOrientation() && !p.IsCenter() {
			return false
		}
	}
	return true
}

// Unsolvedness sums every point's incorrectness score. Zero for a solved
// cube; used as the objective of the randomized solver. Unlike IsSolved,
// the score does not exempt face centers from the orientation penalty, so a
// cube can report IsSolved with a positive Unsolvedness.
func (c *Cube) Unsolvedness() int {
	total := 0
	for i := range c.points {
		total += c.points[i].Incorrectness()
	}
	return total
}

// Shuffle scrambles the cube with the given number of random rotations. The
// rotations are not recorded.
func (c *Cube) Shuffle(times int) {
	for i := 0; i < times; i++ {
		c.Rotate(randomRotation(c.rng, c.dims))
	}
}

// Clone creates a deep copy of the cube. The clone shares the original's
// random source.
func (c *Cube) Clone() *Cube {
	points := make([]Point, len(c.points))
	for i := range c.points {
		points[i] = Point{
			original:    c.points[i].OriginalCoords(),
			coords:      c.points[i].Coords(),
			orientation: c.points[i].Orientation(),
		}
	}
	return &Cube{dims: c.dims, points: points, rng: c.rng}
}

// Point returns the point at linear index i for inspection. The returned
// pointer stays valid for the cube's lifetime; all its exported methods are
// read-only.
func (c *Cube) Point(i int) *Point {
	return &c.points[i]
}

// PointState is a read-only snapshot of one point, for rendering.
type PointState struct {
	Coords      []int
	Orientation []int
	Original    []int
}

// InOriginalPosition reports whether the snapshot's coordinates match its
// original coordinates.
func (s PointState) InOriginalPosition() bool {
	for i, c := range s.Coords {
		if c != s.Original[i] {
			return false
		}
	}
	return true
}

// InOriginalOrientation reports whether the snapshot's orientation is the
// identity permutation.
func (s PointState) InOriginalOrientation() bool {
	for i := 1; i < len(s.Orientation); i++ {
		if s.Orientation[i-1] > s.Orientation[i] {
			return false
		}
	}
	return true
}

// Points returns a snapshot of every point's state. The snapshot is a deep
// copy; mutating it does not affect the cube.
func (c *Cube) Points() []PointState {
	out := make([]PointState, len(c.points))
	for i := range c.points {
		out[i] = PointState{
			Coords:      c.points[i].Coords(),
			Orientation: c.points[i].Orientation(),
			Original:    c.points[i].OriginalCoords(),
		}
	}
	return out
}

// String returns an uncolored multi-line dump of the cube state: one line
// per point plus the solved flag and unsolvedness.
func (c *Cube) String() string {
	var b strings.Builder
	for i := range c.points {
		p := &c.points[i]
		fmt.Fprintf(&b, "coords %v orientation %v original %v\n",
			p.coords, p.orientation, p.original)
	}
	fmt.Fprintf(&b, "solved: %v\n", c.IsSolved())
	fmt.Fprintf(&b, "unsolvedness: %d\n", c.Unsolvedness())
	return b.String()
}
