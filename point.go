package ndcube

// Point is one grid cell of the puzzle. It carries its current position in
// {0,1,2}^dims, the position it was created at, and an orientation
// permutation recording which logical axis currently occupies each physical
// axis slot.
type Point struct {
	original    []int
	coords      []int
	orientation []int
}

// posTable is the position-update rule for a quarter-turn, keyed by the
// pre-rotation (from, to) coordinate pair and yielding the new pair. It maps
// (f, t) to (2-t, f): corners cycle 00->20->22->02->00, edges cycle
// 10->21->12->01->10, and the middle (1,1) is fixed. The move semantics of
// the whole puzzle are pinned to these exact entries.
var posTable = [3][3][2]int{
	{{2, 0}, {1, 0}, {0, 0}},
	{{2, 1}, {1, 1}, {0, 1}},
	{{2, 2}, {1, 2}, {0, 2}},
}

func newPoint(coords []int) Point {
	original := make([]int, len(coords))
	copy(original, coords)
	orientation := make([]int, len(coords))
	for i := range orientation {
		orientation[i] = i
	}
	return Point{original: original, coords: coords, orientation: orientation}
}

// pointFromIndex decodes a linear index in [0, 3^dims) into a point whose
// coordinates are the base-3 digits of i, least significant digit on axis 0.
func pointFromIndex(i, dims int) Point {
	coords := make([]int, dims)
	for d := 0; d < dims; d++ {
		coords[d] = i % 3
		i /= 3
	}
	return newPoint(coords)
}

// indexOf re-encodes a coordinate vector into its mixed-radix-3 linear
// index. Inverse of pointFromIndex's digit extraction.
func indexOf(coords []int) int {
	idx := 0
	for d := len(coords) - 1; d >= 0; d-- {
		idx = idx*3 + coords[d]
	}
	return idx
}

// rotate applies a quarter-turn to this point. Points outside the affected
// slice are untouched. For points on the slice, the orientation permutation
// gets a (from, to) transposition and the position pair is rewritten through
// posTable; the coordinate on the rotation axis never changes.
func (p *Point) rotate(r Rotation) {
	if p.coords[r.Axis] != int(r.Side) {
		return
	}

	p.orientation[r.From], p.orientation[r.To] = p.orientation[r.To], p.orientation[r.From]

	next := posTable[p.coords[r.From]][p.coords[r.To]]
	p.coords[r.From] = next[0]
	p.coords[r.To] = next[1]
}

// InOriginalPosition reports whether the point sits at the coordinates it
// was created with.
func (p *Point) InOriginalPosition() bool {
	for i, c := range p.coords {
		if c != p.original[i] {
			return false
		}
	}
	return true
}

// InOriginalOrientation reports whether the orientation permutation is the
// identity (ascending order).
func (p *Point) InOriginalOrientation() bool {
	for i := 1; i < len(p.orientation); i++ {
		if p.orientation[i-1] > p.orientation[i] {
			return false
		}
	}
	return true
}

// IsCenter reports whether exactly dims-1 coordinates equal 1, i.e. the
// point is the center of a face family. Orientation is irrelevant to
// solved-ness for centers.
func (p *Point) IsCenter() bool {
	ones := 0
	for _, c := range p.coords {
		if c == 1 {
			ones++
		}
	}
	return ones == len(p.coords)-1
}

// DistFromOriginal returns the L1 distance between the current and original
// coordinates.
func (p *Point) DistFromOriginal() int {
	dist := 0
	for i, c := range p.coords {
		d := c - p.original[i]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	return dist
}

// Incorrectness scores how far this point is from solved: its positional
// displacement plus a flat 10 when the orientation is off. The weighting
// makes the search strongly prefer orientation fixes once position is close.
func (p *Point) Incorrectness() int {
	score := p.DistFromOriginal()
	if !p.InOriginalOrientation() {
		score += 10
	}
	return score
}

// Coords returns a copy of the point's current coordinates.
func (p *Point) Coords() []int {
	out := make([]int, len(p.coords))
	copy(out, p.coords)
	return out
}

// Orientation returns a copy of the point's orientation permutation.
func (p *Point) Orientation() []int {
	out := make([]int, len(p.orientation))
	copy(out, p.orientation)
	return out
}

// OriginalCoords returns a copy of the coordinates the point was created at.
func (p *Point) OriginalCoords() []int {
	out := make([]int, len(p.original))
	copy(out, p.original)
	return out
}
