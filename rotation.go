package ndcube

import (
	"fmt"
	"math/rand"
	"strings"
)

// MinDims is the smallest dimension for which a rotation triple of three
// pairwise-distinct axes exists.
const MinDims = 3

// Side selects which slice along the rotation axis a turn affects. The value
// doubles as the coordinate value of the affected slice.
type Side int

const (
	Front Side = 0 // slice at coordinate 0
	Back  Side = 2 // slice at coordinate 2
)

func (s Side) String() string {
	switch s {
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// SideFromValue decodes a raw integer into a Side. Only 0 and 2 are valid
// slice values.
func SideFromValue(v int) (Side, error) {
	switch v {
	case 0:
		return Front, nil
	case 2:
		return Back, nil
	default:
		return 0, &RotationError{Side: v, Reason: "side must be 0 or 2"}
	}
}

// Rotation describes one quarter-turn: hold Axis fixed, permute coordinate
// values between From and To, on the slice selected by Side.
type Rotation struct {
	Axis int  // dimension held fixed
	From int  // dimension rotated from
	To   int  // dimension rotated to
	Side Side // which slice along Axis is affected
}

// NewRotation builds a rotation from four raw integers as supplied by an
// external caller and validates it against the cube dimension. side must be
// 0 (front) or 2 (back).
func NewRotation(axis, from, to, side, dims int) (Rotation, error) {
	s, err := SideFromValue(side)
	if err != nil {
		return Rotation{}, err
	}
	r := Rotation{Axis: axis, From: from, To: to, Side: s}
	if err := r.Validate(dims); err != nil {
		return Rotation{}, err
	}
	return r, nil
}

// Validate checks the rotation invariants: axis, from, and to pairwise
// distinct, all in [0, dims), and a valid side.
func (r Rotation) Validate(dims int) error {
	raw := &RotationError{Axis: r.Axis, From: r.From, To: r.To, Side: int(r.Side)}
	switch {
	case r.Side != Front && r.Side != Back:
		raw.Reason = "side must be 0 or 2"
	case r.Axis < 0 || r.Axis >= dims:
		raw.Reason = fmt.Sprintf("axis out of range [0,%d)", dims)
	case r.From < 0 || r.From >= dims:
		raw.Reason = fmt.Sprintf("from axis out of range [0,%d)", dims)
	case r.To < 0 || r.To >= dims:
		raw.Reason = fmt.Sprintf("to axis out of range [0,%d)", dims)
	case r.Axis == r.From || r.Axis == r.To || r.From == r.To:
		raw.Reason = "axis, from, and to must be pairwise distinct"
	default:
		return nil
	}
	return raw
}

// Notation returns the four-digit form of the rotation: axis, from, to, side.
// Example: "1202" holds axis 1, rotates from axis 2 to axis 0, on the back
// slice. The digit form covers dimensions up to 10.
func (r Rotation) Notation() string {
	return fmt.Sprintf("%d%d%d%d", r.Axis, r.From, r.To, int(r.Side))
}

// String returns the notation string (alias for Notation).
func (r Rotation) String() string {
	return r.Notation()
}

// ParseRotation parses a four-digit rotation string such as "1202".
// Returns ErrMalformedRotation (wrapped) if the string is not four digits,
// the side digit is not 0 or 2, or the axis triple is invalid for dims.
func ParseRotation(s string, dims int) (Rotation, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return Rotation{}, &RotationError{Reason: fmt.Sprintf("want four digits, got %q", s)}
	}
	var parts [4]int
	for i, c := range s {
		if c < '0' || c > '9' {
			return Rotation{}, &RotationError{Reason: fmt.Sprintf("non-digit %q in %q", c, s)}
		}
		parts[i] = int(c - '0')
	}
	return NewRotation(parts[0], parts[1], parts[2], parts[3], dims)
}

// ParseRotations parses a comma-separated sequence of rotations.
// Example: "1202,0120". Any malformed element fails the whole parse.
func ParseRotations(s string, dims int) ([]Rotation, error) {
	parts := strings.Split(s, ",")
	rots := make([]Rotation, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseRotation(part, dims)
		if err != nil {
			return nil, err
		}
		rots = append(rots, r)
	}
	return rots, nil
}

// FormatRotations formats a slice of rotations as a comma-separated notation
// string.
func FormatRotations(rots []Rotation) string {
	parts := make([]string, len(rots))
	for i, r := range rots {
		parts[i] = r.Notation()
	}
	return strings.Join(parts, ",")
}

// randomRotation draws a uniformly random valid rotation: side is a coin
// flip, axis is uniform, from and to are resampled until distinct from axis
// and each other. Requires dims >= MinDims or the resampling cannot finish.
func randomRotation(rng *rand.Rand, dims int) Rotation {
	side := Front
	if rng.Intn(2) == 1 {
		side = Back
	}
	axis := rng.Intn(dims)
	from := rng.Intn(dims)
	for from == axis {
		from = rng.Intn(dims)
	}
	to := rng.Intn(dims)
	for to == axis || to == from {
		to = rng.Intn(dims)
	}
	return Rotation{Axis: axis, From: from, To: to, Side: side}
}
