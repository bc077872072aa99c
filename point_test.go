package ndcube

import (
	"reflect"
	"testing"
)

func TestPointFromIndex_RoundTrip(t *testing.T) {
	for _, dims := range []int{3, 4} {
		size := pow3(dims)
		for i := 0; i < size; i++ {
			p := pointFromIndex(i, dims)
			if got := indexOf(p.coords); got != i {
				t.Fatalf("dims=%d: indexOf(pointFromIndex(%d)) = %d", dims, i, got)
			}
		}
	}
}

func TestPointFromIndex_Digits(t *testing.T) {
	// 14 = 2*1 + 1*3 + 1*9 -> coords (2, 1, 1)
	p := pointFromIndex(14, 3)
	if !reflect.DeepEqual(p.coords, []int{2, 1, 1}) {
		t.Errorf("pointFromIndex(14) coords = %v, want [2 1 1]", p.coords)
	}
	if !reflect.DeepEqual(p.orientation, []int{0, 1, 2}) {
		t.Errorf("new point orientation = %v, want identity", p.orientation)
	}
	if !p.InOriginalPosition() || !p.InOriginalOrientation() {
		t.Error("new point should be in original position and orientation")
	}
}

// TestPositionTable pins every entry of the position-update rule. Solver
// convergence and the solved test are defined against these exact values.
func TestPositionTable(t *testing.T) {
	cases := []struct {
		from, to     int
		wantF, wantT int
	}{
		{0, 0, 2, 0},
		{0, 1, 1, 0},
		{0, 2, 0, 0},
		{1, 0, 2, 1},
		{1, 1, 1, 1},
		{1, 2, 0, 1},
		{2, 0, 2, 2},
		{2, 1, 1, 2},
		{2, 2, 0, 2},
	}
	r := Rotation{Axis: 2, From: 0, To: 1, Side: Front}
	for _, tc := range cases {
		p := newPoint([]int{tc.from, tc.to, 0})
		p.rotate(r)
		if p.coords[0] != tc.wantF || p.coords[1] != tc.wantT {
			t.Errorf("(%d,%d) rotated to (%d,%d), want (%d,%d)",
				tc.from, tc.to, p.coords[0], p.coords[1], tc.wantF, tc.wantT)
		}
		if p.coords[2] != 0 {
			t.Errorf("(%d,%d): rotation axis coordinate changed to %d", tc.from, tc.to, p.coords[2])
		}
	}
}

func TestRotate_SkipsOtherSlices(t *testing.T) {
	r := Rotation{Axis: 2, From: 0, To: 1, Side: Back}
	for _, axisVal := range []int{0, 1} {
		p := newPoint([]int{0, 2, axisVal})
		p.rotate(r)
		if !p.InOriginalPosition() || !p.InOriginalOrientation() {
			t.Errorf("point with axis coordinate %d should be untouched by a back-slice turn", axisVal)
		}
	}
}

func TestRotate_OrientationTransposition(t *testing.T) {
	r := Rotation{Axis: 2, From: 0, To: 1, Side: Front}
	p := newPoint([]int{0, 0, 0})

	p.rotate(r)
	if !reflect.DeepEqual(p.orientation, []int{1, 0, 2}) {
		t.Errorf("orientation after one turn = %v, want [1 0 2]", p.orientation)
	}

	// The swap is a transposition: a second turn restores the orientation
	// regardless of what happens to the position.
	p.rotate(r)
	if !p.InOriginalOrientation() {
		t.Errorf("orientation after two turns = %v, want identity", p.orientation)
	}
}

func TestIsCenter(t *testing.T) {
	cases := []struct {
		coords []int
		want   bool
	}{
		{[]int{1, 1, 0}, true},
		{[]int{1, 1, 2}, true},
		{[]int{0, 1, 1}, true},
		{[]int{1, 1, 1}, false}, // core, not a face center
		{[]int{0, 0, 1}, false},
		{[]int{0, 2, 2}, false},
	}
	for _, tc := range cases {
		p := newPoint(append([]int(nil), tc.coords...))
		if got := p.IsCenter(); got != tc.want {
			t.Errorf("IsCenter(%v) = %v, want %v", tc.coords, got, tc.want)
		}
	}
}

func TestDistFromOriginal(t *testing.T) {
	p := newPoint([]int{0, 1, 2})
	if d := p.DistFromOriginal(); d != 0 {
		t.Errorf("solved point dist = %d, want 0", d)
	}
	p.coords[0] = 2
	p.coords[2] = 0
	if d := p.DistFromOriginal(); d != 4 {
		t.Errorf("dist = %d, want 4", d)
	}
}

func TestIncorrectness_OrientationPenalty(t *testing.T) {
	p := newPoint([]int{0, 1, 2})
	if got := p.Incorrectness(); got != 0 {
		t.Errorf("solved point incorrectness = %d, want 0", got)
	}

	p.coords[0] = 1
	if got := p.Incorrectness(); got != 1 {
		t.Errorf("displaced point incorrectness = %d, want 1", got)
	}

	// An orientation mismatch weighs ten times a single-axis displacement.
	p.orientation[0], p.orientation[1] = p.orientation[1], p.orientation[0]
	if got := p.Incorrectness(); got != 11 {
		t.Errorf("displaced+twisted point incorrectness = %d, want 11", got)
	}
}

func TestSnapshotAccessors_ReturnCopies(t *testing.T) {
	p := newPoint([]int{0, 1, 2})
	c := p.Coords()
	c[0] = 9
	if p.coords[0] == 9 {
		t.Error("Coords() should return a copy")
	}
	o := p.Orientation()
	o[0] = 9
	if p.orientation[0] == 9 {
		t.Error("Orientation() should return a copy")
	}
	g := p.OriginalCoords()
	g[0] = 9
	if p.original[0] == 9 {
		t.Error("OriginalCoords() should return a copy")
	}
}
