package ndcube

import (
	"github.com/google/uuid"
)

// SolveStats summarizes one solver run.
type SolveStats struct {
	Kept      int // moves accepted and retained
	Undone    int // moves rejected and undone
	WorseKept int // worsening moves that were kept anyway
	Final     int // unsolvedness when the run ended
}

// SolveResult reports the outcome of a solver run.
type SolveResult struct {
	RunID  string     // ephemeral label for this run
	Moves  []Rotation // retained rotations, in application order
	Steps  int        // iterations performed
	Solved bool
	Stats  SolveStats
}

// Solve runs a randomized local search until the cube is solved: each
// iteration applies a random rotation and rolls a percentile. A move that
// worsens the unsolvedness is kept only on a roll of 90 or above; a move
// that does not worsen it is undone on a roll below 10 and kept otherwise.
// The asymmetry lets the walk escape local minima while still descending on
// average.
//
// The search is unbounded by default and mutates the cube in place; pass
// WithMaxSteps to guarantee termination. On hitting the bound, Solve returns
// ErrStepLimit together with the partial result (the cube keeps whatever
// state the walk reached).
func (c *Cube) Solve(opts ...SolveOption) (*SolveResult, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	res := &SolveResult{RunID: uuid.NewString()}

	for !c.IsSolved() {
		if cfg.maxSteps > 0 && res.Steps >= cfg.maxSteps {
			res.Stats.Final = c.Unsolvedness()
			return res, ErrStepLimit
		}
		res.Steps++

		last := c.Unsolvedness()
		r := randomRotation(c.rng, c.dims)
		c.Rotate(r)
		res.Moves = append(res.Moves, r)

		v := c.rng.Intn(100)
		current := c.Unsolvedness()
		switch {
		case current > last && v < 90:
			c.Undo(r)
			res.Moves = res.Moves[:len(res.Moves)-1]
			res.Stats.Undone++
		case current > last:
			res.Stats.Kept++
			res.Stats.WorseKept++
		case v < 10:
			c.Undo(r)
			res.Moves = res.Moves[:len(res.Moves)-1]
			res.Stats.Undone++
		default:
			res.Stats.Kept++
		}

		if cfg.progress != nil {
			cfg.progress(res.Steps, c.Unsolvedness())
		}
	}

	// A solved cube can still score positive: centers off their original
	// orientation pay the orientation penalty but do not block IsSolved.
	res.Solved = true
	res.Stats.Final = c.Unsolvedness()
	return res, nil
}
