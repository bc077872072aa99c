package ndcube

import "math/rand"

// Option configures a Cube at construction.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func defaultConfig() *config {
	return &config{}
}

// WithRand sets the cube's random source. The cube draws every random
// rotation (shuffling and solving) and every solver acceptance roll from
// this single source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed seeds a fresh random source for the cube. Use for reproducible
// shuffles and solver runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// SolveOption configures one call to Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	maxSteps int
	progress func(step, unsolvedness int)
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{}
}

// WithMaxSteps bounds the number of solver iterations. Zero (the default)
// means unbounded, matching the original search. When the bound is hit,
// Solve returns ErrStepLimit along with the partial result.
func WithMaxSteps(n int) SolveOption {
	return func(c *solveConfig) {
		c.maxSteps = n
	}
}

// WithProgress sets a callback invoked once per solver iteration with the
// iteration number and the unsolvedness after that iteration's
// accept-or-undo decision.
func WithProgress(fn func(step, unsolvedness int)) SolveOption {
	return func(c *solveConfig) {
		c.progress = fn
	}
}
