// Package cli implements the command-line interface for ndcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cag-dev/ndcube"
)

const version = "0.1.0"

var (
	// Global flags
	dims    int
	seed    int64
	verbose bool

	// Env-derived defaults, filled in before flag registration.
	defaults Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "ndcube",
	Short: "The N-dimensional cube",
	Long: `ndcube - an N-dimensional Rubik's-style twisty puzzle.

Rotations are entered as four digits (like 1202), where
  - the first digit is the axis to rotate around
  - the second digit is the axis to rotate from
  - the third digit is the axis to rotate to
  - the fourth digit is the side to rotate (either 0 or 2)

For example, to rotate the top face of a 3-D cube clockwise we rotate
around the Y axis (1), from the Z axis (2), to the X axis (0), on the
face further along the Y axis (2): the command is 1202.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	var err error
	defaults, err = loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		defaults = Config{Dims: 3, Shuffle: 100}
	}

	rootCmd.PersistentFlags().IntVar(&dims, "dims", defaults.Dims, "Number of puzzle dimensions (minimum 3)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Seed, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newCube builds a cube from the global flags.
func newCube() (*ndcube.Cube, error) {
	var opts []ndcube.Option
	if seed != 0 {
		opts = append(opts, ndcube.WithSeed(seed))
	}
	return ndcube.New(dims, opts...)
}
