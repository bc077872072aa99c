package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cag-dev/ndcube"
)

var rotateScramble int

var rotateCmd = &cobra.Command{
	Use:   "rotate <rotations>",
	Short: "Apply rotations to a cube and show the result",
	Long: `Apply one or more rotations to a cube and display the resulting state.

Rotations use the four-digit notation (axis, from, to, side) and may be
comma separated or given as separate arguments:

  ndcube rotate 1202
  ndcube rotate 1202,0120 2012

Use --scramble to randomize the cube before the rotations are applied.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().IntVar(&rotateScramble, "scramble", 0, "Random rotations to apply first")
}

func runRotate(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}

	// Validate all input before touching the cube.
	rots, err := ndcube.ParseRotations(strings.Join(args, ","), c.Dims())
	if err != nil {
		return err
	}

	if rotateScramble > 0 {
		c.Shuffle(rotateScramble)
	}
	for _, r := range rots {
		c.Rotate(r)
	}

	if verbose {
		fmt.Printf("applied %s\n", ndcube.FormatRotations(rots))
	}
	fmt.Print(renderState(c))
	return nil
}
