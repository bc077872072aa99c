package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scrambleCount int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube and show its state",
	Long:  `Apply a number of random rotations to a solved cube and display the result.`,
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleCount, "count", 0, "Number of random rotations (default from NDCUBE_SHUFFLE)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}

	count := scrambleCount
	if count <= 0 {
		count = defaults.Shuffle
	}
	c.Shuffle(count)

	if verbose {
		fmt.Printf("applied %d random rotations\n", count)
	}
	fmt.Print(renderState(c))
	return nil
}
