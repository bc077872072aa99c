package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cag-dev/ndcube"
)

var (
	solveShuffle  int
	solveMaxSteps int
	solveQuiet    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and run the randomized solver",
	Long: `Scramble a cube and run the randomized local-search solver until the
cube is solved or the step limit is reached.

Each iteration prints the cube's unsolvedness after that iteration's
accept-or-undo decision; pass --quiet to suppress the stream and only
print the run summary.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveShuffle, "shuffle", 0, "Random rotations to scramble with (default from NDCUBE_SHUFFLE)")
	solveCmd.Flags().IntVar(&solveMaxSteps, "max-steps", 0, "Solver iteration limit (0 = unbounded)")
	solveCmd.Flags().BoolVar(&solveQuiet, "quiet", false, "Suppress the per-iteration score stream")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}

	shuffle := solveShuffle
	if shuffle <= 0 {
		shuffle = defaults.Shuffle
	}
	c.Shuffle(shuffle)
	fmt.Printf("scrambled with %d rotations, unsolvedness %d\n", shuffle, c.Unsolvedness())

	opts := []ndcube.SolveOption{ndcube.WithMaxSteps(solveMaxSteps)}
	if !solveQuiet {
		opts = append(opts, ndcube.WithProgress(func(step, unsolvedness int) {
			fmt.Println(unsolvedness)
		}))
	}

	res, err := c.Solve(opts...)
	printSolveSummary(res)
	if errors.Is(err, ndcube.ErrStepLimit) {
		return fmt.Errorf("step limit reached after %d iterations (unsolvedness %d)",
			res.Steps, res.Stats.Final)
	}
	return err
}

func printSolveSummary(res *ndcube.SolveResult) {
	if res.Solved {
		fmt.Println(goodStyle.Render(fmt.Sprintf("solved in %d rotations.", len(res.Moves))))
	} else {
		fmt.Println(badStyle.Render("not solved."))
	}
	if verbose {
		fmt.Printf("run %s: %d iterations, %d kept (%d worsening), %d undone\n",
			res.RunID, res.Steps, res.Stats.Kept, res.Stats.WorseKept, res.Stats.Undone)
	}
}
