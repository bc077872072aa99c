package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a solved cube's state",
	Long:  `Display the per-point state of a freshly constructed (solved) cube.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}
	fmt.Print(renderState(c))
	return nil
}
