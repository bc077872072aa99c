// ndcube - interactive N-dimensional twisty puzzle.
package main

import (
	"github.com/cag-dev/ndcube/internal/cli"
)

func main() {
	cli.Execute()
}
