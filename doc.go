// Package ndcube models an N-dimensional analogue of a Rubik's-style twisty
// puzzle: the 3^N grid points of {0,1,2}^N, each carrying a position and an
// orientation, subject to quarter-turn face rotations.
//
// # Quick Start
//
// Create a solved cube, scramble it, and turn a face:
//
//	cube, err := ndcube.New(3, ndcube.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.Shuffle(20)
//
//	r, err := ndcube.NewRotation(1, 2, 0, 2, cube.Dims())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube.Rotate(r)
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println("Unsolvedness:", cube.Unsolvedness())
//
// # Rotations
//
// A rotation is described by four small integers: the axis held fixed, the
// axis rotated from, the axis rotated to, and the side of the fixed axis that
// is affected (0 for the front slice, 2 for the back slice). The digit
// notation "1202" means: hold axis 1, rotate from axis 2 to axis 0, on the
// back slice. Sequences are comma separated:
//
//	rots, err := ndcube.ParseRotations("1202,0120", cube.Dims())
//
// # Solving
//
// Solve runs a randomized local search that hill-climbs on the cube's
// unsolvedness score, occasionally accepting worsening moves to escape local
// minima:
//
//	res, err := cube.Solve(
//	    ndcube.WithMaxSteps(1_000_000),
//	    ndcube.WithProgress(func(step, unsolvedness int) {
//	        fmt.Println(unsolvedness)
//	    }),
//	)
//	if err == nil {
//	    fmt.Printf("solved in %d rotations\n", len(res.Moves))
//	}
//
// The search is unbounded by default, matching the puzzle's original
// behavior; pass WithMaxSteps to guarantee termination.
package ndcube
