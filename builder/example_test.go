package builder_test

import (
	"fmt"

	"github.com/j-dobrzanski/Slitherlink/builder"
)

// ExampleBuildPuzzle builds a three-layer wheel with a seeded loop and clues.
func ExampleBuildPuzzle() {
	p, err := builder.BuildPuzzle(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.HexWheel(3),
		builder.RandomLoop(),
		builder.Clues(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.NumVertices(), p.NumEdges(), p.NumFaces())
	// Output: 54 72 19
}
