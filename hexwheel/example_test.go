package hexwheel_test

import (
	"fmt"

	"github.com/j-dobrzanski/Slitherlink/hexwheel"
	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// ExampleGenerate reconstructs a two-layer wheel and prints the layer-2 apex
// of the first wedge.
func ExampleGenerate() {
	pts, err := hexwheel.Generate(24)
	if err != nil {
		fmt.Println(err)
		return
	}
	idx, _ := hexwheel.SlotIndex(2, hexwheel.Slot{Layer: 2, Wedge: 0, Offset: 0})
	fmt.Println(len(pts), idx, pts[idx])
	// Output: 24 6 (0, 2)
}

// ExampleApply positions a puzzle whose file carried no coordinates.
func ExampleApply() {
	p := puzzle.New(6, 0, 0)
	if err := hexwheel.Apply(p); err != nil {
		fmt.Println(err)
		return
	}
	v, _ := p.Vertex(0)
	fmt.Println(p.Placed(), v.Pos)
	// Output: true (0, 1)
}

func ExampleLayers() {
	_, err := hexwheel.Layers(37)
	fmt.Println(err)
	// Output: Layers: V=37: hexwheel: vertex count is not 6·k²
}
