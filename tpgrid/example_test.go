// File: tpgrid/example_test.go
package tpgrid_test

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/statclass/tpgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: centered grid
////////////////////////////////////////////////////////////////////////////////

// ExampleNewPerDim builds a centered 2×3 grid and prints its rows in canonical
// order: the first axis varies slowest, the last fastest.
func ExampleNewPerDim() {
	g, err := tpgrid.NewPerDim([]int{2, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g)
	for _, row := range g.Points().Rows2D() {
		fmt.Printf("(%.4f, %.4f)\n", row[0], row[1])
	}

	// Output:
	// Grid(dim=2, levels=[2 3], n_total=6)
	// (0.2500, 0.1667)
	// (0.2500, 0.5000)
	// (0.2500, 0.8333)
	// (0.7500, 0.1667)
	// (0.7500, 0.5000)
	// (0.7500, 0.8333)
}

////////////////////////////////////////////////////////////////////////////////
// Example: closed axis and prefixes
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_GenSamples shows the full, empty and prefix requests on a
// closed (endpoint-inclusive) 1-D grid.
func ExampleGrid_GenSamples() {
	g, err := tpgrid.NewUniform(3, 1,
		tpgrid.WithCentered(false),
		tpgrid.WithEndpoint(true),
		tpgrid.WithLogger(logr.Discard()),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.GenSamples(tpgrid.All, true).RawData())
	fmt.Println(g.GenSamples(0, true).Dims())
	fmt.Println(g.GenSamples(2, true).RawData())

	// Output:
	// [0 0.5 1]
	// 0 1
	// [0 0.5]
}

// ExampleNew_errors shows that configuration problems surface as ErrConfig.
func ExampleNew_errors() {
	_, err := tpgrid.New(tpgrid.Uniform(4))
	fmt.Println(err)

	_, err = tpgrid.New(tpgrid.PerDim(2, 2), tpgrid.WithDimension(3))
	fmt.Println(err)

	// Output:
	// tpgrid: invalid configuration: dimension required
	// tpgrid: invalid configuration: dimension does not match number of levels: dimension=3, len(levels)=2
}
