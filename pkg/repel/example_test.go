package repel_test

import (
	"fmt"

	"github.com/matzehuels/labelrepel/pkg/force"
	"github.com/matzehuels/labelrepel/pkg/geom"
	"github.com/matzehuels/labelrepel/pkg/repel"
)

func ExampleRun() {
	boxes := []geom.Box{
		{X1: 0, Y1: 0, X2: 2, Y2: 1},
		{X1: 4, Y1: 0, X2: 6, Y2: 1},
	}
	opts := repel.DefaultOptions()
	opts.Anchors = []geom.Point{{X: 1, Y: -1}, {X: 5, Y: -1}}
	opts.Jitter = force.NoJitter{}

	bounds := geom.Interval{Min: -10, Max: 10}
	res, err := repel.Run(boxes, bounds, bounds, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s after %d iteration(s)\n", res.State, res.Iterations)
	for i := range res.X {
		fmt.Printf("%.2f %.2f\n", res.X[i], res.Y[i])
	}
	// Output:
	// converged after 1 iteration(s)
	// 1.00 0.50
	// 5.00 0.50
}
