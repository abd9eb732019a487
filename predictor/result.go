package predictor

import "github.com/mewkiz/hypercube/cube"

// Result is the immutable output of a predictor run: the predicted
// cube, the SideData needed to seed reconstruction, and the Kind used
// to look up a matching reconstructor.
type Result struct {
	Predicted      *cube.Cube
	Side           SideData
	Kind           Kind
	KeyDescription string
}
