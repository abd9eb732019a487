package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/pkg/errutil"
)

// InterBand predicts every band but the first from its predecessor:
// P[b,:,:] = I[b-1,:,:] for b>=1. Band 0 is carried in SideData and
// dropped from the residual by package residual.
func InterBand(c *cube.Cube) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	band0 := make([][]cube.Sample, r)
	for row := 0; row < r; row++ {
		band0[row] = make([]cube.Sample, cols)
		for col := 0; col < cols; col++ {
			band0[row][col] = c.At(0, row, col)
			predicted.Set(0, row, col, c.At(0, row, col))
		}
	}
	for band := 1; band < b; band++ {
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, c.At(band-1, row, col))
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           InterBandSide{Band0: band0},
		Kind:           KindInterBand,
		KeyDescription: "first band",
	}, nil
}
