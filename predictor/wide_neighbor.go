package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/pkg/errutil"
)

// WideNeighbor predicts (r,c) as the floor-mean of the existing
// neighbors among {above, left, above-left, above-right}.
func WideNeighbor(c *cube.Cube) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	values := make([]cube.Sample, b)
	for band := 0; band < b; band++ {
		values[band] = c.At(band, 0, 0)
		get := bandGetter(c, band, r, cols)
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, cube.Sample(stencil.WideNeighbor(get, row, col)))
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           WideNeighborSide{Values: values},
		Kind:           KindWideNeighbor,
		KeyDescription: "pixel (b,0,0) of each band",
	}, nil
}
