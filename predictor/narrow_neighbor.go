package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/pkg/errutil"
)

// NarrowNeighbor predicts row 0 as itself (so its residual is zero and
// the row is carried verbatim in SideData) and predicts every other
// row as the floor-mean of {2*above, above-left, above-right}.
func NarrowNeighbor(c *cube.Cube) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	firstRow := make([][]cube.Sample, b)
	for band := 0; band < b; band++ {
		firstRow[band] = make([]cube.Sample, cols)
		for col := 0; col < cols; col++ {
			firstRow[band][col] = c.At(band, 0, col)
			predicted.Set(band, 0, col, c.At(band, 0, col))
		}
		get := bandGetter(c, band, r, cols)
		for row := 1; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, cube.Sample(stencil.NarrowNeighbor(get, row, col)))
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           NarrowNeighborSide{FirstRow: firstRow},
		Kind:           KindNarrowNeighbor,
		KeyDescription: "first row of each band",
	}, nil
}
