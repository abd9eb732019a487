package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/pkg/errutil"
)

// MedianEdgeDetector predicts (r,c) as the median of the existing
// neighbors among {above, left, above-left}, falling back to the
// original pixel at (0,0) where no neighbor exists.
func MedianEdgeDetector(c *cube.Cube) (*Result, error) {
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
				if row == 0 && col == 0 {
					predicted.Set(band, row, col, values[band])
					continue
				}
				predicted.Set(band, row, col, cube.Sample(stencil.MedianEdgeDetector(get, row, col)))
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           MedianEdgeSide{Values: values},
		Kind:           KindMedianEdgeDetector,
		KeyDescription: "pixel (b,0,0) of each band",
	}, nil
}

// bandGetter adapts a band of the cube to a stencil.Getter, reporting
// ok=false outside [0,r)x[0,cols).
func bandGetter(c *cube.Cube, band, r, cols int) stencil.Getter {
	return func(row, col int) (int64, bool) {
		if row < 0 || row >= r || col < 0 || col >= cols {
			return 0, false
		}
		return int64(c.At(band, row, col)), true
	}
}
