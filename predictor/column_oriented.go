package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/pkg/errutil"
)

// ColumnOriented predicts row 0 as zero (so the forward residual at row
// 0 equals the original row verbatim; the reconstructor ignores it and
// restores row 0 from SideData instead) and predicts every other row
// as four times the pixel directly above it: P[b,r,c] = 4*I[b,r-1,c].
//
// The x4 factor matches a single-element mean computed by the source
// study; it is kept verbatim even though it makes this predictor worse
// than previous_pixel on smooth data.
func ColumnOriented(c *cube.Cube) (*Result, error) {
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
		}
		for row := 1; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, cube.Sample(4*int64(c.At(band, row-1, col))))
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           ColumnOrientedSide{FirstRow: firstRow},
		Kind:           KindColumnOriented,
		KeyDescription: "first row of each band",
	}, nil
}
