package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

// PreviousPixel predicts every pixel but the first column of a row from
// its left neighbor: P[b,r,c] = I[b,r,c-1] for c>=1.
//
// Column 0 is left at its zero-valued default; the forward residual at
// column 0 therefore equals the original pixel verbatim. This is
// redundant with SideData (which separately stores column 0) but not
// incorrect: the reconstructor restores column 0 from SideData and
// never looks at residual[b,r,0]. In a single-column cube every pixel
// is in SideData, so column 0 is predicted as itself and the residual
// is all zeros.
func PreviousPixel(c *cube.Cube) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	firstColumn := make([][]cube.Sample, b)
	for band := 0; band < b; band++ {
		firstColumn[band] = make([]cube.Sample, r)
		for row := 0; row < r; row++ {
			firstColumn[band][row] = c.At(band, row, 0)
			if cols == 1 {
				predicted.Set(band, row, 0, c.At(band, row, 0))
			}
			for col := 1; col < cols; col++ {
				predicted.Set(band, row, col, c.At(band, row, col-1))
			}
		}
	}
	dbg.Println("previous_pixel: first column side data:", firstColumn)

	return &Result{
		Predicted:      predicted,
		Side:           PreviousPixelSide{FirstColumn: firstColumn},
		Kind:           KindPreviousPixel,
		KeyDescription: "first column of each band",
	}, nil
}
