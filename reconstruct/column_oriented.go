package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// ColumnOriented inverts predictor.ColumnOriented: row 0 comes straight
// from SideData, and every later row is four times its
// already-reconstructed predecessor plus that pixel's residual. The x4
// factor must match the predictor's exactly or the inversion drifts.
func ColumnOriented(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.ColumnOrientedSide)
	if !ok {
		return nil, sideTypeError(predictor.KindColumnOriented, side)
	}
	b, r, cols, err := bandShape(rc)
	if err != nil {
		return nil, err
	}
	out, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	for band := 0; band < b; band++ {
		for col := 0; col < cols; col++ {
			out.Set(band, 0, col, s.FirstRow[band][col])
		}
		for row := 1; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted := 4 * cube.Residual(out.At(band, row-1, col))
				out.Set(band, row, col, cube.Sample(predicted+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
