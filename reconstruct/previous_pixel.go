package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// PreviousPixel inverts predictor.PreviousPixel: column 0 comes straight
// from SideData, and every later column is its reconstructed left
// neighbor plus the stored residual.
func PreviousPixel(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.PreviousPixelSide)
	if !ok {
		return nil, sideTypeError(predictor.KindPreviousPixel, side)
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
		for row := 0; row < r; row++ {
			out.Set(band, row, 0, s.FirstColumn[band][row])
			for col := 1; col < cols; col++ {
				predicted := out.At(band, row, col-1)
				out.Set(band, row, col, cube.Sample(cube.Residual(predicted)+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
