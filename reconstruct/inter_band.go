package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// InterBand inverts predictor.InterBand: band 0 comes straight from
// SideData (residual.Compute already dropped it), and every later band
// is its already-reconstructed predecessor plus that band's residual,
// where residual band index b-1 corresponds to output band b.
func InterBand(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.InterBandSide)
	if !ok {
		return nil, sideTypeError(predictor.KindInterBand, side)
	}
	if rc.R <= 0 || rc.C <= 0 {
		return nil, errutil.Err(xerr.Shape("reconstruct: non-positive residual shape (%d,%d,%d)", rc.B, rc.R, rc.C))
	}
	b := rc.B + 1
	out, err := cube.New(b, rc.R, rc.C)
	if err != nil {
		return nil, errutil.Err(err)
	}
	for row := 0; row < rc.R; row++ {
		for col := 0; col < rc.C; col++ {
			out.Set(0, row, col, s.Band0[row][col])
		}
	}
	for band := 1; band < b; band++ {
		for row := 0; row < rc.R; row++ {
			for col := 0; col < rc.C; col++ {
				predicted := cube.Residual(out.At(band-1, row, col))
				out.Set(band, row, col, cube.Sample(predicted+rc.At(band-1, row, col)))
			}
		}
	}
	return out, nil
}
