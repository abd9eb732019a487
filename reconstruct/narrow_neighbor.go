package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// NarrowNeighbor inverts predictor.NarrowNeighbor: row 0 comes straight
// from SideData, and every later row is the floor-mean of
// already-reconstructed {2*above, above-left, above-right} plus that
// pixel's residual.
func NarrowNeighbor(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.NarrowNeighborSide)
	if !ok {
		return nil, sideTypeError(predictor.KindNarrowNeighbor, side)
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
		get := cubeGetter(out, band, r, cols)
		for row := 1; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted := stencil.NarrowNeighbor(get, row, col)
				out.Set(band, row, col, cube.Sample(cube.Residual(predicted)+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
