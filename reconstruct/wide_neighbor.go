package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// WideNeighbor inverts predictor.WideNeighbor. Pixel (b,0,0) has no
// neighbors under this stencil, so it is seeded from SideData; every
// other pixel is the floor-mean of its already-reconstructed neighbors
// among {above, left, above-left, above-right} plus that pixel's
// residual.
func WideNeighbor(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.WideNeighborSide)
	if !ok {
		return nil, sideTypeError(predictor.KindWideNeighbor, side)
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
		out.Set(band, 0, 0, s.Values[band])
		get := cubeGetter(out, band, r, cols)
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				if row == 0 && col == 0 {
					continue
				}
				predicted := stencil.WideNeighbor(get, row, col)
				out.Set(band, row, col, cube.Sample(cube.Residual(predicted)+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
