package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/stencil"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// cubeGetter adapts a band of an in-progress reconstructed cube to a
// stencil.Getter, reporting ok=false outside [0,r)x[0,cols).
func cubeGetter(out *cube.Cube, band, r, cols int) stencil.Getter {
	return func(row, col int) (int64, bool) {
		if row < 0 || row >= r || col < 0 || col >= cols {
			return 0, false
		}
		return int64(out.At(band, row, col)), true
	}
}

// MedianEdgeDetector inverts predictor.MedianEdgeDetector: pixel (b,0,0)
// comes from SideData, and every other pixel is the median of its
// already-reconstructed neighbors plus that pixel's residual.
func MedianEdgeDetector(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.MedianEdgeSide)
	if !ok {
		return nil, sideTypeError(predictor.KindMedianEdgeDetector, side)
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
				predicted := stencil.MedianEdgeDetector(get, row, col)
				out.Set(band, row, col, cube.Sample(cube.Residual(predicted)+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
