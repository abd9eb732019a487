package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// FirstPixel inverts predictor.FirstPixel: every pixel of a band is the
// band's seed value from SideData plus that pixel's residual.
func FirstPixel(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.FirstPixelSide)
	if !ok {
		return nil, sideTypeError(predictor.KindFirstPixel, side)
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
		seed := cube.Residual(s.Values[band])
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				out.Set(band, row, col, cube.Sample(seed+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
