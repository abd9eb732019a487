package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/pkg/errutil"
)

// FixedValue inverts predictor.FixedValue: every pixel of a band is the
// band's constant from SideData plus that pixel's residual.
func FixedValue(rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	s, ok := side.(predictor.FixedValueSide)
	if !ok {
		return nil, sideTypeError(predictor.KindFixedValue, side)
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
		k := cube.Residual(s.Values[band])
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				out.Set(band, row, col, cube.Sample(k+rc.At(band, row, col)))
			}
		}
	}
	return out, nil
}
