package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/pkg/errutil"
)

// FirstPixel predicts every pixel of a band from that band's (0,0)
// pixel: P[b,r,c] = I[b,0,0].
func FirstPixel(c *cube.Cube) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	values := make([]cube.Sample, b)
	for band := 0; band < b; band++ {
		v := c.At(band, 0, 0)
		values[band] = v
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, v)
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           FirstPixelSide{Values: values},
		Kind:           KindFirstPixel,
		KeyDescription: "first pixel of each band",
	}, nil
}
