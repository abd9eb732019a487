package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// FixedValue predicts every pixel of a band from a single constant K_b:
// P[b,r,c] = K_b. When override is nil, K_b is the integer-truncated
// mean of band b; otherwise override supplies K_b per band.
func FixedValue(c *cube.Cube, override []cube.Sample) (*Result, error) {
	b, r, cols, err := checkShape(c)
	if err != nil {
		return nil, errutil.Err(err)
	}
	if override != nil && len(override) != b {
		return nil, errutil.Err(xerr.Shape("predictor.FixedValue: override has %d bands, want %d", len(override), b))
	}

	predicted, err := cube.New(b, r, cols)
	if err != nil {
		return nil, errutil.Err(err)
	}
	values := make([]cube.Sample, b)
	for band := 0; band < b; band++ {
		var k cube.Sample
		if override != nil {
			k = override[band]
		} else {
			k = bandMean(c, band)
		}
		values[band] = k
		for row := 0; row < r; row++ {
			for col := 0; col < cols; col++ {
				predicted.Set(band, row, col, k)
			}
		}
	}

	return &Result{
		Predicted:      predicted,
		Side:           FixedValueSide{Values: values},
		Kind:           KindFixedValue,
		KeyDescription: "fixed value for each band",
	}, nil
}

// bandMean returns the integer-truncated mean of a band's pixels.
func bandMean(c *cube.Cube, band int) cube.Sample {
	var sum int64
	pixels := c.Band(band)
	for _, v := range pixels {
		sum += int64(v)
	}
	return cube.Sample(sum / int64(len(pixels)))
}
