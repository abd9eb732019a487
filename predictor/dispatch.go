package predictor

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// Options carries the driver knobs §6 of the format exposes through the
// pipeline facade rather than as a CLI requirement.
type Options struct {
	// FixedValueOverride supplies K_b per band for KindFixedValue. When
	// nil, KindFixedValue uses the integer-truncated mean of each band.
	FixedValueOverride []cube.Sample
}

// Predict runs the predictor identified by kind over c.
func Predict(kind Kind, c *cube.Cube, opts Options) (*Result, error) {
	switch kind {
	case KindPreviousPixel:
		return PreviousPixel(c)
	case KindFirstPixel:
		return FirstPixel(c)
	case KindFixedValue:
		return FixedValue(c, opts.FixedValueOverride)
	case KindMedianEdgeDetector:
		return MedianEdgeDetector(c)
	case KindWideNeighbor:
		return WideNeighbor(c)
	case KindNarrowNeighbor:
		return NarrowNeighbor(c)
	case KindColumnOriented:
		return ColumnOriented(c)
	case KindInterBand:
		return InterBand(c)
	default:
		return nil, errutil.Err(xerr.UnknownPredictor(kind.String()))
	}
}
