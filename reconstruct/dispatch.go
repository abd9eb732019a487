package reconstruct

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// Reconstruct runs the reconstructor matching kind over a residual cube
// and the SideData its predictor retained.
func Reconstruct(kind predictor.Kind, rc *residual.Cube, side predictor.SideData) (*cube.Cube, error) {
	switch kind {
	case predictor.KindPreviousPixel:
		return PreviousPixel(rc, side)
	case predictor.KindFirstPixel:
		return FirstPixel(rc, side)
	case predictor.KindFixedValue:
		return FixedValue(rc, side)
	case predictor.KindMedianEdgeDetector:
		return MedianEdgeDetector(rc, side)
	case predictor.KindWideNeighbor:
		return WideNeighbor(rc, side)
	case predictor.KindNarrowNeighbor:
		return NarrowNeighbor(rc, side)
	case predictor.KindColumnOriented:
		return ColumnOriented(rc, side)
	case predictor.KindInterBand:
		return InterBand(rc, side)
	default:
		return nil, errutil.Err(xerr.UnknownPredictor(kind.String()))
	}
}
