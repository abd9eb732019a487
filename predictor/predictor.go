// Package predictor implements the eight spatial and spectral
// predictors over a hyperspectral cube. Each predictor is a pure
// function from a Cube to a Result carrying the predicted cube, the
// minimal SideData needed to seed reconstruction, and the predictor's
// Kind for out-of-band agreement with package reconstruct.
package predictor

import (
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

func init() {
	dbg.Debug = false
}

// Kind identifies one of the eight registered predictors.
type Kind int8

// The eight predictors.
const (
	KindPreviousPixel Kind = iota
	KindFirstPixel
	KindFixedValue
	KindMedianEdgeDetector
	KindWideNeighbor
	KindNarrowNeighbor
	KindColumnOriented
	KindInterBand
)

// String returns the canonical predictor name, used as the out-of-band
// identifier the decoder uses to pick a matching reconstructor.
func (k Kind) String() string {
	switch k {
	case KindPreviousPixel:
		return "previous_pixel"
	case KindFirstPixel:
		return "first_pixel"
	case KindFixedValue:
		return "fixed_value"
	case KindMedianEdgeDetector:
		return "median_edge_detector"
	case KindWideNeighbor:
		return "wide_neighbor"
	case KindNarrowNeighbor:
		return "narrow_neighbor"
	case KindColumnOriented:
		return "column_oriented"
	case KindInterBand:
		return "inter_band"
	default:
		return "unknown"
	}
}

// Kinds lists every registered predictor, in the order the sweep driver
// reports them.
var Kinds = []Kind{
	KindPreviousPixel, KindFirstPixel, KindFixedValue, KindMedianEdgeDetector,
	KindWideNeighbor, KindNarrowNeighbor, KindColumnOriented, KindInterBand,
}

// ParseKind looks up a predictor by its canonical name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errutil.Err(xerr.UnknownPredictor(name))
}
