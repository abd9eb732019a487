// Package reconstruct rebuilds an original cube from a residual cube and
// the SideData a predictor retained, mirroring each predictor in
// package predictor with its numeric inverse. Reconstructors walk cells
// in the same order the matching predictor used, always reading
// already-reconstructed pixels rather than the (unavailable) original.
package reconstruct

import (
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// bandShape returns the residual cube's band, row and col extents and
// wraps a ShapeError if any of them is non-positive.
func bandShape(rc *residual.Cube) (b, r, cols int, err error) {
	if rc.B <= 0 || rc.R <= 0 || rc.C <= 0 {
		return 0, 0, 0, errutil.Err(xerr.Shape("reconstruct: non-positive residual shape (%d,%d,%d)", rc.B, rc.R, rc.C))
	}
	return rc.B, rc.R, rc.C, nil
}

func sideTypeError(kind predictor.Kind, side predictor.SideData) error {
	return errutil.Err(xerr.State("reconstruct: %s requires matching SideData, got %T", kind, side))
}
