// Package residual computes the signed difference between an original
// cube and its predicted cube, handling the inter_band predictor's
// band-0 drop.
package residual

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// Cube is a row-major 3D array of signed Residuals, indexed
// [band][row][col]. For KindInterBand its leading dimension is B-1;
// for every other predictor it equals the original cube's B.
type Cube struct {
	B, R, C int
	data    []cube.Residual
}

func newCube(b, r, c int) *Cube {
	return &Cube{B: b, R: r, C: c, data: make([]cube.Residual, b*r*c)}
}

func (rc *Cube) index(b, r, c int) int { return (b*rc.R+r)*rc.C + c }

// At returns the residual at (b,r,c).
func (rc *Cube) At(b, r, c int) cube.Residual { return rc.data[rc.index(b, r, c)] }

// Set assigns the residual at (b,r,c).
func (rc *Cube) Set(b, r, c int, v cube.Residual) { rc.data[rc.index(b, r, c)] = v }

// Flatten returns the residuals flattened in band,row,col order,
// sharing storage with rc.
func (rc *Cube) Flatten() []cube.Residual { return rc.data }

// FromFlat rebuilds a residual cube from a flattened band,row,col
// sequence. It returns a ShapeError if the sequence length does not
// match b*r*c.
func FromFlat(b, r, c int, flat []cube.Residual) (*Cube, error) {
	if len(flat) != b*r*c {
		return nil, errutil.Err(xerr.Shape("residual.FromFlat: expected %d residuals, got %d", b*r*c, len(flat)))
	}
	rc := newCube(b, r, c)
	copy(rc.data, flat)
	return rc, nil
}

// Compute returns original-minus-predicted in signed arithmetic. For
// KindInterBand, band 0 is dropped from both operands first, so the
// result's leading dimension is B-1 and its top-level shape reflects
// that.
func Compute(original, predicted *cube.Cube, kind predictor.Kind) (*Cube, error) {
	ob, or, oc := original.Shape()
	pb, pr, pc := predicted.Shape()
	if kind == predictor.KindInterBand {
		if ob != pb || or != pr || oc != pc {
			return nil, errutil.Err(xerr.Shape("residual.Compute: shape mismatch original=(%d,%d,%d) predicted=(%d,%d,%d)", ob, or, oc, pb, pr, pc))
		}
		if ob < 1 {
			return nil, errutil.Err(xerr.Shape("residual.Compute: inter_band requires at least one band"))
		}
		rc := newCube(ob-1, or, oc)
		for band := 1; band < ob; band++ {
			for row := 0; row < or; row++ {
				for col := 0; col < oc; col++ {
					rc.Set(band-1, row, col, cube.Residual(original.At(band, row, col))-cube.Residual(predicted.At(band, row, col)))
				}
			}
		}
		return rc, nil
	}

	if ob != pb || or != pr || oc != pc {
		return nil, errutil.Err(xerr.Shape("residual.Compute: shape mismatch original=(%d,%d,%d) predicted=(%d,%d,%d)", ob, or, oc, pb, pr, pc))
	}
	rc := newCube(ob, or, oc)
	for band := 0; band < ob; band++ {
		for row := 0; row < or; row++ {
			for col := 0; col < oc; col++ {
				rc.Set(band, row, col, cube.Residual(original.At(band, row, col))-cube.Residual(predicted.At(band, row, col)))
			}
		}
	}
	return rc, nil
}
