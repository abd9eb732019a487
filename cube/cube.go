// Package cube provides the pixel value types and the 3D row-major
// container used throughout hypercube: a Cube is indexed [band][row][col]
// and holds non-negative hyperspectral pixel values.
package cube

import (
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/errutil"
)

// Sample is a single cube pixel value. Hyperspectral pixels are
// non-negative and fit in 32 bits.
type Sample int32

// Residual is a signed difference between an original and a predicted
// Sample. It is twice the width of Sample so that stencils which scale
// neighbors (column_oriented multiplies by 4, narrow_neighbor by 2)
// cannot overflow.
type Residual int64

// Cube is a row-major 3D array of Samples, indexed [band][row][col].
type Cube struct {
	B, R, C int
	data    []Sample
}

// New allocates a zero-valued cube with the given dimensions. It returns
// a ShapeError if any extent is non-positive.
func New(b, r, c int) (*Cube, error) {
	if b <= 0 || r <= 0 || c <= 0 {
		return nil, errutil.Err(xerr.Shape("cube.New: non-positive extent (%d,%d,%d)", b, r, c))
	}
	return &Cube{B: b, R: r, C: c, data: make([]Sample, b*r*c)}, nil
}

// index returns the flat offset of (b,r,c) in row-major band,row,col order.
func (c *Cube) index(b, r, col int) int {
	return (b*c.R+r)*c.C + col
}

// At returns the pixel value at (b,r,col).
func (c *Cube) At(b, r, col int) Sample {
	return c.data[c.index(b, r, col)]
}

// Set assigns the pixel value at (b,r,col).
func (c *Cube) Set(b, r, col int, v Sample) {
	c.data[c.index(b, r, col)] = v
}

// Band returns the row-major flat slice of the given band, sharing
// storage with the cube; mutating it mutates the cube.
func (c *Cube) Band(b int) []Sample {
	start := b * c.R * c.C
	return c.data[start : start+c.R*c.C]
}

// Flatten returns the cube contents flattened in band,row,col order. The
// returned slice shares storage with the cube.
func (c *Cube) Flatten() []Sample {
	return c.data
}

// Shape returns the cube's (band, row, col) extents.
func (c *Cube) Shape() (b, r, col int) {
	return c.B, c.R, c.C
}

// Clone returns a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	out := &Cube{B: c.B, R: c.R, C: c.C, data: make([]Sample, len(c.data))}
	copy(out.data, c.data)
	return out
}

// Equal reports whether two cubes have identical shape and contents.
func (c *Cube) Equal(other *Cube) bool {
	if c.B != other.B || c.R != other.R || c.C != other.C {
		return false
	}
	for i, v := range c.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// FromFlat builds a cube from a pre-flattened band,row,col sequence. It
// returns a ShapeError if the sequence length does not match b*r*c.
func FromFlat(b, r, c int, flat []Sample) (*Cube, error) {
	cb, err := New(b, r, c)
	if err != nil {
		return nil, errutil.Err(err)
	}
	if len(flat) != b*r*c {
		return nil, errutil.Err(xerr.Shape("cube.FromFlat: expected %d samples, got %d", b*r*c, len(flat)))
	}
	copy(cb.data, flat)
	return cb, nil
}
