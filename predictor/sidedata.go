package predictor

import "github.com/mewkiz/hypercube/cube"

// SideData is the minimal verbatim slice of the original cube each
// predictor retains to seed its reconstructor. Each predictor has its
// own concrete SideData type, so the shape is fixed at compile time
// instead of being inferred at runtime from a predictor name.
type SideData interface {
	isSideData()
}

// PreviousPixelSide holds the first column of every band, shape (B, R).
type PreviousPixelSide struct {
	FirstColumn [][]cube.Sample
}

func (PreviousPixelSide) isSideData() {}

// FirstPixelSide holds pixel (b,0,0) of every band, shape (B,).
type FirstPixelSide struct {
	Values []cube.Sample
}

func (FirstPixelSide) isSideData() {}

// FixedValueSide holds the chosen constant of every band, shape (B,).
type FixedValueSide struct {
	Values []cube.Sample
}

func (FixedValueSide) isSideData() {}

// MedianEdgeSide holds pixel (b,0,0) of every band, shape (B,).
type MedianEdgeSide struct {
	Values []cube.Sample
}

func (MedianEdgeSide) isSideData() {}

// WideNeighborSide holds pixel (b,0,0) of every band, shape (B,).
type WideNeighborSide struct {
	Values []cube.Sample
}

func (WideNeighborSide) isSideData() {}

// NarrowNeighborSide holds the first row of every band, shape (B, C).
type NarrowNeighborSide struct {
	FirstRow [][]cube.Sample
}

func (NarrowNeighborSide) isSideData() {}

// ColumnOrientedSide holds the first row of every band, shape (B, C).
type ColumnOrientedSide struct {
	FirstRow [][]cube.Sample
}

func (ColumnOrientedSide) isSideData() {}

// InterBandSide holds the entire first band, shape (R, C).
type InterBandSide struct {
	Band0 [][]cube.Sample
}

func (InterBandSide) isSideData() {}
