// Package pipeline orchestrates the full predict -> residualize ->
// encode -> decode -> reconstruct path for a single predictor, and
// reports compression metrics over the result.
package pipeline

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/huffman"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/residual"
)

// Artifacts bags every intermediate buffer a pipeline run produces, so
// tests and reporting can inspect each stage without rerunning it.
type Artifacts struct {
	Original      *cube.Cube
	Predicted     *cube.Cube
	Side          predictor.SideData
	Kind          predictor.Kind
	Residual      *residual.Cube
	Direct        *huffman.Encoded
	RLE           *huffman.RLEEncoded
	DecodedDirect []int64
	DecodedRLE    []int64
	Reconstructed *cube.Cube
}
