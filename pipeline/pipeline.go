package pipeline

import (
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/huffman"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/reconstruct"
	"github.com/mewkiz/hypercube/residual"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

func init() {
	dbg.Debug = false
}

// CompressAndReconstruct runs the full pipeline over c using the named
// predictor: predict, residualize, Huffman-encode both direct and RLE
// streams, decode both back, and reconstruct. It returns every
// intermediate artifact; the caller should compare Reconstructed against
// c to confirm a lossless round trip.
func CompressAndReconstruct(c *cube.Cube, kind predictor.Kind, opts predictor.Options) (*Artifacts, error) {
	result, err := predictor.Predict(kind, c, opts)
	if err != nil {
		return nil, errutil.Err(err)
	}

	rc, err := residual.Compute(c, result.Predicted, kind)
	if err != nil {
		return nil, errutil.Err(err)
	}

	flat := residualsToInt64(rc.Flatten())
	direct, err := huffman.EncodeDirect(flat)
	if err != nil {
		return nil, errutil.Err(err)
	}
	rle, err := huffman.EncodeRLE(flat)
	if err != nil {
		return nil, errutil.Err(err)
	}

	decodedDirect, err := huffman.DecodeDirect(direct, rc.B*rc.R*rc.C)
	if err != nil {
		return nil, errutil.Err(err)
	}
	decodedRLE, err := huffman.DecodeRLE(rle)
	if err != nil {
		return nil, errutil.Err(err)
	}
	if len(decodedRLE) != rc.B*rc.R*rc.C {
		return nil, errutil.Err(xerr.Shape("pipeline: decoded RLE stream has %d symbols, want %d", len(decodedRLE), rc.B*rc.R*rc.C))
	}

	reshaped, err := residual.FromFlat(rc.B, rc.R, rc.C, int64ToResiduals(decodedDirect))
	if err != nil {
		return nil, errutil.Err(err)
	}

	reconstructed, err := reconstruct.Reconstruct(kind, reshaped, result.Side)
	if err != nil {
		return nil, errutil.Err(err)
	}

	dbg.Println("pipeline: ran", kind, "producing", len(direct.Tree.Dict), "direct symbols")
	return &Artifacts{
		Original:      c,
		Predicted:     result.Predicted,
		Side:          result.Side,
		Kind:          kind,
		Residual:      rc,
		Direct:        direct,
		RLE:           rle,
		DecodedDirect: decodedDirect,
		DecodedRLE:    decodedRLE,
		Reconstructed: reconstructed,
	}, nil
}

// residualsToInt64 widens a residual.Cube's flattened Residuals to the
// plain int64 symbol stream package huffman operates over.
func residualsToInt64(vs []cube.Residual) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}

// int64ToResiduals narrows a decoded int64 symbol stream back to
// Residuals for residual.FromFlat.
func int64ToResiduals(vs []int64) []cube.Residual {
	out := make([]cube.Residual, len(vs))
	for i, v := range vs {
		out[i] = cube.Residual(v)
	}
	return out
}
