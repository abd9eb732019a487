package huffman

import (
	"github.com/mewkiz/hypercube/rle"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

// Encoded is a Huffman-coded symbol stream together with the tree that
// produced it, sufficient to decode back to the original int64
// sequence.
type Encoded struct {
	Bits BitString
	Tree *Tree
}

// EncodeDirect builds a Huffman tree over seq and encodes seq against
// it with no further transform.
func EncodeDirect(seq []int64) (*Encoded, error) {
	tree, err := Build(seq)
	if err != nil {
		return nil, err
	}
	codes := make([]string, len(seq))
	for i, s := range seq {
		codes[i] = tree.Dict[s]
	}
	dbg.Println("huffman.EncodeDirect: encoded", len(seq), "symbols into", len(codes), "codes")
	return &Encoded{Bits: writeCodes(codes), Tree: tree}, nil
}

// DecodeDirect decodes n symbols out of enc using its tree.
func DecodeDirect(enc *Encoded, n int) ([]int64, error) {
	next := enc.Bits.reader()
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		sym, err := enc.Tree.decodeOne(next)
		if err != nil {
			return nil, errutil.Err(err)
		}
		out[i] = sym
	}
	return out, nil
}

// RLEEncoded is a run-length-split Huffman encoding: the run values and
// run counts are Huffman-coded independently, against independent
// dictionaries, then concatenated into a single bitstream. NumValues
// records where the boundary between the two halves falls.
type RLEEncoded struct {
	Bits      BitString
	ValueTree *Tree
	CountTree *Tree
	NumValues int
}

// EncodeRLE run-length-encodes seq, then Huffman-codes the resulting
// run values and run counts as two independent streams concatenated
// into one bitstring. An empty seq (inter_band on a single-band cube)
// yields an RLEEncoded with NumValues zero and empty dictionaries.
func EncodeRLE(seq []int64) (*RLEEncoded, error) {
	runs := rle.Encode(seq)
	values := rle.Values(runs)
	counts := rle.Counts(runs)

	valueTree, err := Build(values)
	if err != nil {
		return nil, err
	}
	countTree, err := Build(counts)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(values)+len(counts))
	for _, v := range values {
		codes = append(codes, valueTree.Dict[v])
	}
	for _, c := range counts {
		codes = append(codes, countTree.Dict[c])
	}
	dbg.Println("huffman.EncodeRLE: encoded", len(runs), "runs from", len(seq), "symbols")
	return &RLEEncoded{
		Bits:      writeCodes(codes),
		ValueTree: valueTree,
		CountTree: countTree,
		NumValues: len(values),
	}, nil
}

// DecodeRLE decodes enc's values half against ValueTree and counts half
// against CountTree, then zips and expands the runs back into a flat
// symbol sequence.
func DecodeRLE(enc *RLEEncoded) ([]int64, error) {
	next := enc.Bits.reader()

	values := make([]int64, enc.NumValues)
	for i := range values {
		sym, err := enc.ValueTree.decodeOne(next)
		if err != nil {
			return nil, errutil.Err(xerr.Codec("huffman.DecodeRLE: decoding value %d: %v", i, err))
		}
		values[i] = sym
	}

	counts := make([]int64, enc.NumValues)
	for i := range counts {
		sym, err := enc.CountTree.decodeOne(next)
		if err != nil {
			return nil, errutil.Err(xerr.Codec("huffman.DecodeRLE: decoding count %d: %v", i, err))
		}
		counts[i] = sym
	}

	runs := rle.Zip(values, counts)
	return rle.Decode(runs), nil
}
