// Package huffman builds canonical-shape Huffman trees over a stream of
// int64 symbols and encodes/decodes against the resulting prefix code,
// either directly or split into an RLE values/counts pair.
package huffman

import (
	"container/heap"
	"math"

	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
)

func init() {
	dbg.Debug = false
}

// sentinel is the dummy zero-frequency symbol merged against a single
// real symbol to give the degenerate case an internal root, so the real
// symbol still gets a one-bit code instead of the empty string. No
// residual or RLE run-count ever legitimately takes this value.
const sentinel = int64(math.MaxInt64)

// Dict is a Huffman code table: symbol to its bit pattern, stored as an
// MSB-first bit string such as "0" or "101".
type Dict map[int64]string

// Tree is a built Huffman tree together with the code table it implies.
// It is the unit persisted alongside an encoded bitstream so the
// decoder can walk the same shape the encoder used.
type Tree struct {
	root *node
	Dict Dict
}

// countSymbols tallies symbol frequencies while recording the order in
// which each distinct symbol was first seen. Go map iteration order is
// randomized, so first-occurrence order is threaded through explicitly
// to keep tree construction reproducible across runs.
func countSymbols(seq []int64) (freq map[int64]uint64, order []int64) {
	freq = make(map[int64]uint64, len(seq))
	for _, s := range seq {
		if _, ok := freq[s]; !ok {
			order = append(order, s)
		}
		freq[s]++
	}
	return freq, order
}

// Build constructs a Huffman tree over seq. An empty seq yields a tree
// with an empty Dict and no root, the boundary case produced by
// inter_band on a single-band cube, whose residual stream is itself
// empty.
func Build(seq []int64) (*Tree, error) {
	if len(seq) == 0 {
		return &Tree{Dict: make(Dict)}, nil
	}
	freq, order := countSymbols(seq)

	h := make(nodeHeap, 0, len(order)+1)
	for i, s := range order {
		heap.Push(&h, &node{symbol: s, isLeaf: true, freq: freq[s], order: i})
	}
	if len(order) == 1 {
		heap.Push(&h, &node{symbol: sentinel, isLeaf: true, freq: 0, order: len(order)})
	}

	nextOrder := len(order) + 1
	for h.Len() > 1 {
		first := heap.Pop(&h).(*node)
		second := heap.Pop(&h).(*node)
		// The second-popped node carries the higher (or equal)
		// frequency; placing it on the left keeps the degenerate
		// case's real symbol at code "0".
		merged := &node{
			freq:  first.freq + second.freq,
			order: nextOrder,
			left:  second,
			right: first,
		}
		nextOrder++
		heap.Push(&h, merged)
	}
	root := heap.Pop(&h).(*node)

	dict := make(Dict)
	assignCodes(root, "", dict)
	delete(dict, sentinel)
	return &Tree{root: root, Dict: dict}, nil
}

func assignCodes(n *node, prefix string, dict Dict) {
	if n.isLeaf {
		code := prefix
		if code == "" {
			code = "0"
		}
		dict[n.symbol] = code
		return
	}
	assignCodes(n.left, prefix+"0", dict)
	assignCodes(n.right, prefix+"1", dict)
}

// decodeOne walks the tree from its root, consuming bits from next
// until a leaf is reached, and returns the leaf's symbol. The prefix-free
// property of the built code guarantees this walk is unambiguous.
func (t *Tree) decodeOne(next func() (bit byte, ok bool)) (int64, error) {
	if t.root == nil {
		return 0, errutil.Err(xerr.Codec("huffman.decodeOne: tree has no symbols"))
	}
	n := t.root
	for !n.isLeaf {
		bit, ok := next()
		if !ok {
			return 0, errutil.Err(xerr.Codec("huffman.decodeOne: bitstream truncated mid-code"))
		}
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.symbol, nil
}
