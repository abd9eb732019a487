package huffman

// node is a Huffman tree node: either a leaf carrying a symbol, or an
// internal node carrying the combined frequency of its two children.
type node struct {
	symbol int64
	isLeaf bool
	freq   uint64
	order  int // insertion/creation order, used to break frequency ties
	left   *node
	right  *node
}

// nodeHeap is a container/heap min-heap over nodes, ordered by
// frequency and then by creation order so that merges are
// deterministic regardless of Go's randomized map iteration order.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
