package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitString is a packed, MSB-first sequence of bits: the wire form of a
// concatenation of Huffman codes. Len reports the number of meaningful
// bits; the backing byte slice is padded with zero bits up to the next
// byte boundary.
type BitString struct {
	Bytes []byte
	Len   int
}

// writeCodes packs a sequence of "0"/"1" code strings into a BitString.
func writeCodes(codes []string) BitString {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	n := 0
	for _, code := range codes {
		for _, ch := range code {
			w.TryWriteBool(ch == '1')
			n++
		}
	}
	w.Close()
	return BitString{Bytes: buf.Bytes(), Len: n}
}

// reader returns a closure yielding the BitString's bits in order, MSB
// first, reporting ok=false once Len bits have been consumed.
func (bs BitString) reader() func() (byte, bool) {
	r := bitio.NewReader(bytes.NewReader(bs.Bytes))
	remaining := bs.Len
	return func() (byte, bool) {
		if remaining == 0 {
			return 0, false
		}
		bit, err := r.ReadBool()
		if err != nil {
			return 0, false
		}
		remaining--
		if bit {
			return 1, true
		}
		return 0, true
	}
}
