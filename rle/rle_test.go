package rle_test

import (
	"reflect"
	"testing"

	"github.com/mewkiz/hypercube/rle"
)

func TestEncodeScenario(t *testing.T) {
	got := rle.Encode([]int64{5, 5, 5, 7, 7, 3})
	want := []rle.Run{{Value: 5, Count: 3}, {Value: 7, Count: 2}, {Value: 3, Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode() = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]int64{
		nil,
		{1},
		{1, 1, 1, 1},
		{5, 5, 5, 7, 7, 3},
		{-2, -2, -2, 0, 0, 9, -2},
	}
	for _, seq := range cases {
		runs := rle.Encode(seq)
		got := rle.Decode(runs)
		if len(got) == 0 && len(seq) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, seq) {
			t.Fatalf("round trip of %v = %v", seq, got)
		}
	}
}

func TestZipInverseOfValuesCounts(t *testing.T) {
	runs := rle.Encode([]int64{5, 5, 5, 7, 7, 3})
	got := rle.Zip(rle.Values(runs), rle.Counts(runs))
	if !reflect.DeepEqual(got, runs) {
		t.Fatalf("Zip(Values,Counts) = %v, want %v", got, runs)
	}
}
