package reconstruct_test

import (
	"testing"

	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/hypercube/reconstruct"
	"github.com/mewkiz/hypercube/residual"
)

func mustCube(t *testing.T, flat []cube.Sample, b, r, c int) *cube.Cube {
	t.Helper()
	cb, err := cube.FromFlat(b, r, c, flat)
	if err != nil {
		t.Fatal(err)
	}
	return cb
}

func roundTrip(t *testing.T, kind predictor.Kind, c *cube.Cube) {
	t.Helper()
	result, err := predictor.Predict(kind, c, predictor.Options{})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	rc, err := residual.Compute(c, result.Predicted, kind)
	if err != nil {
		t.Fatalf("residual: %v", err)
	}
	got, err := reconstruct.Reconstruct(kind, rc, result.Side)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if !got.Equal(c) {
		t.Fatalf("%s round trip: got %v, want %v", kind, got.Flatten(), c.Flatten())
	}
}

func TestRoundTripAllPredictors(t *testing.T) {
	c := mustCube(t, []cube.Sample{10, 12, 14, 11, 20, 21, 22, 23, 30, 29, 28, 27}, 3, 2, 2)
	for _, kind := range predictor.Kinds {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			roundTrip(t, kind, c)
		})
	}
}

func TestRoundTripSingleBand(t *testing.T) {
	c := mustCube(t, []cube.Sample{1, 2, 3, 4}, 1, 2, 2)
	for _, kind := range predictor.Kinds {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			roundTrip(t, kind, c)
		})
	}
}

func TestRoundTripSingleColumn(t *testing.T) {
	c := mustCube(t, []cube.Sample{5, 9, 2, 2}, 2, 2, 1)
	for _, kind := range predictor.Kinds {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			roundTrip(t, kind, c)
		})
	}
}

func TestColumnOrientedInversionScenario(t *testing.T) {
	c := mustCube(t, []cube.Sample{1, 2, 40, 80}, 1, 2, 2)
	result, err := predictor.Predict(predictor.KindColumnOriented, c, predictor.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc, err := residual.Compute(c, result.Predicted, predictor.KindColumnOriented)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := int64(rc.At(0, 1, 0)), int64(36); got != want {
		t.Fatalf("residual(0,1,0) = %d, want %d", got, want)
	}
	if got, want := int64(rc.At(0, 1, 1)), int64(72); got != want {
		t.Fatalf("residual(0,1,1) = %d, want %d", got, want)
	}
	got, err := reconstruct.Reconstruct(predictor.KindColumnOriented, rc, result.Side)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c) {
		t.Fatalf("column_oriented reconstruction = %v, want %v", got.Flatten(), c.Flatten())
	}
}

func TestReconstructSideTypeMismatch(t *testing.T) {
	c := mustCube(t, []cube.Sample{1, 2, 3, 4}, 1, 2, 2)
	result, err := predictor.Predict(predictor.KindFirstPixel, c, predictor.Options{})
	if err != nil {
		t.Fatal(err)
	}
	rc, err := residual.Compute(c, result.Predicted, predictor.KindFirstPixel)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reconstruct.Reconstruct(predictor.KindPreviousPixel, rc, result.Side); err == nil {
		t.Fatal("expected SideData type mismatch error")
	}
}
