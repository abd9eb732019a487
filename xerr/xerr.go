// Package xerr defines the typed error kinds raised by the hypercube
// codec packages, matching the error taxonomy fixed by the format:
// shape mismatches, stage-ordering violations, codec desynchronization
// and unregistered predictors.
package xerr

import "fmt"

// ShapeError reports a cube, residual or decoded-stream extent that does
// not match what the caller expected.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string { return "shape error: " + e.Msg }

// Shape constructs a ShapeError with a formatted message.
func Shape(format string, args ...interface{}) error {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// StateError reports that a pipeline stage ran before its prerequisite.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return "state error: " + e.Msg }

// State constructs a StateError with a formatted message.
func State(format string, args ...interface{}) error {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

// CodecError reports a bitstring that does not terminate cleanly at a
// dictionary code boundary, or a missing dictionary/stream.
type CodecError struct {
	Msg string
}

func (e *CodecError) Error() string { return "codec error: " + e.Msg }

// Codec constructs a CodecError with a formatted message.
func Codec(format string, args ...interface{}) error {
	return &CodecError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownPredictorError reports a reconstruction request naming a
// predictor with no registered reconstructor.
type UnknownPredictorError struct {
	Name string
}

func (e *UnknownPredictorError) Error() string {
	return fmt.Sprintf("unknown predictor: %q", e.Name)
}

// UnknownPredictor constructs an UnknownPredictorError for the given name.
func UnknownPredictor(name string) error {
	return &UnknownPredictorError{Name: name}
}
