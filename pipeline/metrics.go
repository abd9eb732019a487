package pipeline

// Metrics reports the measured bit cost of an encoded stream against the
// original cube's raw bit-length, generalizing the cost-estimation idiom
// used to pick among competing predictors: instead of estimating an
// unseen encoding's cost, it measures the actual encoded length of one
// already produced by CompressAndReconstruct.
type Metrics struct {
	Predictor    string
	OriginalBits int
	DirectBits   int
	RLEBits      int
	DirectRatio  float64
	RLERatio     float64
}

// sampleBits is the bit width original pixels are assumed to occupy when
// reporting the uncompressed baseline.
const sampleBits = 32

// Measure computes Metrics from a completed run's artifacts.
func Measure(a *Artifacts) Metrics {
	n := a.Original.B * a.Original.R * a.Original.C
	originalBits := n * sampleBits
	directBits := a.Direct.Bits.Len
	rleBits := a.RLE.Bits.Len

	m := Metrics{
		Predictor:    a.Kind.String(),
		OriginalBits: originalBits,
		DirectBits:   directBits,
		RLEBits:      rleBits,
	}
	if directBits > 0 {
		m.DirectRatio = float64(originalBits) / float64(directBits)
	}
	if rleBits > 0 {
		m.RLERatio = float64(originalBits) / float64(rleBits)
	}
	return m
}
