// ABOUTME: Waveform synthesis package documentation
// ABOUTME: Describes shape evaluation and sample generation
// Package synth generates quantized 16-bit PCM sample buffers from a set of
// frequencies and a periodic wave shape.
//
// The package covers three concerns:
//   - Shape: a closed enumeration of periodic wave shapes (sine, square,
//     triangle, sawtooth, point, circle) evaluated at discrete time indices
//   - Frequencies: expansion of fundamental pitches into overtone series
//   - Synthesize: mixing all frequencies into one amplitude-scaled buffer
//
// Example:
//
//	n, err := synth.SampleCount(1000, 44100)
//	samples := synth.Synthesize([]float64{440}, 33.3, n, synth.ShapeSine, 44100)
package synth
