// ABOUTME: PCM sample synthesis and sample-count derivation
// ABOUTME: Mixes overtone-expanded frequencies into a 16-bit sample buffer
package synth

import (
	"fmt"
	"math"
)

// maxAmplitude is the largest value a sample may reach before quantization.
const maxAmplitude = math.MaxInt16

// OverflowError reports a duration and sample rate whose combined sample
// count cannot be represented in the container's 32-bit size fields.
type OverflowError struct {
	DurationMs uint32
	SampleRate uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("duration of %d ms and sample rate of %d Hz combine to create a file that is too large to store in WAVE format", e.DurationMs, e.SampleRate)
}

// SampleCount returns the number of samples needed to cover durationMs
// milliseconds at sampleRate, rounding any partial sample up. The product is
// computed in 64 bits so the ceiling is exact; an OverflowError is returned
// when the true result exceeds the representable sample count, before any
// narrowing conversion is attempted.
func SampleCount(durationMs, sampleRate uint32) (uint32, error) {
	product := uint64(durationMs) * uint64(sampleRate)
	count := product / 1000
	if product%1000 != 0 {
		count++
	}
	if count > math.MaxUint32 {
		return 0, &OverflowError{DurationMs: durationMs, SampleRate: sampleRate}
	}
	return uint32(count), nil
}

// Frequencies expands each fundamental pitch into its overtone series.
// Overtone o of pitch p has frequency (o+1)*fundamentals[p] and lands at
// index p*(overtones+1)+o, keeping each pitch's series contiguous.
func Frequencies(fundamentals []float64, overtones int) []float64 {
	freqs := make([]float64, 0, len(fundamentals)*(overtones+1))
	for _, fundamental := range fundamentals {
		for o := 0; o <= overtones; o++ {
			freqs = append(freqs, float64(o+1)*fundamental)
		}
	}
	return freqs
}

// Synthesize mixes every frequency into a single amplitude-scaled buffer of
// sampleCount 16-bit samples. Each frequency contributes an equal share of
// the available range, so the mixed sample stays inside int16 bounds for any
// amplitudePercent up to 100. Samples are truncated toward zero on store,
// not rounded. At least one frequency is required; callers validate that
// before synthesis.
func Synthesize(freqs []float64, amplitudePercent float64, sampleCount uint32, shape Shape, sampleRate uint32) []int16 {
	samples := make([]int16, sampleCount)
	scale := amplitudePercent / 100 * maxAmplitude / float64(len(freqs))
	for t := uint32(0); t < sampleCount; t++ {
		var sample float64
		for _, freq := range freqs {
			sample += scale * shape.Value(freq, t, sampleRate)
		}
		samples[t] = int16(sample)
	}
	return samples
}
