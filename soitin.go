// Package soitin is an additive sound synthesis engine. An Instrument is a
// declarative, immutable tree of Partials, each describing one harmonic
// line with its own oscillator, envelope and optional modulations; a call
// to RenderTone picks the Partials applicable to a pitch/stress pair,
// renders each one and sums them sample-wise into a Tone. Rendering is
// batch and one-shot: every render has a finite length known up front and
// no shared mutable state, so concurrent renders against one Instrument
// are race-free.
package soitin

import "math"

// SampleRate is the fixed rendering rate in Hz. Every curve and waveform
// in the engine is evaluated at this rate; the PCM encoders assume it too.
const SampleRate = 44100

// BytesPerSample is the sample depth used downstream for PCM encoding.
const BytesPerSample = 2

// Tone is the finished sample buffer of a single render. Samples are raw
// float64 amplitudes; no clipping or normalization is applied, as
// out-of-range values are the encoder's concern.
type Tone []float64

// Seconds returns the duration of the tone at SampleRate.
func (t Tone) Seconds() float64 {
	return float64(len(t)) / SampleRate
}

// LogToLinear converts a log-scale amplitude weight to a linear gain
// factor. A weight of 1 is unity gain; the weight-to-decibel slope is
// fixed at 100 dB per unit, i.e. decibels = (weight-1)*100.
func LogToLinear(weight float64) float64 {
	decibels := (weight - 1) * 100
	return math.Pow(10, decibels/20)
}

// sampleCount converts a duration in seconds to a sample count.
func sampleCount(seconds float64) int {
	return int(math.Round(seconds * SampleRate))
}
