package soitin

import "math"

// OscillatorKind enumerates the oscillator waveforms. The set is closed;
// dispatch happens in one evaluation function rather than through open
// subclassing.
type OscillatorKind int

const (
	Sine OscillatorKind = iota
	Square
	Sawtooth
	Triangle
	Noise
	Cracks
)

var oscillatorNames = [...]string{"sine", "square", "sawtooth", "triangle", "noise", "cracks"}

// ParseOscillator resolves an oscillator kind name. Names are matched
// exactly against the fixed set, case-sensitively; anything else fails
// with *UnknownOscillatorError.
func ParseOscillator(name string) (OscillatorKind, error) {
	for i, n := range oscillatorNames {
		if n == name {
			return OscillatorKind(i), nil
		}
	}
	return 0, &UnknownOscillatorError{Name: name}
}

func (k OscillatorKind) String() string {
	if k < 0 || int(k) >= len(oscillatorNames) {
		return "???"
	}
	return oscillatorNames[k]
}

// crackDecay is the per-sample decay of a crack burst, a time constant of
// roughly 4 ms at SampleRate.
var crackDecay = math.Exp(-1 / (0.004 * SampleRate))

// Evaluate renders one sample per entry of freqs, accumulating phase so
// that the frequency may vary per sample (frequency modulation) without a
// phase discontinuity: phase_i = phase0 + sum_{k<i} 2*pi*freqs[k]/SampleRate.
// The amplitude is the kind's periodic function of the phase. Noise and
// cracks draw from a multiplicative congruential generator seeded with
// seed, so identical calls reproduce identical output; seed 0 is treated
// as 1.
func (k OscillatorKind) Evaluate(freqs []float64, phase0 float64, seed uint32) []float64 {
	out := make([]float64, len(freqs))
	if seed == 0 {
		seed = 1
	}
	phase := math.Mod(phase0, 2*math.Pi)
	burst := 0.0
	for i, f := range freqs {
		switch k {
		case Sine:
			out[i] = math.Sin(phase)
		case Square:
			if math.Sin(phase) < 0 {
				out[i] = -1
			} else {
				out[i] = 1
			}
		case Sawtooth:
			out[i] = phase/math.Pi - 1
		case Triangle:
			switch p := phase / (2 * math.Pi); {
			case p < 0.25:
				out[i] = 4 * p
			case p < 0.75:
				out[i] = 2 - 4*p
			default:
				out[i] = 4*p - 4
			}
		case Noise:
			seed *= 16007
			out[i] = lcgFloat(seed)
		case Cracks:
			// Crack onsets arrive at an average rate of f per second;
			// each burst rings the sine carrier and decays away.
			seed *= 16007
			if r := (lcgFloat(seed) + 1) / 2; r < f/SampleRate {
				seed *= 16007
				burst = math.Abs(lcgFloat(seed))
			}
			out[i] = burst * math.Sin(phase)
			burst *= crackDecay
		}
		phase += 2 * math.Pi * f / SampleRate
		if phase >= 2*math.Pi {
			phase = math.Mod(phase, 2*math.Pi)
		}
	}
	return out
}

// lcgFloat maps the generator state to a value in (-1, 1].
func lcgFloat(state uint32) float64 {
	return float64(int32(state)) / -2147483648.0
}
