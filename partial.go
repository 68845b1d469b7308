package soitin

import (
	"math"

	"github.com/viterin/vek"
)

// Partial is one harmonic line of a composite tone: a frequency ratio
// against the played pitch, a log-scale amplitude weight, an oscillator
// kind, an envelope and optional AM/FM modulations and a waveshape. A
// Partial is owned by its Variation and immutable once built, so a single
// Partial may serve any number of concurrent renders.
type Partial struct {
	Ratio  float64
	Weight float64
	Osc    OscillatorKind
	Env    *Envelope
	AM     *Modulation
	FM     *Modulation
	WS     *Waveshaper
}

// NewPartial assembles a single partial from an oscillator kind name and
// raw descriptor strings, the ad hoc path that bypasses Instrument and
// Variation. Empty strings mean the piece is absent; a partial without any
// envelope shape gets a constant unity amplitude over the requested
// length. Ratio and weight are fixed at 1.
func NewPartial(oscillator, attack, sustain, tail, release, am, fm, ws string) (*Partial, error) {
	kind, err := ParseOscillator(oscillator)
	if err != nil {
		return nil, err
	}
	p := &Partial{Ratio: 1, Weight: 1, Osc: kind}
	if attack != "" || sustain != "" || tail != "" || release != "" {
		if p.Env, err = ParseEnvelope(attack, sustain, tail, release); err != nil {
			return nil, err
		}
	}
	if am != "" {
		if p.AM, err = ParseModulation(am); err != nil {
			return nil, err
		}
	}
	if fm != "" {
		if p.FM, err = ParseModulation(fm); err != nil {
			return nil, err
		}
	}
	if ws != "" {
		if p.WS, err = ParseWaveshaper(ws); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Render evaluates the partial's contribution to a tone at the given pitch
// and stress over length seconds. The amplitude curve is the envelope
// scaled by stress and the linearized weight, times the AM curve if
// present; the waveform is the oscillator evaluated over the possibly
// FM-perturbed frequency sequence. When the envelope's release extends the
// amplitude curve beyond the requested length the waveform keeps
// oscillating under it; when the curve is shorter, the remainder is
// silence. The result length is the longer of the two.
func (p *Partial) Render(pitch, stress, length float64) ([]float64, error) {
	if pitch <= 0 {
		return nil, &InvalidDurationError{What: "pitch", Value: pitch}
	}
	if length <= 0 {
		return nil, &InvalidDurationError{What: "length", Value: length}
	}
	base := p.Ratio * pitch
	seed := renderSeed(pitch, stress, length)

	var amplitude []float64
	if p.Env != nil {
		var err error
		if amplitude, err = p.Env.Render(length); err != nil {
			return nil, err
		}
	} else {
		amplitude = vek.Ones(sampleCount(length))
	}
	vek.MulNumber_Inplace(amplitude, stress*LogToLinear(p.Weight))
	if p.AM != nil {
		vek.Mul_Inplace(amplitude, p.AM.Curve(len(amplitude), base, seed))
	}

	n := len(amplitude)
	if total := sampleCount(length); n < total {
		n = total
	}
	var freqs []float64
	if p.FM != nil {
		freqs = p.FM.Offsets(n, base, seed)
		vek.AddNumber_Inplace(freqs, base)
	} else {
		freqs = make([]float64, n)
		for i := range freqs {
			freqs[i] = base
		}
	}
	wave := p.Osc.Evaluate(freqs, 0, seed)
	if p.WS != nil {
		p.WS.Apply(wave)
	}

	vek.Mul_Inplace(wave[:len(amplitude)], amplitude)
	for i := len(amplitude); i < len(wave); i++ {
		wave[i] = 0
	}
	return wave, nil
}

// renderSeed derives the noise generator seed deterministically from the
// render inputs, so that identical calls reproduce identical output.
func renderSeed(pitch, stress, length float64) uint32 {
	seed := uint32(16007)
	for _, v := range [...]float64{pitch, stress, length} {
		bits := math.Float64bits(v)
		seed = seed*16007 ^ uint32(bits) ^ uint32(bits>>32)
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}
