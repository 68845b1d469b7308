package soitin

import (
	"fmt"
	"strconv"
	"strings"
)

// Modulation is a parsed AM or FM definition. The descriptor grammar is
//
//	rate base:mod [shift s] [raw] [wave kind]
//
// where rate is either a frequency in Hz or "x" followed by a multiple of
// the carrier frequency, and base:mod give the constant socket and the
// modulated part of the curve as a share relation. The rendered curve is
//
//	c_i = o * (mod*(w_i+1)/2 + base) / (mod+base)
//
// with w the modulator waveform in [-1,1] and o a baseline-centering
// factor (mod+base)/(2*base) + 0.5, so that the curve swings around unity.
// "raw" disables the centering; "wave" picks a waveform other than sine.
//
// Applied as AM the curve multiplies the final amplitude; applied as FM it
// is turned into per-sample Hz offsets added to the base frequency before
// oscillation.
type Modulation struct {
	text   string
	freq   float64 // absolute rate in Hz; 0 when factor is used
	factor float64 // rate as a multiple of the carrier; 0 when freq is used
	base   float64
	mod    float64
	shift  float64
	center bool
	wave   OscillatorKind
}

// ParseModulation parses a modulation descriptor.
func ParseModulation(text string) (*Modulation, error) {
	m := &Modulation{text: text, center: true, wave: Sine}
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, &ParseError{Input: text, Detail: "expected at least a rate and a base:mod share"}
	}
	rate := fields[0]
	if cut, ok := strings.CutPrefix(rate, "x"); ok {
		f, err := strconv.ParseFloat(cut, 64)
		if err != nil || f <= 0 {
			return nil, &ParseError{Input: text, Detail: "rate factor must be a positive number"}
		}
		m.factor = f
	} else {
		f, err := strconv.ParseFloat(rate, 64)
		if err != nil || f <= 0 {
			return nil, &ParseError{Input: text, Detail: "rate must be a positive frequency in Hz or x<factor>"}
		}
		m.freq = f
	}
	baseStr, modStr, found := strings.Cut(fields[1], ":")
	if !found {
		return nil, &ParseError{Input: text, Detail: "shares must be given as base:mod"}
	}
	var err error
	if m.base, err = strconv.ParseFloat(baseStr, 64); err != nil || m.base <= 0 {
		return nil, &ParseError{Input: text, Detail: "base share must be a positive number"}
	}
	if m.mod, err = strconv.ParseFloat(modStr, 64); err != nil || m.mod < 0 {
		return nil, &ParseError{Input: text, Detail: "mod share must be a non-negative number"}
	}
	for i := 2; i < len(fields); i++ {
		switch fields[i] {
		case "shift":
			i++
			if i >= len(fields) {
				return nil, &ParseError{Input: text, Detail: "shift needs a phase value"}
			}
			if m.shift, err = strconv.ParseFloat(fields[i], 64); err != nil {
				return nil, &ParseError{Input: text, Detail: "shift phase is not a number"}
			}
		case "raw":
			m.center = false
		case "wave":
			i++
			if i >= len(fields) {
				return nil, &ParseError{Input: text, Detail: "wave needs an oscillator kind"}
			}
			kind, err := ParseOscillator(fields[i])
			if err != nil {
				return nil, &ParseError{Input: text, Detail: fmt.Sprintf("unknown modulator wave %q", fields[i])}
			}
			m.wave = kind
		default:
			return nil, &ParseError{Input: text, Detail: fmt.Sprintf("unknown token %q", fields[i])}
		}
	}
	return m, nil
}

// String returns the descriptor text the modulation was parsed from.
func (m *Modulation) String() string {
	return m.text
}

// rateFor resolves the modulation rate in Hz against the carrier.
func (m *Modulation) rateFor(carrier float64) float64 {
	if m.freq != 0 {
		return m.freq
	}
	return m.factor * carrier
}

// Curve renders n samples of the multiplier curve against the given
// carrier frequency. Noise-based modulator waves draw from seed.
func (m *Modulation) Curve(n int, carrier float64, seed uint32) []float64 {
	freqs := make([]float64, n)
	rate := m.rateFor(carrier)
	for i := range freqs {
		freqs[i] = rate
	}
	wave := m.wave.Evaluate(freqs, m.shift, seed)
	o := 1.0
	if m.center {
		o = (m.mod+m.base)/(2*m.base) + 0.5
	}
	for i, w := range wave {
		wave[i] = o * (m.mod*(w+1)/2 + m.base) / (m.mod + m.base)
	}
	return wave
}

// Offsets renders n samples of per-sample frequency offsets in Hz for
// frequency modulation of the given carrier: carrier*(c_i - 1), so that a
// centered curve yields offsets swinging around zero.
func (m *Modulation) Offsets(n int, carrier float64, seed uint32) []float64 {
	curve := m.Curve(n, carrier, seed)
	for i, c := range curve {
		curve[i] = carrier * (c - 1)
	}
	return curve
}
