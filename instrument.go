package soitin

import "github.com/viterin/vek"

// Instrument is a fully built, read-only instrument definition: metadata
// plus the root of the variation tree. Instruments are built once at load
// time (see BuildInstrument and ReadInstrument) and reused immutably
// across any number of renders.
type Instrument struct {
	Name        string
	Description string
	root        *Variation
}

// NewInstrument wraps an already built variation tree.
func NewInstrument(name, description string, root *Variation) (*Instrument, error) {
	if root == nil {
		return nil, &StructuralError{Detail: "instrument has no root variation"}
	}
	return &Instrument{Name: name, Description: description, root: root}, nil
}

// RenderTone renders a single tone at the given pitch in Hz over length
// seconds, with stress scaling every partial's amplitude (1 is the neutral
// stress). The tone is the sample-wise sum of every selected partial,
// zero-padded to the longest partial output, so a release tail of any one
// partial extends the whole tone. No clipping or normalization is applied.
func (ins *Instrument) RenderTone(pitch, length, stress float64) (Tone, error) {
	if pitch <= 0 {
		return nil, &InvalidDurationError{What: "pitch", Value: pitch}
	}
	if length <= 0 {
		return nil, &InvalidDurationError{What: "length", Value: length}
	}
	sum := vek.Zeros(sampleCount(length))
	for _, p := range ins.root.Select(pitch, stress) {
		rendered, err := p.Render(pitch, stress, length)
		if err != nil {
			return nil, err
		}
		if len(rendered) > len(sum) {
			grown := vek.Zeros(len(rendered))
			copy(grown, sum)
			sum = grown
		}
		vek.Add_Inplace(sum[:len(rendered)], rendered)
	}
	return Tone(sum), nil
}
