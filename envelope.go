package soitin

import "fmt"

// Envelope composes up to four shape segments into one amplitude curve.
// Attack, tail and release render over their own descriptor durations;
// sustain spans whatever remains of the requested length. The release
// (and tail) samples extend the curve beyond the requested length, which
// is why a rendered partial may ring longer than the length the caller
// asked for.
type Envelope struct {
	attack  *Shape
	sustain *Shape
	tail    *Shape
	release *Shape
}

// NewEnvelope builds an envelope from already parsed shapes; nil segments
// are absent. At least one of attack and sustain must be present, and
// every present segment except sustain must carry a duration prefix, or
// the result would have no defined extent.
func NewEnvelope(attack, sustain, tail, release *Shape) (*Envelope, error) {
	if attack == nil && sustain == nil {
		return nil, &StructuralError{Detail: "envelope needs at least an attack or a sustain shape"}
	}
	for _, seg := range []struct {
		name  string
		shape *Shape
	}{{"attack", attack}, {"tail", tail}, {"release", release}} {
		if seg.shape != nil && seg.shape.Duration() == 0 {
			return nil, &StructuralError{Detail: fmt.Sprintf("%s shape %q needs a duration prefix", seg.name, seg.shape)}
		}
	}
	return &Envelope{attack: attack, sustain: sustain, tail: tail, release: release}, nil
}

// ParseEnvelope parses up to four shape descriptors and assembles them.
// Empty strings mean the segment is absent.
func ParseEnvelope(attack, sustain, tail, release string) (*Envelope, error) {
	var shapes [4]*Shape
	for i, text := range [...]string{attack, sustain, tail, release} {
		if text == "" {
			continue
		}
		s, err := ParseShape(text)
		if err != nil {
			return nil, err
		}
		shapes[i] = s
	}
	return NewEnvelope(shapes[0], shapes[1], shapes[2], shapes[3])
}

// Render evaluates the amplitude curve for a tone of the given length in
// seconds. The attack occupies its own duration, clamped so it never
// overflows the requested length; the sustain fills the remainder; tail
// and release are appended after the requested length, so the returned
// curve may be longer than round(length*SampleRate) samples.
func (e *Envelope) Render(length float64) ([]float64, error) {
	if length <= 0 {
		return nil, &InvalidDurationError{What: "length", Value: length}
	}
	total := sampleCount(length)
	curve := make([]float64, 0, total)
	remaining := total
	if e.attack != nil {
		n := sampleCount(e.attack.Duration())
		if n > remaining {
			n = remaining
		}
		curve = append(curve, e.attack.Render(n)...)
		remaining -= n
	}
	if e.sustain != nil {
		curve = append(curve, e.sustain.Render(remaining)...)
	}
	if e.tail != nil {
		curve = append(curve, e.tail.Render(sampleCount(e.tail.Duration()))...)
	}
	if e.release != nil {
		curve = append(curve, e.release.Render(sampleCount(e.release.Duration()))...)
	}
	return curve, nil
}
