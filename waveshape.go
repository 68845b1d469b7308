package soitin

// waveshapeTableSize is the resolution of the rendered transfer table;
// lookups interpolate linearly between entries.
const waveshapeTableSize = 2048

// Waveshaper remaps raw oscillator samples through a rendered shape. The
// shape is rendered once at construction into a transfer table over the
// input domain [-1, 1]; the shape's 0..1 output range maps back to the
// amplitude range [-1, 1], so the identity transfer is "lin 0 1".
type Waveshaper struct {
	shape *Shape
	table []float64
}

// NewWaveshaper builds a waveshaper from an already parsed shape.
func NewWaveshaper(shape *Shape) *Waveshaper {
	return &Waveshaper{shape: shape, table: shape.Render(waveshapeTableSize)}
}

// ParseWaveshaper parses a shape descriptor and builds a waveshaper.
func ParseWaveshaper(text string) (*Waveshaper, error) {
	shape, err := ParseShape(text)
	if err != nil {
		return nil, err
	}
	return NewWaveshaper(shape), nil
}

// String returns the descriptor text of the underlying shape.
func (w *Waveshaper) String() string {
	return w.shape.String()
}

// Apply remaps the samples in place. Inputs outside [-1, 1] clamp to the
// table ends.
func (w *Waveshaper) Apply(samples []float64) {
	last := float64(len(w.table) - 1)
	for i, x := range samples {
		u := (x + 1) / 2 * last
		if u <= 0 {
			samples[i] = 2*w.table[0] - 1
			continue
		}
		if u >= last {
			samples[i] = 2*w.table[len(w.table)-1] - 1
			continue
		}
		lo := int(u)
		frac := u - float64(lo)
		v := w.table[lo]*(1-frac) + w.table[lo+1]*frac
		samples[i] = 2*v - 1
	}
}
