package soitin

import "fmt"

// ParseError reports a malformed shape or modulation descriptor. It is
// only ever returned at construction time; render-time code works on
// already parsed descriptors and never re-parses text.
type ParseError struct {
	Input  string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Detail)
}

// UnknownOscillatorError reports an oscillator kind name outside the fixed
// enumerated set. Names are matched case-sensitively.
type UnknownOscillatorError struct {
	Name string
}

func (e *UnknownOscillatorError) Error() string {
	return fmt.Sprintf("unknown oscillator kind %q", e.Name)
}

// InvalidDurationError reports a non-positive length or pitch where a
// positive one is required.
type InvalidDurationError struct {
	What  string
	Value float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("%s must be > 0, got %v", e.What, e.Value)
}

// StructuralError reports a definition tree that cannot be assembled into
// a renderable structure, e.g. an envelope with none of its four shapes.
// Assembly aborts on the first structural error; partially built
// instruments are never exposed to render calls.
type StructuralError struct {
	Detail string
}

func (e *StructuralError) Error() string {
	return e.Detail
}
