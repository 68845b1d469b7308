package soitin

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type shapeKind int

const (
	shapeConstant shapeKind = iota
	shapeLinear
	shapeExponential
	shapeHann
	shapeFadeIn
	shapeFadeOut
)

// Shape is an immutable curve descriptor parsed from a human-readable
// string. The grammar is
//
//	[duration ":"] curve
//
// where duration is in seconds and curve is a bare number (constant), "lin
// a b" (linear ramp), "exp a b [c]" (exponential ramp, optionally with
// curvature c) or one of the named presets "hann", "fadein" and "fadeout".
// The duration prefix matters when the shape is used as an envelope
// segment: attack, tail and release segments render over their own
// duration, while a sustain shape spans whatever remains of the requested
// length.
type Shape struct {
	text      string
	duration  float64 // seconds; 0 when the descriptor has no prefix
	kind      shapeKind
	from, to  float64
	curvature float64
	curved    bool
}

// ParseShape parses a shape descriptor. Unrecognized grammar and
// out-of-domain parameters fail with *ParseError.
func ParseShape(text string) (*Shape, error) {
	s := &Shape{text: text}
	curve := text
	if before, after, found := strings.Cut(text, ":"); found {
		d, err := strconv.ParseFloat(strings.TrimSpace(before), 64)
		if err != nil {
			return nil, &ParseError{Input: text, Detail: "duration prefix is not a number"}
		}
		if d <= 0 {
			return nil, &ParseError{Input: text, Detail: "duration must be > 0"}
		}
		s.duration = d
		curve = after
	}
	fields := strings.Fields(curve)
	if len(fields) == 0 {
		return nil, &ParseError{Input: text, Detail: "empty curve"}
	}
	if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
		if len(fields) > 1 {
			return nil, &ParseError{Input: text, Detail: "constant takes no arguments"}
		}
		s.kind = shapeConstant
		s.from, s.to = v, v
		return s, nil
	}
	switch fields[0] {
	case "lin":
		if err := s.parseEndpoints(text, fields[1:], 2); err != nil {
			return nil, err
		}
		s.kind = shapeLinear
	case "exp":
		if len(fields) == 4 {
			if err := s.parseEndpoints(text, fields[1:3], 2); err != nil {
				return nil, err
			}
			c, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, &ParseError{Input: text, Detail: "curvature is not a number"}
			}
			if c == 0 {
				return nil, &ParseError{Input: text, Detail: "curvature must be nonzero"}
			}
			s.curvature, s.curved = c, true
		} else {
			if err := s.parseEndpoints(text, fields[1:], 2); err != nil {
				return nil, err
			}
			if s.from <= 0 || s.to <= 0 {
				return nil, &ParseError{Input: text, Detail: "exp endpoints must be > 0 unless a curvature is given"}
			}
		}
		s.kind = shapeExponential
	case "hann", "fadein", "fadeout":
		if len(fields) > 1 {
			return nil, &ParseError{Input: text, Detail: fmt.Sprintf("%s takes no arguments", fields[0])}
		}
		switch fields[0] {
		case "hann":
			s.kind = shapeHann
		case "fadein":
			s.kind = shapeFadeIn
		case "fadeout":
			s.kind = shapeFadeOut
		}
	default:
		return nil, &ParseError{Input: text, Detail: fmt.Sprintf("unknown curve %q", fields[0])}
	}
	return s, nil
}

func (s *Shape) parseEndpoints(text string, fields []string, want int) error {
	if len(fields) != want {
		return &ParseError{Input: text, Detail: fmt.Sprintf("expected %d endpoints, got %d", want, len(fields))}
	}
	var err error
	if s.from, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return &ParseError{Input: text, Detail: "endpoint is not a number"}
	}
	if s.to, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return &ParseError{Input: text, Detail: "endpoint is not a number"}
	}
	return nil
}

// Duration returns the implied duration of the shape in seconds, or 0 when
// the descriptor carried no duration prefix.
func (s *Shape) Duration() float64 {
	return s.duration
}

// String returns the descriptor text the shape was parsed from.
func (s *Shape) String() string {
	return s.text
}

// Render evaluates the curve over exactly n samples. It is pure and
// deterministic; Render(0) returns an empty slice. The curve parameter t
// runs 0..1 inclusive over the n samples.
func (s *Shape) Render(n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	step := 0.0
	if n > 1 {
		step = 1 / float64(n-1)
	}
	for i := range out {
		out[i] = s.at(float64(i) * step)
	}
	return out
}

func (s *Shape) at(t float64) float64 {
	switch s.kind {
	case shapeConstant:
		return s.from
	case shapeLinear:
		return s.from + (s.to-s.from)*t
	case shapeExponential:
		if s.curved {
			return s.from + (s.to-s.from)*math.Expm1(s.curvature*t)/math.Expm1(s.curvature)
		}
		return s.from * math.Pow(s.to/s.from, t)
	case shapeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*t)
	case shapeFadeIn:
		return 0.5 - 0.5*math.Cos(math.Pi*t)
	case shapeFadeOut:
		return 0.5 + 0.5*math.Cos(math.Pi*t)
	}
	return 0
}
