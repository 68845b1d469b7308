package soitin

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// InstrumentDef is the raw, serializable form of an instrument
	// definition, as loaded from a YAML or JSON file. It is a plain data
	// tree of descriptor strings and numbers; BuildInstrument parses and
	// validates it into an immutable Instrument. The def itself performs
	// no parsing, so an InstrumentDef can be freely edited and re-built.
	InstrumentDef struct {
		Name        string       `yaml:"name,omitempty" json:"name,omitempty"`
		Description string       `yaml:"description,omitempty" json:"description,omitempty"`
		Variation   VariationDef `yaml:"variation" json:"variation"`
	}

	// VariationDef is one node of the selection tree: partial definitions
	// of its own plus selector-guarded child nodes.
	VariationDef struct {
		Partials   []PartialDef `yaml:"partials,omitempty" json:"partials,omitempty"`
		Variations []VariantDef `yaml:"variations,omitempty" json:"variations,omitempty"`
	}

	// VariantDef is a child node with its selector ranges. Pitch and
	// stress are inclusive "lo-hi" ranges (or single numbers); at least
	// one of them must be present.
	VariantDef struct {
		Pitch        string `yaml:"pitch,omitempty" json:"pitch,omitempty"`
		Stress       string `yaml:"stress,omitempty" json:"stress,omitempty"`
		VariationDef `yaml:",inline"`
	}

	// PartialDef defines one partial with its descriptor strings. Ratio
	// and Weight default to 1 when omitted; empty descriptor strings mean
	// the piece is absent.
	PartialDef struct {
		Ratio      float64 `yaml:"ratio,omitempty" json:"ratio,omitempty"`
		Weight     float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
		Oscillator string  `yaml:"oscillator" json:"oscillator"`
		Attack     string  `yaml:"attack,omitempty" json:"attack,omitempty"`
		Sustain    string  `yaml:"sustain,omitempty" json:"sustain,omitempty"`
		Tail       string  `yaml:"tail,omitempty" json:"tail,omitempty"`
		Release    string  `yaml:"release,omitempty" json:"release,omitempty"`
		AM         string  `yaml:"am,omitempty" json:"am,omitempty"`
		FM         string  `yaml:"fm,omitempty" json:"fm,omitempty"`
		Waveshape  string  `yaml:"waveshape,omitempty" json:"waveshape,omitempty"`
	}
)

// ReadInstrument parses an instrument definition from bytes, first as JSON
// and then as YAML, and builds it. The build fully completes and validates
// before the instrument is returned; on any error no instrument value
// escapes.
func ReadInstrument(data []byte) (*Instrument, error) {
	var def InstrumentDef
	if errJSON := json.Unmarshal(data, &def); errJSON != nil {
		if errYaml := yaml.Unmarshal(data, &def); errYaml != nil {
			return nil, fmt.Errorf("the instrument could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	return BuildInstrument(def)
}

// BuildInstrument parses every descriptor of the definition tree and
// assembles the immutable Instrument. Construction-time errors (parse
// errors, unknown oscillator kinds, structural conflicts) abort the
// assembly immediately.
func BuildInstrument(def InstrumentDef) (*Instrument, error) {
	root, err := buildVariation(def.Variation)
	if err != nil {
		return nil, err
	}
	return NewInstrument(def.Name, def.Description, root)
}

func buildVariation(def VariationDef) (*Variation, error) {
	partials := make([]*Partial, 0, len(def.Partials))
	for _, pd := range def.Partials {
		p, err := buildPartial(pd)
		if err != nil {
			return nil, err
		}
		partials = append(partials, p)
	}
	var selectors []Selector
	var children []*Variation
	for _, vd := range def.Variations {
		sel, err := buildSelector(vd)
		if err != nil {
			return nil, err
		}
		child, err := buildVariation(vd.VariationDef)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		children = append(children, child)
	}
	return NewVariation(partials, selectors, children)
}

func buildSelector(def VariantDef) (Selector, error) {
	var pitch, stress *Span
	if def.Pitch != "" {
		s, err := ParseSpan(def.Pitch)
		if err != nil {
			return Selector{}, err
		}
		pitch = &s
	}
	if def.Stress != "" {
		s, err := ParseSpan(def.Stress)
		if err != nil {
			return Selector{}, err
		}
		stress = &s
	}
	return NewSelector(pitch, stress)
}

func buildPartial(def PartialDef) (*Partial, error) {
	p, err := NewPartial(def.Oscillator, def.Attack, def.Sustain, def.Tail, def.Release, def.AM, def.FM, def.Waveshape)
	if err != nil {
		return nil, err
	}
	if def.Ratio != 0 {
		p.Ratio = def.Ratio
	}
	if def.Weight != 0 {
		p.Weight = def.Weight
	}
	if p.Ratio < 0 {
		return nil, &StructuralError{Detail: fmt.Sprintf("partial frequency ratio must be positive, got %v", p.Ratio)}
	}
	return p, nil
}
