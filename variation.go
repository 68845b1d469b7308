package soitin

import (
	"strconv"
	"strings"
)

// Span is an inclusive numeric range used by variation selectors, parsed
// from "lo-hi" (or a single number for an exact match).
type Span struct {
	Lo, Hi float64
}

// ParseSpan parses a selector range.
func ParseSpan(text string) (Span, error) {
	lo, hi, found := strings.Cut(text, "-")
	if !found {
		hi = lo
	}
	var s Span
	var err error
	if s.Lo, err = strconv.ParseFloat(strings.TrimSpace(lo), 64); err != nil {
		return Span{}, &ParseError{Input: text, Detail: "range bound is not a number"}
	}
	if s.Hi, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
		return Span{}, &ParseError{Input: text, Detail: "range bound is not a number"}
	}
	if s.Hi < s.Lo {
		return Span{}, &ParseError{Input: text, Detail: "range bounds are reversed"}
	}
	return s, nil
}

func (s Span) contains(v float64) bool {
	return v >= s.Lo && v <= s.Hi
}

// Selector constrains a variation child to a pitch and/or stress range.
// A selector constraining both dimensions is more specific than one
// constraining only one.
type Selector struct {
	pitch     Span
	stress    Span
	hasPitch  bool
	hasStress bool
}

// NewSelector builds a selector; nil spans leave the dimension
// unconstrained. At least one dimension must be constrained, or the child
// would unconditionally shadow its siblings and the parent's partials.
func NewSelector(pitch, stress *Span) (Selector, error) {
	if pitch == nil && stress == nil {
		return Selector{}, &StructuralError{Detail: "variation selector constrains neither pitch nor stress"}
	}
	var sel Selector
	if pitch != nil {
		sel.pitch, sel.hasPitch = *pitch, true
	}
	if stress != nil {
		sel.stress, sel.hasStress = *stress, true
	}
	return sel, nil
}

func (sel Selector) matches(pitch, stress float64) bool {
	if sel.hasPitch && !sel.pitch.contains(pitch) {
		return false
	}
	if sel.hasStress && !sel.stress.contains(stress) {
		return false
	}
	return true
}

func (sel Selector) specificity() int {
	n := 0
	if sel.hasPitch {
		n++
	}
	if sel.hasStress {
		n++
	}
	return n
}

// Variation is one node of an instrument's partial-selection tree: a set
// of partials of its own, plus an ordered list of selector-guarded child
// variations. Resolution recurses into the most specific matching child;
// unmatched ranges (and matched subtrees that resolve to nothing) fall
// through to the current level's own partials. A matched child overrides
// the parent's partials, it does not merge with them.
type Variation struct {
	partials []*Partial
	children []variationChild
}

type variationChild struct {
	sel   Selector
	child *Variation
}

// NewVariation builds a tree node from its own partials and selector/child
// pairs. Selectors and children are paired by index and must have equal
// counts; a node with neither partials nor children cannot resolve
// anything and is rejected.
func NewVariation(partials []*Partial, selectors []Selector, children []*Variation) (*Variation, error) {
	if len(selectors) != len(children) {
		return nil, &StructuralError{Detail: "variation has mismatched selector and child counts"}
	}
	if len(partials) == 0 && len(children) == 0 {
		return nil, &StructuralError{Detail: "variation has neither partials nor child variations"}
	}
	v := &Variation{partials: partials}
	for i, sel := range selectors {
		if children[i] == nil {
			return nil, &StructuralError{Detail: "variation has a nil child"}
		}
		v.children = append(v.children, variationChild{sel: sel, child: children[i]})
	}
	return v, nil
}

// Select resolves the partials applicable to a pitch/stress pair.
func (v *Variation) Select(pitch, stress float64) []*Partial {
	var best *Variation
	bestSpec := 0
	for _, c := range v.children {
		if spec := c.sel.specificity(); spec > bestSpec && c.sel.matches(pitch, stress) {
			best, bestSpec = c.child, spec
		}
	}
	if best != nil {
		if selected := best.Select(pitch, stress); len(selected) > 0 {
			return selected
		}
	}
	return v.partials
}
