package soitin_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soitin/soitin"
)

func TestShapeRenderLengths(t *testing.T) {
	descriptors := []string{"1", "lin 0 1", "exp 1 100", "exp 0 1 2", "hann", "fadein", "fadeout", "0.5:lin 1 0"}
	for _, text := range descriptors {
		shape, err := soitin.ParseShape(text)
		if err != nil {
			t.Fatalf("ParseShape(%q) failed: %v", text, err)
		}
		for _, n := range []int{0, 1, 2, 3, 100, 44100} {
			if got := len(shape.Render(n)); got != n {
				t.Fatalf("Render(%v) of %q returned %v samples", n, text, got)
			}
		}
	}
}

func TestConstantShape(t *testing.T) {
	shape, err := soitin.ParseShape("0.75")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	for i, v := range shape.Render(100) {
		if v != 0.75 {
			t.Fatalf("sample %v is %v, expected 0.75", i, v)
		}
	}
}

func TestLinearShape(t *testing.T) {
	shape, err := soitin.ParseShape("lin 0 1")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	curve := shape.Render(3)
	for i, expected := range []float64{0, 0.5, 1} {
		if math.Abs(curve[i]-expected) > 1e-12 {
			t.Fatalf("sample %v is %v, expected %v", i, curve[i], expected)
		}
	}
}

func TestExponentialShape(t *testing.T) {
	shape, err := soitin.ParseShape("exp 1 100")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	curve := shape.Render(3)
	for i, expected := range []float64{1, 10, 100} {
		if math.Abs(curve[i]-expected) > 1e-9 {
			t.Fatalf("sample %v is %v, expected %v", i, curve[i], expected)
		}
	}
}

func TestCurvedExponentialShape(t *testing.T) {
	shape, err := soitin.ParseShape("exp 0 1 3")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	curve := shape.Render(101)
	if math.Abs(curve[0]) > 1e-12 || math.Abs(curve[100]-1) > 1e-12 {
		t.Fatalf("curved exp endpoints are %v and %v, expected 0 and 1", curve[0], curve[100])
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] <= curve[i-1] {
			t.Fatalf("curved exp is not strictly increasing at sample %v", i)
		}
	}
}

func TestShapePresets(t *testing.T) {
	for _, test := range []struct {
		text       string
		start, end float64
	}{
		{"hann", 0, 0},
		{"fadein", 0, 1},
		{"fadeout", 1, 0},
	} {
		shape, err := soitin.ParseShape(test.text)
		if err != nil {
			t.Fatalf("ParseShape(%q) failed: %v", test.text, err)
		}
		curve := shape.Render(101)
		if math.Abs(curve[0]-test.start) > 1e-12 || math.Abs(curve[100]-test.end) > 1e-12 {
			t.Fatalf("%q endpoints are %v and %v, expected %v and %v", test.text, curve[0], curve[100], test.start, test.end)
		}
	}
}

func TestShapeDuration(t *testing.T) {
	shape, err := soitin.ParseShape("0.25:lin 0 1")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	if shape.Duration() != 0.25 {
		t.Fatalf("duration is %v, expected 0.25", shape.Duration())
	}
	shape, err = soitin.ParseShape("1")
	if err != nil {
		t.Fatalf("ParseShape failed: %v", err)
	}
	if shape.Duration() != 0 {
		t.Fatalf("unprefixed descriptor has duration %v, expected 0", shape.Duration())
	}
}

func TestShapeParseErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"  ",
		"nonsense",
		"1 2",
		"lin 0",
		"lin 0 1 2",
		"exp 0 1",
		"exp -1 5",
		"exp 1 2 0",
		"hann 3",
		"-0.5:lin 0 1",
		"x:lin 0 1",
	} {
		_, err := soitin.ParseShape(text)
		if err == nil {
			t.Fatalf("ParseShape(%q) should have failed", text)
		}
		var parseErr *soitin.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseShape(%q) returned %T, expected *ParseError", text, err)
		}
	}
}
