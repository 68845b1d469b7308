package soitin_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soitin/soitin"
)

func TestWaveshaperIdentity(t *testing.T) {
	ws, err := soitin.ParseWaveshaper("lin 0 1")
	if err != nil {
		t.Fatalf("ParseWaveshaper failed: %v", err)
	}
	samples := []float64{-1, -0.5, -0.123, 0, 0.25, 0.987, 1}
	original := append([]float64(nil), samples...)
	ws.Apply(samples)
	for i := range samples {
		if math.Abs(samples[i]-original[i]) > 1e-9 {
			t.Fatalf("sample %v maps %v to %v, expected identity", i, original[i], samples[i])
		}
	}
}

func TestWaveshaperClampsOutOfRange(t *testing.T) {
	ws, err := soitin.ParseWaveshaper("lin 0 1")
	if err != nil {
		t.Fatalf("ParseWaveshaper failed: %v", err)
	}
	samples := []float64{-3, 3}
	ws.Apply(samples)
	if samples[0] != -1 || samples[1] != 1 {
		t.Fatalf("clamped samples are %v, expected [-1 1]", samples)
	}
}

func TestWaveshaperInversion(t *testing.T) {
	// "lin 1 0" flips the transfer, mapping -1 to 1 and 1 to -1.
	ws, err := soitin.ParseWaveshaper("lin 1 0")
	if err != nil {
		t.Fatalf("ParseWaveshaper failed: %v", err)
	}
	samples := []float64{-1, 0, 1}
	ws.Apply(samples)
	expected := []float64{1, 0, -1}
	for i := range samples {
		if math.Abs(samples[i]-expected[i]) > 1e-9 {
			t.Fatalf("sample %v is %v, expected %v", i, samples[i], expected[i])
		}
	}
}

func TestWaveshaperConstant(t *testing.T) {
	// A constant shape squashes every input to the same output level.
	ws, err := soitin.ParseWaveshaper("0.5")
	if err != nil {
		t.Fatalf("ParseWaveshaper failed: %v", err)
	}
	samples := []float64{-1, -0.3, 0, 0.7, 1}
	ws.Apply(samples)
	for i, v := range samples {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("sample %v is %v, expected 0", i, v)
		}
	}
}

func TestWaveshaperBadDescriptor(t *testing.T) {
	_, err := soitin.ParseWaveshaper("warp 0 1")
	var parseErr *soitin.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ParseWaveshaper returned %v, expected *ParseError", err)
	}
}
