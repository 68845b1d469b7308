package soitin_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/soitin/soitin"
)

func TestRawPcm16(t *testing.T) {
	tone := soitin.Tone{0, 0.5, -0.5, 1, -1, 2, -2}
	data, err := soitin.Raw(tone, true)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if len(data) != 2*len(tone) {
		t.Fatalf("raw pcm16 is %v bytes, expected %v", len(data), 2*len(tone))
	}
	samples := make([]int16, len(tone))
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, samples); err != nil {
		t.Fatalf("binary.Read failed: %v", err)
	}
	expected := []int16{0, 16383, -16383, math.MaxInt16, -math.MaxInt16, math.MaxInt16, math.MinInt16}
	for i := range samples {
		if samples[i] != expected[i] {
			t.Fatalf("sample %v is %v, expected %v", i, samples[i], expected[i])
		}
	}
}

func TestRawFloat(t *testing.T) {
	tone := soitin.Tone{0, 0.25, -0.75, 1.5}
	data, err := soitin.Raw(tone, false)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if len(data) != 4*len(tone) {
		t.Fatalf("raw float32 is %v bytes, expected %v", len(data), 4*len(tone))
	}
	samples := make([]float32, len(tone))
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, samples); err != nil {
		t.Fatalf("binary.Read failed: %v", err)
	}
	for i := range samples {
		if samples[i] != float32(tone[i]) {
			t.Fatalf("sample %v is %v, expected %v", i, samples[i], float32(tone[i]))
		}
	}
}

func TestWavPcm16Header(t *testing.T) {
	tone := make(soitin.Tone, 1000)
	data, err := soitin.Wav(tone, true)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	if len(data) != 44+2*len(tone) {
		t.Fatalf("pcm16 wav is %v bytes, expected %v", len(data), 44+2*len(tone))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatal("missing RIFF/WAVE markers")
	}
	if chunkSize := binary.LittleEndian.Uint32(data[4:8]); chunkSize != uint32(len(data)-8) {
		t.Fatalf("chunk size is %v, expected %v", chunkSize, len(data)-8)
	}
	if format := binary.LittleEndian.Uint16(data[20:22]); format != 1 {
		t.Fatalf("wave format is %v, expected 1 (PCM)", format)
	}
	if channels := binary.LittleEndian.Uint16(data[22:24]); channels != 1 {
		t.Fatalf("channel count is %v, expected 1", channels)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != soitin.SampleRate {
		t.Fatalf("sample rate is %v, expected %v", rate, soitin.SampleRate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Fatalf("bit depth is %v, expected 16", bits)
	}
	if string(data[36:40]) != "data" {
		t.Fatal("missing data chunk marker")
	}
	if dataSize := binary.LittleEndian.Uint32(data[40:44]); dataSize != uint32(2*len(tone)) {
		t.Fatalf("data chunk size is %v, expected %v", dataSize, 2*len(tone))
	}
}

func TestWavFloatHeader(t *testing.T) {
	tone := make(soitin.Tone, 1000)
	data, err := soitin.Wav(tone, false)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	if len(data) != 58+4*len(tone) {
		t.Fatalf("float wav is %v bytes, expected %v", len(data), 58+4*len(tone))
	}
	if format := binary.LittleEndian.Uint16(data[20:22]); format != 3 {
		t.Fatalf("wave format is %v, expected 3 (IEEE float)", format)
	}
	if string(data[38:42]) != "fact" {
		t.Fatal("missing fact chunk")
	}
	if samples := binary.LittleEndian.Uint32(data[46:50]); samples != uint32(len(tone)) {
		t.Fatalf("fact sample count is %v, expected %v", samples, len(tone))
	}
	if string(data[50:54]) != "data" {
		t.Fatal("missing data chunk marker")
	}
}
