package oto

import (
	"encoding/binary"
	"math"

	"github.com/soitin/soitin"
)

// ToneTo16BitLE converts a rendered tone to a 16-bit little-endian PCM
// byte buffer, clamping out-of-range samples.
func ToneTo16BitLE(tone soitin.Tone) []byte {
	buf := make([]byte, 2*len(tone))
	for i, v := range tone {
		var uv int16
		if v < -1.0 {
			uv = -math.MaxInt16
		} else if v > 1.0 {
			uv = math.MaxInt16
		} else {
			uv = int16(v * math.MaxInt16)
		}
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(uv))
	}
	return buf
}
