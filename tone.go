package buttonnode

import (
	"encoding/binary"
	"math"
	"time"
)

// toneSampleRate is the rate ToneWAV encodes at. The audio manager
// resamples to its context rate on decode.
const toneSampleRate = 44100

// ToneWAV returns a mono 16-bit WAV file holding a sine tone at freq Hz.
// The tone fades out over its last tenth so it does not click. It is meant
// for prototypes and tests that need a sound without shipping assets.
func ToneWAV(freq float64, d time.Duration) []byte {
	n := int(d.Seconds() * toneSampleRate)
	if n < 0 {
		n = 0
	}
	fade := n / 10
	samples := make([]int16, n)
	for i := range samples {
		amp := 0.5
		if fade > 0 && i >= n-fade {
			amp *= float64(n-i) / float64(fade)
		}
		v := math.Sin(2 * math.Pi * freq * float64(i) / toneSampleRate)
		samples[i] = int16(v * amp * math.MaxInt16)
	}

	le := binary.LittleEndian
	dataLen := uint32(n * 2)
	buf := make([]byte, 0, 44+dataLen)
	buf = append(buf, "RIFF"...)
	buf = le.AppendUint32(buf, 36+dataLen)
	buf = append(buf, "WAVEfmt "...)
	buf = le.AppendUint32(buf, 16) // fmt chunk size
	buf = le.AppendUint16(buf, 1)  // PCM
	buf = le.AppendUint16(buf, 1)  // mono
	buf = le.AppendUint32(buf, toneSampleRate)
	buf = le.AppendUint32(buf, toneSampleRate*2) // byte rate
	buf = le.AppendUint16(buf, 2)                // block align
	buf = le.AppendUint16(buf, 16)               // bits per sample
	buf = append(buf, "data"...)
	buf = le.AppendUint32(buf, dataLen)
	for _, v := range samples {
		buf = le.AppendUint16(buf, uint16(v))
	}
	return buf
}
