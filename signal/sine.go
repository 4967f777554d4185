// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Generate synthesizes the signal described by spec: one sine wave per
// frequency, evaluated as sin(2*pi*f*n/rate) at each sample index n.
// No normalization, windowing or dithering is applied, so every sample
// lies in [-1.0, 1.0] and index 0 of every channel is exactly 0.
//
// Generate is pure. It validates spec before computing any samples and
// returns an error matching ErrInvalidSpec on a bad spec.
func Generate(spec Spec) (*Buffer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	frames := spec.Frames()
	buf := NewBuffer(len(spec.Frequencies), frames)

	for c, freq := range spec.Frequencies {
		omega := 2 * math.Pi * freq / float64(spec.SampleRate)
		ch := buf.Channel(c)
		for n := 0; n < frames; n++ {
			ch[n] = math.Sin(omega * float64(n))
		}
	}

	return buf, nil
}
