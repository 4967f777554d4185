// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"

	"github.com/ik5/tonegen/audio"
)

// bufferSource streams a Buffer as interleaved float32 frames.
type bufferSource struct {
	buf        *Buffer
	sampleRate int
	frame      int // next frame to emit
}

// NewSource adapts buf into a streaming audio.Source at sampleRate, so a
// generated signal can feed the audio pipeline (resampler, mixer, encoders).
func NewSource(buf *Buffer, sampleRate int) audio.Source {
	return &bufferSource{buf: buf, sampleRate: sampleRate}
}

func (s *bufferSource) SampleRate() int { return s.sampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if len(dst) < channels {
		if s.frame >= s.buf.Frames() {
			return 0, io.EOF
		}
		return 0, nil
	}

	frames := min(len(dst)/channels, s.buf.Frames()-s.frame)
	if frames == 0 {
		return 0, io.EOF
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[f*channels+c] = float32(s.buf.Sample(c, s.frame+f))
		}
	}
	s.frame += frames

	if s.frame >= s.buf.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

// FromSource drains src into a channel-major Buffer. Partial trailing
// frames are discarded.
func FromSource(src audio.Source) (*Buffer, error) {
	channels := src.Channels()
	perChannel := make([][]float64, channels)
	buf := make([]float32, 4096*channels)

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := 0; f < frames; f++ {
			for c := 0; c < channels; c++ {
				perChannel[c] = append(perChannel[c], float64(buf[f*channels+c]))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Buffer{data: perChannel}, nil
}
