// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/tonegen/audio"
)

// oggReader is the subset of oggvorbis.Reader the source needs, split
// out to allow testing with a fake decoder.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis already delivers interleaved float32 in [-1, 1], whole
	// frames at a time, so it can decode straight into dst.
	usable := (len(dst) / s.channels) * s.channels
	if usable == 0 {
		usable = len(dst)
	}

	n, err := s.dec.Read(dst[:usable])
	if n == 0 && err != nil {
		return 0, err
	}

	return n, err
}

type Decoder struct{}

// Decode wraps r in an oggvorbis reader.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
