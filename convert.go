// SPDX-License-Identifier: EPL-2.0

package tonegen

import (
	"fmt"
	"io"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/utils"
)

// ConvertToWAV16 re-encodes src as 16-bit PCM WAV at targetRate,
// preserving the channel count. The pipeline is resample -> quantize ->
// encode; bufferSize controls the read chunk (4096 is a good default).
//
// Any decoded audio.Source works as input, including generated signals
// wrapped with signal.NewSource.
func ConvertToWAV16(src audio.Source, targetRate, bufferSize int, w io.Writer) error {
	res := audio.NewResampler(src, targetRate)

	pcm16, err := collectPCM16(res, bufferSize)
	if err != nil {
		return err
	}

	return wav.WritePCM16(w, targetRate, res.Channels(), pcm16)
}

// ConvertToMonoWAV16 is ConvertToWAV16 with an averaging mixdown to a
// single channel before quantization.
func ConvertToMonoWAV16(src audio.Source, targetRate, bufferSize int, w io.Writer) error {
	res := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixer(res)

	pcm16, err := collectPCM16(mono, bufferSize)
	if err != nil {
		return err
	}

	return wav.WritePCM16(w, targetRate, 1, pcm16)
}

// collectPCM16 drains src, converting samples to 16-bit PCM.
func collectPCM16(src audio.Source, bufferSize int) ([]int16, error) {
	// The resampler insists on whole frames per read
	channels := src.Channels()
	if bufferSize < channels {
		bufferSize = channels
	}
	bufferSize -= bufferSize % channels

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}
