// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/tonegen/signal"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// WritePCM16 writes interleaved 16-bit PCM samples as a complete WAV
// stream: RIFF header, fmt chunk, data chunk. A frame is one sample from
// every channel, in channel order; len(samples) must be a multiple of
// channels. Uses an optimized implementation for minimal allocations.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write sample data in chunks to bound the conversion buffer
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteBuffer encodes a generated sample buffer as 16-bit PCM WAV.
// Samples are clamped to [-1, 1] and scaled to the full int16 range, so
// the quantization error never exceeds one 16-bit step (1/32768).
func WriteBuffer(w io.Writer, sampleRate int, buf *signal.Buffer) error {
	channels := buf.Channels()
	frames := buf.Frames()
	samples := make([]int16, channels*frames)

	for c := 0; c < channels; c++ {
		ch := buf.Channel(c)
		for f, v := range ch {
			samples[f*channels+c] = quantize16(v)
		}
	}

	return WritePCM16(w, sampleRate, channels, samples)
}

// quantize16 maps a [-1, 1] sample onto the int16 range. Scaling by
// 32768 keeps the truncation error within one quantization step; +1.0
// saturates at 32767.
func quantize16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	s := int32(v * 32768.0)
	if s > math.MaxInt16 {
		s = math.MaxInt16
	}
	return int16(s)
}

// WriteFloat32 writes interleaved samples as a 32-bit IEEE float WAV
// (format tag 3) with a fact chunk, as required for non-PCM formats.
// Samples are written as-is, without clamping or scaling.
func WriteFloat32(w io.Writer, sampleRate, channels int, samples []float32) error {
	if channels < 1 {
		return ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(32)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 4)
	frames := uint32(len(samples) / channels)
	// RIFF size: WAVE id + fmt chunk + fact chunk + data chunk header + data
	riffSize := 4 + 26 + 12 + 8 + dataSize

	header := make([]byte, 58)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// Non-PCM formats carry the 18-byte WAVEFORMATEX fmt chunk (cbSize=0)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 18)
	binary.LittleEndian.PutUint16(header[20:22], formatIEEEFloat)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	binary.LittleEndian.PutUint16(header[36:38], 0) // cbSize

	copy(header[38:42], "fact")
	binary.LittleEndian.PutUint32(header[42:46], 4)
	binary.LittleEndian.PutUint32(header[46:50], frames)

	copy(header[50:54], "data")
	binary.LittleEndian.PutUint32(header[54:58], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 4096
	buf := make([]byte, min(len(samples), chunkSize)*4)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*4]

		for j, s := range chunk {
			binary.LittleEndian.PutUint32(buf[j*4:j*4+4], math.Float32bits(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
