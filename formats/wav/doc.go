// SPDX-License-Identifier: EPL-2.0

// Package wav encodes and decodes RIFF/WAVE audio files.
//
// # Encoding
//
// The encoder is written from scratch and produces canonical little-endian
// WAV layouts. WritePCM16 takes interleaved 16-bit samples:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WritePCM16(file, 8000, 2, samples)
//
// WriteBuffer encodes a signal.Buffer directly, quantizing float samples
// to int16 with clamping at the [-1, 1] boundaries. WriteFloat32 writes
// 32-bit IEEE float WAV (format tag 3) for lossless float export.
//
// # Decoding
//
// Decoding is delegated to github.com/go-audio/wav:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// The decoder returns an audio.Source of float32 samples normalized to
// [-1.0, 1.0]; PCM bit depths of 8, 16, 24 and 32 are supported. IEEE
// float WAV decoding is not supported.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedWavLayout: valid WAV, but a layout the decoder
//     does not handle
//   - ErrNoChannels, ErrPartialFrame: invalid encoder arguments
package wav
