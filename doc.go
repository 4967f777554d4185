// SPDX-License-Identifier: EPL-2.0

// Package tonegen synthesizes deterministic multi-channel sine test
// signals and exports them as standard RIFF/WAVE PCM files.
//
// # Quick Start
//
// Describe the signal with a signal.Spec and write it in one call:
//
//	spec := signal.Spec{
//	    Duration:    1,
//	    SampleRate:  48000,
//	    Frequencies: []float64{440, 554.37, 659.25, 880},
//	}
//	err := tonegen.WriteFile("sine_4ch_48khz.wav", spec)
//
// Each frequency produces one output channel. Channel c at sample index n
// holds sin(2*pi*f_c*n/rate), so every generated file is bit-for-bit
// reproducible from its spec.
//
// # Generation Pipeline
//
// For more control, use the subpackages directly:
//
//	buf, err := signal.Generate(spec)      // multi-channel sample buffer
//	err = wav.WriteBuffer(w, spec.SampleRate, buf)
//
// A generated buffer can also be streamed through the audio processing
// primitives via signal.NewSource:
//
//	src := signal.NewSource(buf, spec.SampleRate)
//	res := audio.NewResampler(src, 8000)
//
// # Reading Audio Back
//
// The formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF files into
// the same normalized float32 representation, and the conversion helpers
// re-export any decoded source as 16-bit PCM WAV:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	err = tonegen.ConvertToWAV16(src, 48000, 4096, out)
//
// # Sample Format
//
// All intermediate samples are unitless amplitudes in [-1.0, 1.0]. WAV
// export quantizes to 16-bit signed little-endian PCM with clamping at
// the range boundaries; a 32-bit IEEE float writer is available where
// quantization loss matters.
package tonegen
