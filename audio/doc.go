// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio streaming primitives.
//
// The Source interface is the foundation: a stream of interleaved
// float32 samples normalized to [-1.0, 1.0]. Decoders, generated-signal
// adapters and processors all implement it, so they chain into
// pipelines:
//
//	src := signal.NewSource(buf, 48000)
//	res := audio.NewResampler(src, 8000)
//	mono := audio.NewMonoMixer(res)
//
//	out := make([]float32, 4096)
//	n, err := mono.ReadSamples(out)
//
// ReadSamples returns io.EOF when the stream ends; any other error is a
// processing failure.
//
// The Resampler converts sample rates with Catmull-Rom cubic
// interpolation, preserving channel count. The MonoMixer averages all
// channels into one.
//
// The Registry maps format keys (lowercase file extensions) to Decoder
// implementations, so file-driven tools can pick a decoder from a path:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Lookup("input.wav")
package audio
