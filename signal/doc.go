// SPDX-License-Identifier: EPL-2.0

// Package signal generates deterministic multi-channel test signals.
//
// A Spec names a duration, a sample rate and one sine frequency per
// channel; Generate evaluates it into a channel-major Buffer of float64
// samples in [-1.0, 1.0]:
//
//	buf, err := signal.Generate(signal.Spec{
//	    Duration:    1,
//	    SampleRate:  48000,
//	    Frequencies: []float64{440, 880},
//	})
//
// Buffers expose frame-range and channel-range views (Slice,
// SelectChannels), an Interleaved accessor producing the frame-major
// float32 layout the encoders consume, and adapters to and from the
// streaming audio.Source interface (NewSource, FromSource).
//
// Generation is pure and allocation is proportional to
// channels x frames; there is no shared state and no concurrency.
package signal
