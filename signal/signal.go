// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Spec describes a deterministic multi-channel sine test signal.
// Every entry in Frequencies produces one output channel, in order.
//
// The spec does not enforce the Nyquist criterion: a frequency above
// SampleRate/2 will alias. Picking sane frequencies is the caller's job.
type Spec struct {
	// Duration of the signal in seconds.
	Duration float64
	// SampleRate in Hz.
	SampleRate int
	// Frequencies in Hz, one per channel.
	Frequencies []float64
}

// Channels returns the number of output channels the spec describes.
func (s Spec) Channels() int { return len(s.Frequencies) }

// Frames returns the number of samples per channel: round(Duration * SampleRate).
func (s Spec) Frames() int {
	return int(math.Round(s.Duration * float64(s.SampleRate)))
}

// Validate checks that the spec can be generated. All returned errors
// match ErrInvalidSpec with errors.Is.
func (s Spec) Validate() error {
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(s.Frequencies) == 0 {
		return ErrNoFrequencies
	}
	return nil
}
