// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is the base error for spec validation failures.
// Every error returned by Spec.Validate matches it with errors.Is.
var ErrInvalidSpec = errors.New("invalid signal spec")

var (
	ErrInvalidDuration   = fmt.Errorf("%w: duration must be positive", ErrInvalidSpec)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrInvalidSpec)
	ErrNoFrequencies     = fmt.Errorf("%w: frequency list is empty", ErrInvalidSpec)
)

var (
	ErrFrameRange   = errors.New("frame range out of bounds")
	ErrChannelRange = errors.New("channel range out of bounds")
)
