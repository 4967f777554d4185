package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNoChannels           = errors.New("channel count must be positive")
	ErrPartialFrame         = errors.New("sample count must be a multiple of channels")
)
