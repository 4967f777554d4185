// SPDX-License-Identifier: EPL-2.0

package signal

// Buffer holds a multi-channel block of samples, one float64 slice per
// channel. All channels have the same length. Sample values are unitless
// amplitudes, nominally in [-1.0, 1.0].
type Buffer struct {
	data [][]float64
}

// NewBuffer allocates a zeroed buffer of channels x frames samples.
func NewBuffer(channels, frames int) *Buffer {
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}
	return &Buffer{data: data}
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.data) }

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Sample returns the sample at index i of channel ch.
func (b *Buffer) Sample(ch, i int) float64 { return b.data[ch][i] }

// Channel returns the backing slice of channel ch. The slice is shared
// with the buffer, not copied.
func (b *Buffer) Channel(ch int) []float64 { return b.data[ch] }

// Duration returns the buffer length in seconds at sampleRate.
func (b *Buffer) Duration(sampleRate int) float64 {
	return float64(b.Frames()) / float64(sampleRate)
}

// Interleaved returns the samples as a single frame-major float32 slice:
// frame 0 of every channel in channel order, then frame 1, and so on.
// This is the layout the encoders and the audio pipeline consume.
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, channels*frames)
	for c, ch := range b.data {
		for i, v := range ch {
			out[i*channels+c] = float32(v)
		}
	}
	return out
}

// Slice returns a view of frames [from, to) of every channel. The view
// shares memory with b.
func (b *Buffer) Slice(from, to int) (*Buffer, error) {
	if from < 0 || to < from || to > b.Frames() {
		return nil, ErrFrameRange
	}
	data := make([][]float64, len(b.data))
	for c := range b.data {
		data[c] = b.data[c][from:to]
	}
	return &Buffer{data: data}, nil
}

// SelectChannels returns a view of channels [from, to). The view shares
// memory with b.
func (b *Buffer) SelectChannels(from, to int) (*Buffer, error) {
	if from < 0 || to < from || to > b.Channels() {
		return nil, ErrChannelRange
	}
	return &Buffer{data: b.data[from:to]}, nil
}
