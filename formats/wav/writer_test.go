// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/tonegen/signal"
)

func TestWritePCM16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200, 300}
	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 8000, 2, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v, want nil", err)
	}

	if buf.Len() < 44 {
		t.Fatalf("WAV file too small: %d bytes", buf.Len())
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWritePCM16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 48000, 4, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()

	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
	}

	fmtSize := binary.LittleEndian.Uint32(data[16:20])
	if fmtSize != 16 {
		t.Errorf("fmt chunk size = %d, want 16", fmtSize)
	}

	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", audioFormat)
	}

	numChannels := binary.LittleEndian.Uint16(data[22:24])
	if numChannels != 4 {
		t.Errorf("num channels = %d, want 4", numChannels)
	}

	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	if sampleRate != 48000 {
		t.Errorf("sample rate = %d, want 48000", sampleRate)
	}

	// Byte rate = rate * channels * bytes per sample
	byteRate := binary.LittleEndian.Uint32(data[28:32])
	if byteRate != 48000*4*2 {
		t.Errorf("byte rate = %d, want %d", byteRate, 48000*4*2)
	}

	blockAlign := binary.LittleEndian.Uint16(data[32:34])
	if blockAlign != 8 {
		t.Errorf("block align = %d, want 8", blockAlign)
	}

	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 16 {
		t.Errorf("bits per sample = %d, want 16", bitsPerSample)
	}

	if string(data[36:40]) != "data" {
		t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
	}

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", dataSize, len(samples)*2)
	}
}

func TestWritePCM16_RIFFSize(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()
	riffSize := binary.LittleEndian.Uint32(data[4:8])

	// RIFF size is the file size minus the "RIFF" id and size field
	if want := uint32(buf.Len() - 8); riffSize != want {
		t.Errorf("RIFF size = %d, want %d", riffSize, want)
	}
}

func TestWritePCM16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -200, 300, -400}
	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 8000, 2, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()

	// Interleaved sample data starts at byte 44
	for i, expected := range samples {
		offset := 44 + (i * 2)
		actual := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if actual != expected {
			t.Errorf("sample[%d] = %d, want %d", i, actual, expected)
		}
	}
}

func TestWritePCM16_ByteOrder(t *testing.T) {
	t.Parallel()

	samples := []int16{0x1234}
	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()
	if data[44] != 0x34 || data[45] != 0x12 {
		t.Errorf("sample bytes = [%02x %02x], want [34 12]", data[44], data[45])
	}
}

func TestWritePCM16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	err := WritePCM16(buf, 8000, 1, nil)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v, want nil", err)
	}

	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWritePCM16_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []int16
		wantErr  error
	}{
		{name: "zero channels", channels: 0, samples: []int16{1}, wantErr: ErrNoChannels},
		{name: "negative channels", channels: -1, samples: []int16{1}, wantErr: ErrNoChannels},
		{name: "partial frame", channels: 2, samples: []int16{1, 2, 3}, wantErr: ErrPartialFrame},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WritePCM16(new(bytes.Buffer), 8000, tt.channels, tt.samples)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WritePCM16() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWritePCM16_LargeFile(t *testing.T) {
	t.Parallel()

	// 10 seconds of stereo at 44.1kHz, crossing many write chunks
	numSamples := 44100 * 10 * 2
	samples := make([]int16, numSamples)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	buf := new(bytes.Buffer)
	err := WritePCM16(buf, 44100, 2, samples)
	if err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	if want := 44 + numSamples*2; buf.Len() != want {
		t.Errorf("WAV file size = %d, want %d", buf.Len(), want)
	}
}

func TestWriteBuffer_Layout(t *testing.T) {
	t.Parallel()

	// Two channels with distinct constant values so the interleave
	// order is visible in the encoded bytes.
	sb := signal.NewBuffer(2, 3)
	for i := 0; i < 3; i++ {
		sb.Channel(0)[i] = 0.5
		sb.Channel(1)[i] = -0.5
	}

	buf := new(bytes.Buffer)
	if err := WriteBuffer(buf, 8000, sb); err != nil {
		t.Fatalf("WriteBuffer() error = %v", err)
	}

	data := buf.Bytes()
	if want := 44 + 3*2*2; buf.Len() != want {
		t.Fatalf("WAV file size = %d, want %d", buf.Len(), want)
	}

	for f := 0; f < 3; f++ {
		left := int16(binary.LittleEndian.Uint16(data[44+f*4 : 46+f*4]))
		right := int16(binary.LittleEndian.Uint16(data[46+f*4 : 48+f*4]))

		if left != 16384 {
			t.Errorf("frame %d channel 0 = %d, want 16384", f, left)
		}
		if right != -16384 {
			t.Errorf("frame %d channel 1 = %d, want -16384", f, right)
		}
	}
}

func TestWriteBuffer_Clamping(t *testing.T) {
	t.Parallel()

	sb := signal.NewBuffer(1, 4)
	sb.Channel(0)[0] = 2.0
	sb.Channel(0)[1] = -2.0
	sb.Channel(0)[2] = 1.0
	sb.Channel(0)[3] = -1.0

	buf := new(bytes.Buffer)
	if err := WriteBuffer(buf, 8000, sb); err != nil {
		t.Fatalf("WriteBuffer() error = %v", err)
	}

	data := buf.Bytes()
	want := []int16{math.MaxInt16, math.MinInt16, math.MaxInt16, math.MinInt16}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2 : 46+i*2]))
		if got != w {
			t.Errorf("sample[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestWriteBuffer_RoundTrip(t *testing.T) {
	t.Parallel()

	// Generate a two-tone signal, encode it, decode it back through the
	// go-audio based decoder and compare within one quantization step.
	spec := signal.Spec{
		Duration:    0.05,
		SampleRate:  8000,
		Frequencies: []float64{440, 880},
	}
	sb, err := signal.Generate(spec)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	encoded := new(bytes.Buffer)
	if err := WriteBuffer(encoded, spec.SampleRate, sb); err != nil {
		t.Fatalf("WriteBuffer() error = %v", err)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(encoded.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != spec.SampleRate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), spec.SampleRate)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	want := sb.Interleaved()
	got := make([]float32, 0, len(want))
	readBuf := make([]float32, 1024)

	for {
		n, err := src.ReadSamples(readBuf)
		got = append(got, readBuf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		diff := math.Abs(float64(got[i] - want[i]))
		if diff > 1.0/32768.0 {
			t.Errorf("sample[%d] = %v, want %v (diff %v exceeds 1/32768)",
				i, got[i], want[i], diff)
		}
	}
}

func TestWriteFloat32_Header(t *testing.T) {
	t.Parallel()

	samples := []float32{0.25, -0.25, 0.5, -0.5}
	buf := new(bytes.Buffer)

	err := WriteFloat32(buf, 48000, 2, samples)
	if err != nil {
		t.Fatalf("WriteFloat32() error = %v", err)
	}

	data := buf.Bytes()

	// Non-PCM formats carry the WAVEFORMATEX fmt chunk: 18 bytes, cbSize=0
	fmtSize := binary.LittleEndian.Uint32(data[16:20])
	if fmtSize != 18 {
		t.Errorf("fmt chunk size = %d, want 18", fmtSize)
	}

	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	if audioFormat != 3 {
		t.Errorf("audio format = %d, want 3 (IEEE float)", audioFormat)
	}

	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 32 {
		t.Errorf("bits per sample = %d, want 32", bitsPerSample)
	}

	blockAlign := binary.LittleEndian.Uint16(data[32:34])
	if blockAlign != 8 {
		t.Errorf("block align = %d, want 8", blockAlign)
	}

	cbSize := binary.LittleEndian.Uint16(data[36:38])
	if cbSize != 0 {
		t.Errorf("cbSize = %d, want 0", cbSize)
	}

	if string(data[38:42]) != "fact" {
		t.Fatalf("fact marker = %q, want \"fact\"", string(data[38:42]))
	}

	factFrames := binary.LittleEndian.Uint32(data[46:50])
	if factFrames != 2 {
		t.Errorf("fact sample frames = %d, want 2", factFrames)
	}

	if string(data[50:54]) != "data" {
		t.Fatalf("data marker = %q, want \"data\"", string(data[50:54]))
	}

	riffSize := binary.LittleEndian.Uint32(data[4:8])
	if want := uint32(buf.Len() - 8); riffSize != want {
		t.Errorf("RIFF size = %d, want %d", riffSize, want)
	}
}

func TestWriteFloat32_SampleBits(t *testing.T) {
	t.Parallel()

	samples := []float32{0.0, 1.0, -1.0, 0.12345}
	buf := new(bytes.Buffer)

	err := WriteFloat32(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("WriteFloat32() error = %v", err)
	}

	data := buf.Bytes()
	for i, s := range samples {
		offset := 58 + i*4
		bits := binary.LittleEndian.Uint32(data[offset : offset+4])
		if got := math.Float32frombits(bits); got != s {
			t.Errorf("sample[%d] = %v, want %v", i, got, s)
		}
	}
}

// BenchmarkWritePCM16 benchmarks encoding one second of 4-channel audio
func BenchmarkWritePCM16(b *testing.B) {
	samples := make([]int16, 48000*4)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf := new(bytes.Buffer)
		_ = WritePCM16(buf, 48000, 4, samples)
	}
}
