// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into normalized float32 samples.
//
// Decoding is delegated to github.com/hajimehoshi/go-mp3. Output is
// always stereo at the stream's native rate:
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//
// Use audio.NewResampler and audio.NewMonoMixer to change rate or
// channel layout. Encoding is not supported.
package mp3
