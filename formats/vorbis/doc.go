// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into normalized float32
// samples, delegating to github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	src, err := decoder.Decode(file)
//
// The source reports the stream's native channel count and sample rate.
// Encoding is not supported.
package vorbis
