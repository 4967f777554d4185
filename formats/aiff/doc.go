// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into normalized float32 samples,
// delegating to github.com/go-audio/aiff. PCM bit depths of 8, 16, 24
// and 32 are supported. Encoding is not supported.
package aiff
