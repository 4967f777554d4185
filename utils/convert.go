// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// to [-1, 1] first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1.0 does not overflow int16
	return int16(x * 32767.0)
}

// Float64ToInt16 is Float32ToInt16 for float64 samples.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float in
// [-1, 1). The divisor 32768 matches the decoders, so a full-scale
// negative sample maps to exactly -1.0.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCMFullScale returns the divisor that normalizes integer PCM of the
// given bit depth to [-1, 1). Unknown depths fall back to 16-bit.
func PCMFullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
