package util

import (
	"math"
)

// SignedPow raises the magnitude to the exponent and keeps the sign of the
// base, so negative channel values survive a gamma curve without going NaN.
func SignedPow(base float32, exponent float32) float32 {
	if base < 0 {
		return -float32(math.Pow(float64(-base), float64(exponent)))
	}
	return float32(math.Pow(float64(base), float64(exponent)))
}

// CompareFloats returns true if the absolute difference is smaller than
// absDiff (for numbers near zero) or the two values are fewer than ulpDiff
// representable float32 steps apart. Based on:
// https://randomascii.wordpress.com/2012/02/25/comparing-floating-point-numbers-2012-edition/
func CompareFloats(a float32, b float32, absDiff float32, ulpDiff int32) bool {
	if float32(math.Abs(float64(a-b))) < absDiff {
		return true
	}

	if (a < 0) != (b < 0) {
		return false
	}

	ulpA := int32(math.Float32bits(a))
	ulpB := int32(math.Float32bits(b))
	diff := ulpA - ulpB
	if diff < 0 {
		diff = -diff
	}
	return diff < ulpDiff
}

// SrgbToLinear is the standard sRGB electro-optical transfer function.
func SrgbToLinear(c float32) float32 {
	if c < 0.04045 {
		if c < 0 {
			return 0
		}
		return c * (1.0 / 12.92)
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearToSrgb is the inverse of SrgbToLinear.
func LinearToSrgb(c float32) float32 {
	if c < 0.0031308 {
		if c < 0 {
			return 0
		}
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1.0/2.4) - 0.055)
}
