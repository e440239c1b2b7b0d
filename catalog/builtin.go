package catalog

import (
	"math"

	"github.com/kpfaulkner/ocio-go/config"
	"github.com/kpfaulkner/ocio-go/transform"
	"github.com/kpfaulkner/ocio-go/util"
)

// rgbApplier is the slice of the processor surface the probe needs.
type rgbApplier interface {
	ApplyRGB(pixel []float32)
}

// IsBuiltinColorSpace samples the conversion from a space to scene linear
// at 256 graduated intensities and reports whether the space behaves as
// scene linear and/or as sRGB encoded. A space with no conversion to scene
// linear is neither; that case is silently not an error.
func IsBuiltinColorSpace(cfg *config.Config, cs *config.ColorSpace) (isSceneLinear bool, isSrgb bool) {
	proc, err := transform.NewProcessorBetween(cfg, cs.Name, config.RoleSceneLinear)
	if err != nil {
		return false, false
	}
	return classifyProcessor(proc.DefaultCPUProcessor())
}

func classifyProcessor(proc rgbApplier) (isSceneLinear bool, isSrgb bool) {
	isSceneLinear = true
	isSrgb = true
	for i := 0; i < 256; i++ {
		v := float32(i) / 255.0

		cR := []float32{v, 0, 0}
		cG := []float32{0, v, 0}
		cB := []float32{0, 0, v}
		cW := []float32{v, v, v}
		proc.ApplyRGB(cR)
		proc.ApplyRGB(cG)
		proc.ApplyRGB(cB)
		proc.ApplyRGB(cW)

		// Make sure that there is no channel crosstalk.
		if abs32(cR[1]) > 1e-5 || abs32(cR[2]) > 1e-5 ||
			abs32(cG[0]) > 1e-5 || abs32(cG[2]) > 1e-5 ||
			abs32(cB[0]) > 1e-5 || abs32(cB[1]) > 1e-5 {
			return false, false
		}
		// Make sure that the three primaries combine linearly.
		if !util.CompareFloats(cR[0], cW[0], 1e-6, 64) ||
			!util.CompareFloats(cG[1], cW[1], 1e-6, 64) ||
			!util.CompareFloats(cB[2], cW[2], 1e-6, 64) {
			return false, false
		}
		// Make sure that the three channels behave identically.
		if !util.CompareFloats(cW[0], cW[1], 1e-6, 64) ||
			!util.CompareFloats(cW[1], cW[2], 1e-6, 64) {
			return false, false
		}

		outV := (cW[0] + cW[1] + cW[2]) * (1.0 / 3.0)
		if !util.CompareFloats(v, outV, 1e-6, 64) {
			isSceneLinear = false
		}
		if !util.CompareFloats(util.SrgbToLinear(v), outV, 1e-6, 64) {
			isSrgb = false
		}
	}
	return isSceneLinear, isSrgb
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
