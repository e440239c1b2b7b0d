package catalog

import (
	"github.com/kpfaulkner/ocio-go/config"
	"github.com/kpfaulkner/ocio-go/transform"
	"github.com/kpfaulkner/ocio-go/util"
)

// ITU-BT.709 XYZ to linear RGB, the fallback when a profile lacks the
// roles needed to derive the matrix itself.
var xyzToLinearSrgb = [][]float32{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// CIE XYZ to ACES2065-1, the space the standard aces_interchange role is
// defined as.
var xyzToAces = [][]float32{
	{1.0498110175, 0.0, -0.0000974845},
	{-0.4959030231, 1.3733130458, 0.0982400361},
	{0.0, 0.0, 0.9912520182},
}

// toSceneLinearMatrix derives the 3x3 matrix converting a named space into
// the scene linear role by pushing the three basis vectors through the
// conversion; the transformed vectors form the columns of the matrix.
func (c *Catalog) toSceneLinearMatrix(colorspace string) ([][]float32, bool) {
	proc, err := transform.NewProcessorBetween(c.cfg, colorspace, config.RoleSceneLinear)
	if err != nil {
		config.ReportError(err)
		return nil, false
	}
	cpu := proc.DefaultCPUProcessor()

	m := util.MatrixIdentity(3)
	for col := 0; col < 3; col++ {
		basis := []float32{0, 0, 0}
		basis[col] = 1
		cpu.ApplyRGB(basis)
		m[0][col] = basis[0]
		m[1][col] = basis[1]
		m[2][col] = basis[2]
	}
	return m, true
}

// XYZToRGB returns the 3x3 matrix mapping CIE XYZ to the profile's scene
// linear RGB basis, defaulting to ITU-BT.709 when the profile has no
// scene_linear role or the derivation fails.
func (c *Catalog) XYZToRGB() [][]float32 {
	xyzToRGB := util.MakeMatrix2D[float32](3, 3)
	for i := range xyzToLinearSrgb {
		copy(xyzToRGB[i], xyzToLinearSrgb[i])
	}

	if !c.cfg.HasRole(config.RoleSceneLinear) {
		return xyzToRGB
	}

	if c.cfg.HasRole(config.RoleACESInterchange) {
		// Standard OpenColorIO role, defined as ACES2065-1.
		if acesToRGB, ok := c.toSceneLinearMatrix(config.RoleACESInterchange); ok {
			if composed, err := util.MatrixMatrixMultiply(acesToRGB, xyzToAces); err == nil {
				return composed
			}
		}
	} else if c.cfg.HasRole("XYZ") {
		// Custom role used before the standard existed.
		if m, ok := c.toSceneLinearMatrix("XXYZ"); ok {
			return m
		}
	}

	return xyzToRGB
}
