package catalog

import (
	"testing"

	"github.com/kpfaulkner/ocio-go/testcommon"
	"github.com/kpfaulkner/ocio-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingApplier wraps an applier and records how often it runs, to pin
// down early termination.
type countingApplier struct {
	inner rgbApplier
	calls int
}

func (c *countingApplier) ApplyRGB(pixel []float32) {
	c.calls++
	c.inner.ApplyRGB(pixel)
}

// identityApplier leaves pixels untouched.
type identityApplier struct{}

func (identityApplier) ApplyRGB(pixel []float32) {}

// funcApplier applies the same scalar curve to every channel.
type funcApplier func(float32) float32

func (f funcApplier) ApplyRGB(pixel []float32) {
	pixel[0] = f(pixel[0])
	pixel[1] = f(pixel[1])
	pixel[2] = f(pixel[2])
}

func TestClassifyIdentityIsSceneLinear(t *testing.T) {
	linear, srgb := classifyProcessor(identityApplier{})
	assert.True(t, linear)
	assert.False(t, srgb)
}

func TestClassifySrgbCurve(t *testing.T) {
	linear, srgb := classifyProcessor(funcApplier(util.SrgbToLinear))
	assert.False(t, linear)
	assert.True(t, srgb)
}

func TestClassifyArbitraryGamma(t *testing.T) {
	linear, srgb := classifyProcessor(funcApplier(func(v float32) float32 {
		return util.SignedPow(v, 2.2)
	}))
	assert.False(t, linear)
	assert.False(t, srgb)
}

func TestClassifyCrosstalkStopsEarly(t *testing.T) {
	cfg := testcommon.GenerateTestConfig(t)

	cs := cfg.ColorSpace("Crosstalk")
	require.NotNil(t, cs)
	linear, srgb := IsBuiltinColorSpace(cfg, cs)
	assert.False(t, linear)
	assert.False(t, srgb)

	// the v=0 sample passes every check; the first nonzero sample trips the
	// crosstalk threshold and sampling stops
	counting := &countingApplier{inner: crosstalkApplier{}}
	linear, srgb = classifyProcessor(counting)
	assert.False(t, linear)
	assert.False(t, srgb)
	assert.Equal(t, 8, counting.calls)
}

// crosstalkApplier leaks 10% of red into green.
type crosstalkApplier struct{}

func (crosstalkApplier) ApplyRGB(pixel []float32) {
	pixel[1] += 0.1 * pixel[0]
}

func TestClassifyViaConfig(t *testing.T) {
	cfg := testcommon.GenerateTestConfig(t)

	// Linear is the reference itself
	linear, srgb := IsBuiltinColorSpace(cfg, cfg.ColorSpace("Linear"))
	assert.True(t, linear)
	assert.False(t, srgb)

	// sRGB decodes to scene linear through the exact sRGB curve
	linear, srgb = IsBuiltinColorSpace(cfg, cfg.ColorSpace("sRGB"))
	assert.False(t, linear)
	assert.True(t, srgb)

	// Film's 0.45 exponent is neither
	linear, srgb = IsBuiltinColorSpace(cfg, cfg.ColorSpace("Film"))
	assert.False(t, linear)
	assert.False(t, srgb)
}

func TestClassifyWithoutConversionPossible(t *testing.T) {
	cfg := configFromYAML(t, `
colorspaces:
  - {name: Orphan}
`)
	linear, srgb := IsBuiltinColorSpace(cfg, cfg.ColorSpace("Orphan"))
	assert.False(t, linear)
	assert.False(t, srgb)
}
