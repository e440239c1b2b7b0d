package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
ocio_profile_version: 2
roles:
  scene_linear: Linear
  default: Linear
active_displays: display_b, display_a
active_views: Filmic, Standard
luma: [0.3, 0.6, 0.1]
displays:
  display_a:
    views:
      - {name: Standard, colorspace: sRGB}
  display_b:
    default_view: Standard
    views:
      - {name: Filmic, colorspace: sRGB}
      - {name: Standard, colorspace: sRGB}
looks:
  - name: Punchy
    process_space: Linear
    transform:
      - {type: exponent, value: [1.2, 1.2, 1.2, 1.0]}
colorspaces:
  - name: Linear
    family: linear
  - name: sRGB
    family: display
    from_reference:
      - {type: srgb_encode}
`

func mustConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv(EnvActiveDisplays, "")
	t.Setenv(EnvActiveViews, "")
	cfg, err := CreateFromBytes([]byte(testYAML))
	require.NoError(t, err)
	return cfg
}

func TestCreateFromBytes(t *testing.T) {
	cfg := mustConfig(t)

	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, 2, cfg.NumColorSpaces())
	assert.Equal(t, "Linear", cfg.ColorSpaceNameByIndex(0))
	assert.Equal(t, "", cfg.ColorSpaceNameByIndex(5))
	assert.Equal(t, 1, cfg.NumLooks())
	assert.Equal(t, "Punchy", cfg.LookNameByIndex(0))
}

func TestCreateFromBytesMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: ": : :"},
		{name: "no colorspaces", yaml: "ocio_profile_version: 2"},
		{
			name: "role points nowhere",
			yaml: "roles: {scene_linear: Missing}\ncolorspaces:\n  - {name: Linear}",
		},
		{
			name: "view points nowhere",
			yaml: "displays:\n  d:\n    views:\n      - {name: V, colorspace: Missing}\ncolorspaces:\n  - {name: Linear}",
		},
		{
			name: "bad step type",
			yaml: "colorspaces:\n  - name: X\n    to_reference:\n      - {type: wobble}",
		},
		{
			name: "bad matrix size",
			yaml: "colorspaces:\n  - name: X\n    to_reference:\n      - {type: matrix, matrix: [1, 2]}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateFromBytes([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCreateFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ocio")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))

	cfg, err := CreateFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.NumColorSpaces())

	t.Setenv(EnvConfigPath, path)
	cfg, err = CreateFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.NumColorSpaces())

	t.Setenv(EnvConfigPath, "")
	_, err = CreateFromEnv()
	assert.Error(t, err)

	_, err = CreateFromFile(filepath.Join(dir, "nope.ocio"))
	assert.Error(t, err)
}

func TestColorSpaceLookup(t *testing.T) {
	cfg := mustConfig(t)

	require.NotNil(t, cfg.ColorSpace("sRGB"))
	assert.Equal(t, "display", cfg.ColorSpace("sRGB").Family)

	// roles resolve to their target space
	linear := cfg.ColorSpace("scene_linear")
	require.NotNil(t, linear)
	assert.Equal(t, "Linear", linear.Name)

	assert.Nil(t, cfg.ColorSpace("Missing"))
	assert.Equal(t, -1, cfg.IndexForColorSpace("Missing"))
	assert.Equal(t, 0, cfg.IndexForColorSpace("scene_linear"))
	assert.True(t, cfg.HasRole("scene_linear"))
	assert.False(t, cfg.HasRole("aces_interchange"))
}

func TestNaiveDefaultDisplayIsAlphabetical(t *testing.T) {
	cfg := mustConfig(t)

	// The profile's own resolution sorts the active list; the catalog layer
	// is responsible for first-entry semantics.
	assert.Equal(t, "display_a", cfg.DefaultDisplay())
}

func TestDefaultDisplayHonorsOverride(t *testing.T) {
	cfg := mustConfig(t)

	t.Setenv(EnvActiveDisplays, "display_b")
	assert.Equal(t, "display_b", cfg.DefaultDisplay())
}

func TestViews(t *testing.T) {
	cfg := mustConfig(t)

	assert.Equal(t, 2, cfg.NumViews("display_b"))
	assert.Equal(t, "Filmic", cfg.ViewByIndex("display_b", 0))
	assert.Equal(t, "", cfg.ViewByIndex("display_b", 9))
	assert.Equal(t, 0, cfg.NumViews("missing"))

	// case-insensitive view lookup
	v := cfg.View("display_b", "fIlMiC")
	require.NotNil(t, v)
	assert.Equal(t, "Filmic", v.Name)

	assert.Equal(t, "sRGB", cfg.DisplayColorSpaceName("display_a", "Standard"))
	assert.Equal(t, "", cfg.DisplayColorSpaceName("display_a", "Missing"))

	assert.Equal(t, "Standard", cfg.DefaultView("display_b"))
	assert.Equal(t, "", cfg.DefaultView("missing"))
}

func TestDefaultLumaCoefs(t *testing.T) {
	cfg := mustConfig(t)
	assert.Equal(t, [3]float32{0.3, 0.6, 0.1}, cfg.DefaultLumaCoefs())

	// fails closed to Rec.709 when the profile declares none
	bare, err := CreateFromBytes([]byte("colorspaces:\n  - {name: Linear}"))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.2126, 0.7152, 0.0722}, bare.DefaultLumaCoefs())
}
