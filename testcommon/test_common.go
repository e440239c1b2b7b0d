package testcommon

import (
	"testing"

	"github.com/kpfaulkner/ocio-go/config"
)

// TestProfileYAML is a small but complete profile exercising roles, active
// display/view lists, looks and every transform step kind. The active
// display list is deliberately not in alphabetical order.
const TestProfileYAML = `
ocio_profile_version: 2
description: test profile

roles:
  scene_linear: Linear
  default: Linear

active_displays: display_b, display_a
active_views: Filmic, Standard

luma: [0.2126, 0.7152, 0.0722]

displays:
  display_a:
    views:
      - {name: Standard, colorspace: sRGB}
      - {name: Raw, colorspace: Raw}
  display_b:
    views:
      - {name: filmic, colorspace: Film}
      - {name: Standard, colorspace: sRGB}

looks:
  - name: Punchy
    process_space: Linear
    transform:
      - {type: exponent, value: [1.2, 1.2, 1.2, 1.0]}

colorspaces:
  - name: Linear
    family: linear
    description: scene linear reference space
  - name: sRGB
    family: display
    from_reference:
      - {type: srgb_encode}
  - name: Film
    family: rrt
    from_reference:
      - {type: exponent, value: [0.45, 0.45, 0.45, 1.0]}
  - name: Raw
    family: raw
    isdata: true
  - name: Half
    family: linear
    to_reference:
      - {type: matrix, matrix: [0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5]}
  - name: Crosstalk
    family: misc
    to_reference:
      - {type: matrix, matrix: [0.9, 0.1, 0, 0.1, 0.9, 0, 0, 0, 1]}
`

// GenerateTestConfig parses TestProfileYAML, failing the test on error. It
// also clears the active display/view override variables so defaulting
// behavior is deterministic.
func GenerateTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv(config.EnvActiveDisplays, "")
	t.Setenv(config.EnvActiveViews, "")
	cfg, err := config.CreateFromBytes([]byte(TestProfileYAML))
	if err != nil {
		t.Fatalf("error parsing test profile: %v", err)
	}
	return cfg
}
