package transform

import (
	"github.com/kpfaulkner/ocio-go/config"
)

// CreateDisplayGroup assembles the display chain for an image in the input
// space: optional exposure scale (applied in scene linear), optional look,
// the display/view mapping and an optional trailing gamma.
func CreateDisplayGroup(cfg *config.Config, input string, view string, display string,
	look string, scale float32, exponent float32) *GroupTransform {

	group := NewGroupTransform()

	// Exposure.
	if scale != 1.0 {
		// Always apply exposure in scene linear.
		group.AppendTransform(&ColorSpaceTransform{Src: input, Dst: config.RoleSceneLinear})

		// Make further transforms aware of the color space change.
		input = config.RoleSceneLinear

		group.AppendTransform(NewScaleMatrixTransform(scale))
	}

	// Add look transform.
	if len(look) > 0 {
		lookOutput := LooksResultColorSpace(cfg, look)

		group.AppendTransform(&LookTransform{Src: input, Dst: lookOutput, Looks: look})

		// Make further transforms aware of the color space change.
		input = lookOutput
	}

	// Add view and display transform. The view's own look is bypassed when
	// a look was already baked in above, so it never applies twice.
	group.AppendTransform(&DisplayViewTransform{
		Src:         input,
		Display:     display,
		View:        view,
		LooksBypass: len(look) > 0,
	})

	// Gamma.
	if exponent != 1.0 {
		group.AppendTransform(&ExponentTransform{
			Value: [4]float32{exponent, exponent, exponent, 1.0},
		})
	}

	return group
}

// CreateDisplayProcessor compiles the display chain. All or nothing: a nil
// processor and an error come back when any referenced name is unknown or a
// step cannot be composed.
func CreateDisplayProcessor(cfg *config.Config, input string, view string, display string,
	look string, scale float32, exponent float32) (*Processor, error) {

	group := CreateDisplayGroup(cfg, input, view, display, look, scale, exponent)
	return NewProcessor(cfg, group)
}
