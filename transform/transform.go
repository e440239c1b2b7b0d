// Package transform assembles ordered color operations into compiled,
// immutable processors that can be applied to float pixel data.
package transform

import (
	"fmt"

	"github.com/kpfaulkner/ocio-go/config"
)

// Transform is one composable operation of a chain. Concrete transforms
// resolve themselves against a config into primitive ops at compile time.
type Transform interface {
	resolve(cfg *config.Config, ops *[]op) error
}

// ColorSpaceTransform converts between two named spaces (or roles) by going
// through the config's reference space. Data spaces pass through untouched.
type ColorSpaceTransform struct {
	Src string
	Dst string
}

func (ct *ColorSpaceTransform) resolve(cfg *config.Config, ops *[]op) error {
	src := cfg.ColorSpace(ct.Src)
	if src == nil {
		return fmt.Errorf("unknown colorspace %q", ct.Src)
	}
	dst := cfg.ColorSpace(ct.Dst)
	if dst == nil {
		return fmt.Errorf("unknown colorspace %q", ct.Dst)
	}
	if src.IsData || dst.IsData || src.Name == dst.Name {
		return nil
	}
	if err := appendToReferenceOps(src, ops); err != nil {
		return err
	}
	return appendFromReferenceOps(dst, ops)
}

// MatrixTransform applies a 4x4 row-major matrix plus offset.
type MatrixTransform struct {
	Matrix [16]float32
	Offset [4]float32
}

func (mt *MatrixTransform) resolve(cfg *config.Config, ops *[]op) error {
	o := op{kind: opMatrix, offset: mt.Offset}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			o.m[i][j] = mt.Matrix[i*4+j]
		}
	}
	*ops = append(*ops, o)
	return nil
}

// NewScaleMatrixTransform builds the diagonal (scale,scale,scale,1) matrix
// used for exposure adjustment in scene linear space.
func NewScaleMatrixTransform(scale float32) *MatrixTransform {
	return &MatrixTransform{Matrix: [16]float32{
		scale, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, scale, 0,
		0, 0, 0, 1,
	}}
}

// ExponentTransform raises each channel to its own power.
type ExponentTransform struct {
	Value [4]float32
}

func (et *ExponentTransform) resolve(cfg *config.Config, ops *[]op) error {
	*ops = append(*ops, op{kind: opExponent, exp: et.Value})
	return nil
}

// LookTransform converts into the look's process space, applies the look's
// own transform (unless bypassed) and converts on to Dst.
type LookTransform struct {
	Src         string
	Dst         string
	Looks       string
	LooksBypass bool
}

func (lt *LookTransform) resolve(cfg *config.Config, ops *[]op) error {
	look := cfg.Look(lt.Looks)
	if look == nil {
		return fmt.Errorf("unknown look %q", lt.Looks)
	}
	in := &ColorSpaceTransform{Src: lt.Src, Dst: look.ProcessSpace}
	if err := in.resolve(cfg, ops); err != nil {
		return err
	}
	if !lt.LooksBypass {
		if err := appendStepOps(look.Transform, false, ops); err != nil {
			return fmt.Errorf("look %q: %w", lt.Looks, err)
		}
	}
	out := &ColorSpaceTransform{Src: look.ProcessSpace, Dst: lt.Dst}
	return out.resolve(cfg, ops)
}

// LooksResultColorSpace reports the space a look's output lands in, or ""
// when the look is unknown.
func LooksResultColorSpace(cfg *config.Config, look string) string {
	l := cfg.Look(look)
	if l == nil {
		return ""
	}
	return l.ProcessSpace
}

// DisplayViewTransform maps from Src to the target space of a display/view
// pair, applying any view-level look unless LooksBypass is set.
type DisplayViewTransform struct {
	Src         string
	Display     string
	View        string
	LooksBypass bool
}

func (dt *DisplayViewTransform) resolve(cfg *config.Config, ops *[]op) error {
	view := cfg.View(dt.Display, dt.View)
	if view == nil {
		return fmt.Errorf("unknown view %q of display %q", dt.View, dt.Display)
	}
	if view.Look != "" && !dt.LooksBypass {
		lt := &LookTransform{Src: dt.Src, Dst: view.ColorSpace, Looks: view.Look}
		return lt.resolve(cfg, ops)
	}
	ct := &ColorSpaceTransform{Src: dt.Src, Dst: view.ColorSpace}
	return ct.resolve(cfg, ops)
}

// GroupTransform is an ordered sequence of transforms.
type GroupTransform struct {
	transforms []Transform
}

func NewGroupTransform() *GroupTransform {
	return &GroupTransform{}
}

func (gt *GroupTransform) AppendTransform(t Transform) {
	gt.transforms = append(gt.transforms, t)
}

func (gt *GroupTransform) NumTransforms() int {
	return len(gt.transforms)
}

func (gt *GroupTransform) TransformByIndex(index int) Transform {
	if index < 0 || index >= len(gt.transforms) {
		return nil
	}
	return gt.transforms[index]
}

func (gt *GroupTransform) resolve(cfg *config.Config, ops *[]op) error {
	for _, t := range gt.transforms {
		if err := t.resolve(cfg, ops); err != nil {
			return err
		}
	}
	return nil
}
