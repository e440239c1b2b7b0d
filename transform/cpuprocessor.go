package transform

import (
	"github.com/kpfaulkner/ocio-go/util"
)

// CPUProcessor is a Processor bound to the packed float32 layout. It holds
// no per-call state; every Apply* method is reentrant.
type CPUProcessor struct {
	ops []op
}

func (cp *CPUProcessor) applyQuad(q *[4]float32) {
	for i := range cp.ops {
		o := &cp.ops[i]
		switch o.kind {
		case opMatrix:
			r := o.m[0][0]*q[0] + o.m[0][1]*q[1] + o.m[0][2]*q[2] + o.m[0][3]*q[3] + o.offset[0]
			g := o.m[1][0]*q[0] + o.m[1][1]*q[1] + o.m[1][2]*q[2] + o.m[1][3]*q[3] + o.offset[1]
			b := o.m[2][0]*q[0] + o.m[2][1]*q[1] + o.m[2][2]*q[2] + o.m[2][3]*q[3] + o.offset[2]
			a := o.m[3][0]*q[0] + o.m[3][1]*q[1] + o.m[3][2]*q[2] + o.m[3][3]*q[3] + o.offset[3]
			q[0], q[1], q[2], q[3] = r, g, b, a
		case opExponent:
			q[0] = util.SignedPow(q[0], o.exp[0])
			q[1] = util.SignedPow(q[1], o.exp[1])
			q[2] = util.SignedPow(q[2], o.exp[2])
			q[3] = util.SignedPow(q[3], o.exp[3])
		case opSrgbEncode:
			q[0] = util.LinearToSrgb(q[0])
			q[1] = util.LinearToSrgb(q[1])
			q[2] = util.LinearToSrgb(q[2])
		case opSrgbDecode:
			q[0] = util.SrgbToLinear(q[0])
			q[1] = util.SrgbToLinear(q[1])
			q[2] = util.SrgbToLinear(q[2])
		}
	}
}

// ApplyRGB transforms three channels in place, treating alpha as opaque.
func (cp *CPUProcessor) ApplyRGB(pixel []float32) {
	q := [4]float32{pixel[0], pixel[1], pixel[2], 1}
	cp.applyQuad(&q)
	pixel[0], pixel[1], pixel[2] = q[0], q[1], q[2]
}

// ApplyRGBA transforms four channels in place, alpha included.
func (cp *CPUProcessor) ApplyRGBA(pixel []float32) {
	q := [4]float32{pixel[0], pixel[1], pixel[2], pixel[3]}
	cp.applyQuad(&q)
	pixel[0], pixel[1], pixel[2], pixel[3] = q[0], q[1], q[2], q[3]
}

// ApplyRGBAPredivide un-premultiplies before the transform and restores the
// original alpha weighting afterwards. Color transforms are defined on
// straight color; applying them to premultiplied values would distort the
// result by the alpha weight.
func (cp *CPUProcessor) ApplyRGBAPredivide(pixel []float32) {
	if pixel[3] == 1.0 || pixel[3] == 0.0 {
		cp.ApplyRGBA(pixel)
		return
	}

	alpha := pixel[3]
	invAlpha := 1.0 / alpha

	pixel[0] *= invAlpha
	pixel[1] *= invAlpha
	pixel[2] *= invAlpha

	cp.ApplyRGBA(pixel)

	pixel[0] *= alpha
	pixel[1] *= alpha
	pixel[2] *= alpha
}
