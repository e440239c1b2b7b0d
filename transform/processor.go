package transform

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/ocio-go/config"
	"github.com/kpfaulkner/ocio-go/util"
)

type opKind int

const (
	opMatrix opKind = iota
	opExponent
	opSrgbEncode
	opSrgbDecode
)

// op is one primitive stage of a compiled chain, always operating on an
// RGBA quadruple.
type op struct {
	kind   opKind
	m      [4][4]float32
	offset [4]float32
	exp    [4]float32
}

// Processor is a compiled, immutable chain. Building a new processor never
// touches previously compiled ones; a processor may be shared freely across
// goroutines.
type Processor struct {
	ops []op
}

// NewProcessor compiles a transform against a config. All or nothing: any
// unknown name or non-invertible step fails the whole compile.
func NewProcessor(cfg *config.Config, t Transform) (*Processor, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if t == nil {
		return nil, errors.New("nil transform")
	}
	var ops []op
	if err := t.resolve(cfg, &ops); err != nil {
		return nil, err
	}
	return &Processor{ops: ops}, nil
}

// NewProcessorBetween compiles a conversion between two named spaces or
// roles, the common case for probing and classification.
func NewProcessorBetween(cfg *config.Config, srcName string, dstName string) (*Processor, error) {
	return NewProcessor(cfg, &ColorSpaceTransform{Src: srcName, Dst: dstName})
}

func (p *Processor) NumOps() int {
	return len(p.ops)
}

// DefaultCPUProcessor binds the chain to the packed 32-bit float layout.
func (p *Processor) DefaultCPUProcessor() *CPUProcessor {
	return &CPUProcessor{ops: p.ops}
}

func appendToReferenceOps(cs *config.ColorSpace, ops *[]op) error {
	if len(cs.ToReference) > 0 {
		return appendStepOps(cs.ToReference, false, ops)
	}
	if len(cs.FromReference) > 0 {
		return appendStepOps(cs.FromReference, true, ops)
	}
	return nil
}

func appendFromReferenceOps(cs *config.ColorSpace, ops *[]op) error {
	if len(cs.FromReference) > 0 {
		return appendStepOps(cs.FromReference, false, ops)
	}
	if len(cs.ToReference) > 0 {
		return appendStepOps(cs.ToReference, true, ops)
	}
	return nil
}

// appendStepOps lowers declared profile steps into ops, inverting and
// reversing the sequence when invert is set.
func appendStepOps(steps []config.TransformStep, invert bool, ops *[]op) error {
	if !invert {
		for _, step := range steps {
			o, err := stepToOp(step)
			if err != nil {
				return err
			}
			*ops = append(*ops, o)
		}
		return nil
	}
	for i := len(steps) - 1; i >= 0; i-- {
		o, err := stepToOp(steps[i])
		if err != nil {
			return err
		}
		inv, err := invertOp(o)
		if err != nil {
			return err
		}
		*ops = append(*ops, inv)
	}
	return nil
}

func stepToOp(step config.TransformStep) (op, error) {
	switch step.Type {
	case config.StepMatrix:
		o := op{kind: opMatrix}
		switch len(step.Matrix) {
		case 9:
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					o.m[i][j] = step.Matrix[i*3+j]
				}
			}
			o.m[3][3] = 1
		case 16:
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					o.m[i][j] = step.Matrix[i*4+j]
				}
			}
		default:
			return op{}, fmt.Errorf("matrix step needs 9 or 16 values, got %d", len(step.Matrix))
		}
		if step.Offset != nil {
			copy(o.offset[:], step.Offset)
		}
		return o, nil
	case config.StepExponent:
		o := op{kind: opExponent}
		copy(o.exp[:], step.Value)
		return o, nil
	case config.StepSrgbEncode:
		return op{kind: opSrgbEncode}, nil
	case config.StepSrgbDecode:
		return op{kind: opSrgbDecode}, nil
	}
	return op{}, fmt.Errorf("unknown transform step type %q", step.Type)
}

func invertOp(o op) (op, error) {
	switch o.kind {
	case opMatrix:
		return invertMatrixOp(o)
	case opExponent:
		inv := op{kind: opExponent}
		for i, e := range o.exp {
			if e == 0 {
				return op{}, errors.New("exponent step with zero channel is not invertible")
			}
			inv.exp[i] = 1.0 / e
		}
		return inv, nil
	case opSrgbEncode:
		return op{kind: opSrgbDecode}, nil
	case opSrgbDecode:
		return op{kind: opSrgbEncode}, nil
	}
	return op{}, errors.New("unknown op kind")
}

// invertMatrixOp only handles matrices whose fourth row and column leave
// alpha alone, which is every matrix a profile step can declare.
func invertMatrixOp(o op) (op, error) {
	if o.m[3][0] != 0 || o.m[3][1] != 0 || o.m[3][2] != 0 || o.m[3][3] != 1 ||
		o.m[0][3] != 0 || o.m[1][3] != 0 || o.m[2][3] != 0 || o.offset[3] != 0 {
		return op{}, errors.New("matrix step touching alpha is not invertible")
	}
	m3 := util.MakeMatrix2D[float32](3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m3[i][j] = o.m[i][j]
		}
	}
	inv3 := util.InvertMatrix3x3(m3)
	if inv3 == nil {
		return op{}, errors.New("singular matrix step is not invertible")
	}
	inv := op{kind: opMatrix}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.m[i][j] = inv3[i][j]
		}
	}
	inv.m[3][3] = 1
	// x = M*y + b  =>  y = Minv*x - Minv*b
	off, err := util.MatrixVectorMultiply(inv3, o.offset[:3])
	if err != nil {
		return op{}, err
	}
	for i := 0; i < 3; i++ {
		inv.offset[i] = -off[i]
	}
	return inv, nil
}
