package compositor

import (
	"testing"

	"github.com/kpfaulkner/ocio-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillBuffer(mb *MemoryBuffer, pixel [4]float32) {
	r := mb.Rect()
	for y := r.YMin; y < r.YMax; y++ {
		for x := r.XMin; x < r.XMax; x++ {
			mb.WritePixel(x, y, pixel[:])
		}
	}
}

func newBlurFixture(t *testing.T, bboxValue float32) (*BokehBlurOperation, *MemoryBuffer) {
	t.Helper()
	const size = 16

	input, err := NewMemoryBuffer(Rect{XMax: size, YMax: size})
	require.NoError(t, err)
	fillBuffer(input, [4]float32{0.25, 0.5, 0.75, 1.0})

	bokeh, err := NewMemoryBuffer(Rect{XMax: 8, YMax: 8})
	require.NoError(t, err)
	fillBuffer(bokeh, [4]float32{1, 1, 1, 1})

	bbox := util.NewPlane[float32](size, size)
	bbox.Fill(bboxValue)

	op := NewBokehBlurOperation(size, size)
	op.SetInputs(input, bokeh, bbox)
	op.SetSize(25) // 25% of the largest dimension -> 4 pixel radius
	require.NoError(t, op.InitExecution())
	return op, input
}

func TestExecutePixelOutsideBoundingBoxPassesThrough(t *testing.T) {
	op, input := newBlurFixture(t, 0)

	input.WritePixel(3, 3, []float32{0.9, 0.1, 0.2, 0.5})

	var out [4]float32
	op.ExecutePixel(out[:], 3, 3, op.InitializeTileData(input.Rect()))
	assert.Equal(t, [4]float32{0.9, 0.1, 0.2, 0.5}, out)
}

func TestExecutePixelUniformInputStaysUniform(t *testing.T) {
	op, _ := newBlurFixture(t, 1)

	// a flat image convolved with any normalized bokeh stays flat
	var out [4]float32
	op.ExecutePixel(out[:], 8, 8, op.InitializeTileData(Rect{XMax: 16, YMax: 16}))
	assert.InDelta(t, 0.25, float64(out[0]), 1e-5)
	assert.InDelta(t, 0.5, float64(out[1]), 1e-5)
	assert.InDelta(t, 0.75, float64(out[2]), 1e-5)
	assert.InDelta(t, 1.0, float64(out[3]), 1e-5)
}

func TestExecutePixelZeroRadiusPassesThrough(t *testing.T) {
	op, input := newBlurFixture(t, 1)
	op.SetSize(0.1) // rounds down to a zero pixel radius

	input.WritePixel(5, 5, []float32{0.9, 0.1, 0.2, 0.5})

	var out [4]float32
	op.ExecutePixel(out[:], 5, 5, op.InitializeTileData(input.Rect()))
	assert.Equal(t, [4]float32{0.9, 0.1, 0.2, 0.5}, out)
}

func TestExecutePixelQualitySteps(t *testing.T) {
	op, _ := newBlurFixture(t, 1)
	op.SetQuality(QualityLow)

	// subsampling must still normalize to the flat input color
	var out [4]float32
	op.ExecutePixel(out[:], 8, 8, op.InitializeTileData(Rect{XMax: 16, YMax: 16}))
	assert.InDelta(t, 0.25, float64(out[0]), 1e-5)
	assert.InDelta(t, 1.0, float64(out[3]), 1e-5)
}

func TestDetermineDependingAreaOfInterest(t *testing.T) {
	op, _ := newBlurFixture(t, 1)

	area := op.DetermineDependingAreaOfInterest(Rect{XMin: 4, XMax: 8, YMin: 4, YMax: 8})
	assert.Equal(t, Rect{XMin: 0, XMax: 12, YMin: 0, YMax: 12}, area)
}

func TestInitExecutionValidation(t *testing.T) {
	op := NewBokehBlurOperation(16, 16)
	assert.Error(t, op.InitExecution())

	input, err := NewMemoryBuffer(Rect{XMax: 4, YMax: 4})
	require.NoError(t, err)
	bokeh, err := NewMemoryBuffer(Rect{XMax: 4, YMax: 4})
	require.NoError(t, err)
	op.SetInputs(input, bokeh, util.NewPlane[float32](4, 4))
	assert.Error(t, op.InitExecution()) // size never set

	op.SetSize(10)
	assert.NoError(t, op.InitExecution())
	assert.Equal(t, float32(2), op.bokehMidX)
	assert.Equal(t, float32(2), op.bokehDimension)

	op.DeinitExecution()
	assert.Error(t, op.InitExecution())
}

func TestQualityStep(t *testing.T) {
	assert.Equal(t, int32(1), QualityHigh.Step())
	assert.Equal(t, int32(2), QualityMedium.Step())
	assert.Equal(t, int32(3), QualityLow.Step())
}

func TestMemoryBuffer(t *testing.T) {
	mb, err := NewMemoryBuffer(Rect{XMin: 2, XMax: 4, YMin: 2, YMax: 4})
	require.NoError(t, err)

	mb.WritePixel(3, 3, []float32{1, 2, 3, 4})

	var out [4]float32
	mb.ReadNearest(out[:], 3, 3)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, out)

	// reads clamp to the rect
	mb.ReadNearest(out[:], 100, 100)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, out)

	// out-of-rect writes are dropped
	mb.WritePixel(10, 10, []float32{9, 9, 9, 9})
	mb.ReadNearest(out[:], 3, 3)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, out)

	_, err = NewMemoryBuffer(Rect{})
	assert.Error(t, err)
}

func TestMemoryBufferRelease(t *testing.T) {
	mb, err := NewMemoryBuffer(Rect{XMax: 4, YMax: 4})
	require.NoError(t, err)
	fillBuffer(mb, [4]float32{1, 1, 1, 1})
	mb.Release()
	assert.Nil(t, mb.Buffer())

	// A same-sized buffer allocated after Release starts zeroed.
	mb2, err := NewMemoryBuffer(Rect{XMax: 4, YMax: 4})
	require.NoError(t, err)
	var out [4]float32
	mb2.ReadNearest(out[:], 0, 0)
	assert.Equal(t, [4]float32{}, out)
}
