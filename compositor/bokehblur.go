package compositor

import (
	"errors"

	"github.com/kpfaulkner/ocio-go/util"
)

// Quality selects how many input pixels the blur skips per accumulated
// sample.
type Quality int

const (
	QualityHigh Quality = iota
	QualityMedium
	QualityLow
)

func (q Quality) Step() int32 {
	switch q {
	case QualityMedium:
		return 2
	case QualityLow:
		return 3
	}
	return 1
}

// BokehBlurOperation convolves an input tile with a bokeh shape image,
// gated by a single-channel bounding box plane. The external scheduler
// supplies the input tile, the bokeh image and the bounding box; the
// operation only answers per-pixel pulls.
type BokehBlurOperation struct {
	input       *MemoryBuffer
	bokeh       *MemoryBuffer
	boundingBox *util.Plane[float32]

	width  int32
	height int32

	size          float32
	sizeAvailable bool
	quality       Quality

	bokehMidX      float32
	bokehMidY      float32
	bokehDimension float32
}

func NewBokehBlurOperation(width int32, height int32) *BokehBlurOperation {
	return &BokehBlurOperation{
		width:   width,
		height:  height,
		size:    1.0,
		quality: QualityHigh,
	}
}

func (op *BokehBlurOperation) SetSize(size float32) {
	op.size = size
	op.sizeAvailable = true
}

func (op *BokehBlurOperation) SetQuality(quality Quality) {
	op.quality = quality
}

func (op *BokehBlurOperation) SetInputs(input *MemoryBuffer, bokeh *MemoryBuffer,
	boundingBox *util.Plane[float32]) {
	op.input = input
	op.bokeh = bokeh
	op.boundingBox = boundingBox
}

// InitExecution derives the bokeh image center and dimension used to map
// blur-window offsets onto bokeh sample positions.
func (op *BokehBlurOperation) InitExecution() error {
	if op.input == nil || op.bokeh == nil || op.boundingBox == nil {
		return errors.New("bokeh blur inputs not connected")
	}
	if !op.sizeAvailable {
		return errors.New("bokeh blur size not set")
	}
	bokehRect := op.bokeh.Rect()
	bokehWidth := float32(bokehRect.Width())
	bokehHeight := float32(bokehRect.Height())
	dimension := bokehWidth
	if bokehHeight < dimension {
		dimension = bokehHeight
	}
	op.bokehMidX = bokehWidth / 2.0
	op.bokehMidY = bokehHeight / 2.0
	op.bokehDimension = dimension / 2.0
	return nil
}

func (op *BokehBlurOperation) DeinitExecution() {
	op.input = nil
	op.bokeh = nil
	op.boundingBox = nil
}

// InitializeTileData hands the scheduler the buffer backing a tile; the
// whole input is shared, so every tile maps onto the same buffer.
func (op *BokehBlurOperation) InitializeTileData(rect Rect) *MemoryBuffer {
	return op.input
}

func (op *BokehBlurOperation) pixelSize() int32 {
	maxDim := op.width
	if op.height > maxDim {
		maxDim = op.height
	}
	return int32(op.size * float32(maxDim) / 100.0)
}

// ExecutePixel computes one output pixel: outside the bounding box the
// input passes through; inside, bokeh-weighted neighbors accumulate and
// normalize by the accumulated weight.
func (op *BokehBlurOperation) ExecutePixel(output []float32, x int32, y int32, data *MemoryBuffer) {
	if op.boundingBox.Get(clamp(y, 0, op.boundingBox.Height-1), clamp(x, 0, op.boundingBox.Width-1)) <= 0.0 {
		data.ReadNearest(output, float32(x), float32(y))
		return
	}

	pixelSize := op.pixelSize()
	if pixelSize == 0 {
		data.ReadNearest(output, float32(x), float32(y))
		return
	}

	rect := data.Rect()
	minX := clamp(x-pixelSize, rect.XMin, rect.XMax)
	maxX := clamp(x+pixelSize, rect.XMin, rect.XMax)
	minY := clamp(y-pixelSize, rect.YMin, rect.YMax)
	maxY := clamp(y+pixelSize, rect.YMin, rect.YMax)

	step := op.quality.Step()
	m := op.bokehDimension / float32(pixelSize)

	var colorAccum [4]float32
	var multiplierAccum [4]float32
	var bokeh [4]float32

	buffer := data.Buffer()
	bufferWidth := rect.Width()
	for ny := minY; ny < maxY; ny += step {
		rowIndex := (ny - rect.YMin) * bufferWidth * numChannelsColor
		for nx := minX; nx < maxX; nx += step {
			bufferIndex := rowIndex + (nx-rect.XMin)*numChannelsColor
			u := op.bokehMidX - float32(nx-x)*m
			v := op.bokehMidY - float32(ny-y)*m
			op.bokeh.ReadNearest(bokeh[:], u, v)
			for c := 0; c < 4; c++ {
				colorAccum[c] += bokeh[c] * buffer[bufferIndex+int32(c)]
				multiplierAccum[c] += bokeh[c]
			}
		}
	}

	for c := 0; c < 4; c++ {
		if multiplierAccum[c] != 0 {
			output[c] = colorAccum[c] / multiplierAccum[c]
		} else {
			output[c] = 0
		}
	}
}

// DetermineDependingAreaOfInterest expands an output region by the blur
// radius so the scheduler fetches enough input.
func (op *BokehBlurOperation) DetermineDependingAreaOfInterest(input Rect) Rect {
	pixelSize := op.pixelSize()
	return Rect{
		XMin: input.XMin - pixelSize,
		XMax: input.XMax + pixelSize,
		YMin: input.YMin - pixelSize,
		YMax: input.YMax + pixelSize,
	}
}
