// Package compositor holds the tile-based node operations that consume the
// packed pixel model; scheduling across tiles is the caller's business.
package compositor

import (
	"fmt"

	"github.com/kpfaulkner/ocio-go/util"
)

const numChannelsColor = 4

// tilePool recycles backing storage across tiles of the same size.
var tilePool = util.NewFloatBufferPool()

// Rect is a half-open pixel region [XMin, XMax) x [YMin, YMax).
type Rect struct {
	XMin int32
	XMax int32
	YMin int32
	YMax int32
}

func (r Rect) Width() int32 {
	return r.XMax - r.XMin
}

func (r Rect) Height() int32 {
	return r.YMax - r.YMin
}

func (r Rect) Contains(x int32, y int32) bool {
	return x >= r.XMin && x < r.XMax && y >= r.YMin && y < r.YMax
}

// MemoryBuffer is a rect-addressed RGBA float32 tile.
type MemoryBuffer struct {
	rect   Rect
	buffer []float32
}

func NewMemoryBuffer(rect Rect) (*MemoryBuffer, error) {
	if rect.Width() <= 0 || rect.Height() <= 0 {
		return nil, fmt.Errorf("invalid buffer rect %+v", rect)
	}
	return &MemoryBuffer{
		rect:   rect,
		buffer: tilePool.Get(int(rect.Width() * rect.Height() * numChannelsColor)),
	}, nil
}

// Release hands the backing storage back to the tile pool. The buffer must
// not be used afterwards.
func (mb *MemoryBuffer) Release() {
	tilePool.Put(mb.buffer)
	mb.buffer = nil
}

func (mb *MemoryBuffer) Rect() Rect {
	return mb.rect
}

func (mb *MemoryBuffer) Buffer() []float32 {
	return mb.buffer
}

func (mb *MemoryBuffer) index(x int32, y int32) int32 {
	return ((y-mb.rect.YMin)*mb.rect.Width() + (x - mb.rect.XMin)) * numChannelsColor
}

// ReadNearest copies the pixel at the nearest integer coordinate into out,
// clamping to the buffer edges.
func (mb *MemoryBuffer) ReadNearest(out []float32, x float32, y float32) {
	xi := clamp(int32(x+0.5), mb.rect.XMin, mb.rect.XMax-1)
	yi := clamp(int32(y+0.5), mb.rect.YMin, mb.rect.YMax-1)
	i := mb.index(xi, yi)
	copy(out[:numChannelsColor], mb.buffer[i:i+numChannelsColor])
}

// WritePixel stores an RGBA value; out-of-rect writes are dropped.
func (mb *MemoryBuffer) WritePixel(x int32, y int32, pixel []float32) {
	if !mb.rect.Contains(x, y) {
		return
	}
	i := mb.index(x, y)
	copy(mb.buffer[i:i+numChannelsColor], pixel[:numChannelsColor])
}

func clamp(v int32, lo int32, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
