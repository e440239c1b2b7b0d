package util

import (
	"golang.org/x/exp/constraints"
)

// Plane is a 1D slice presented as a 2D per-pixel scalar grid. Used for
// single channel auxiliary buffers (bounding boxes, masks) where a full
// packed image descriptor would be overkill.
type Plane[T constraints.Ordered] struct {
	Width  int32
	Height int32
	Data   []T
}

// NewPlane creates a plane with the given dimensions.
// Note height is the first dimension, width is the second.
func NewPlane[T constraints.Ordered](height int32, width int32) *Plane[T] {
	return &Plane[T]{Width: width, Height: height, Data: make([]T, width*height)}
}

func NewPlaneWithContents[T constraints.Ordered](height int32, width int32, initialData [][]T) *Plane[T] {
	plane := NewPlane[T](height, width)
	for h := int32(0); h < height; h++ {
		copy(plane.Data[h*width:(h+1)*width], initialData[h])
	}
	return plane
}

func (p *Plane[T]) Get(y int32, x int32) T {
	return p.Data[y*p.Width+x]
}

func (p *Plane[T]) Set(y int32, x int32, value T) {
	p.Data[y*p.Width+x] = value
}

func (p *Plane[T]) Row(y int32) []T {
	return p.Data[y*p.Width : (y+1)*p.Width]
}

func (p *Plane[T]) Fill(value T) {
	for i := range p.Data {
		p.Data[i] = value
	}
}
