// Package image describes packed float pixel buffers owned by the caller.
package image

import (
	"errors"
	"fmt"
)

// AutoStride lets the descriptor derive tight packing from the dimensions.
const AutoStride int32 = 0

const bytesPerFloat = 4

// PackedImage is a view over caller owned float32 pixel memory. The view
// never copies or owns the memory; the caller must keep it alive for the
// duration of any apply call. Strides are given in bytes, matching how
// image libraries describe interleaved buffers, and must be float aligned.
type PackedImage struct {
	Data        []float32
	Width       int32
	Height      int32
	NumChannels int32

	// strides in float32 units, derived once at construction
	chanStride int32
	xStride    int32
	yStride    int32
}

// NewPackedImage builds a descriptor over data. Pass AutoStride for tight
// packing. Only 3 and 4 channel buffers are supported.
func NewPackedImage(data []float32, width int32, height int32, numChannels int32,
	chanStrideBytes int32, xStrideBytes int32, yStrideBytes int32) (*PackedImage, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if numChannels != 3 && numChannels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d", numChannels)
	}
	if chanStrideBytes%bytesPerFloat != 0 || xStrideBytes%bytesPerFloat != 0 ||
		yStrideBytes%bytesPerFloat != 0 {
		return nil, errors.New("strides must be multiples of the float32 size")
	}
	// Bottom-up layouts (negative row stride) would defeat the buffer size
	// check below and index before the slice start.
	if chanStrideBytes < 0 || xStrideBytes < 0 || yStrideBytes < 0 {
		return nil, errors.New("negative strides are not supported")
	}

	img := &PackedImage{
		Data:        data,
		Width:       width,
		Height:      height,
		NumChannels: numChannels,
		chanStride:  chanStrideBytes / bytesPerFloat,
		xStride:     xStrideBytes / bytesPerFloat,
		yStride:     yStrideBytes / bytesPerFloat,
	}
	if img.chanStride == 0 {
		img.chanStride = 1
	}
	if img.xStride == 0 {
		img.xStride = numChannels * img.chanStride
	}
	if img.yStride == 0 {
		img.yStride = width * img.xStride
	}

	needed := (height-1)*img.yStride + (width-1)*img.xStride + (numChannels-1)*img.chanStride + 1
	if int32(len(data)) < needed {
		return nil, fmt.Errorf("buffer too small: have %d floats, need %d", len(data), needed)
	}
	return img, nil
}

// PixelOffset returns the index of channel 0 of pixel (x, y).
func (img *PackedImage) PixelOffset(x int32, y int32) int32 {
	return y*img.yStride + x*img.xStride
}

// ChanStride returns the per-channel stride in float32 units.
func (img *PackedImage) ChanStride() int32 {
	return img.chanStride
}

// Contiguous reports whether the channels of one pixel are adjacent in
// memory, allowing pixels to be handed out as subslices.
func (img *PackedImage) Contiguous() bool {
	return img.chanStride == 1
}

// Pixel returns the channels of pixel (x, y) as a subslice. Only valid for
// contiguous buffers.
func (img *PackedImage) Pixel(x int32, y int32) []float32 {
	off := img.PixelOffset(x, y)
	return img.Data[off : off+img.NumChannels]
}
