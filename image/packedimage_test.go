package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackedImageAutoStride(t *testing.T) {
	data := make([]float32, 2*3*4)
	img, err := NewPackedImage(data, 3, 2, 4, AutoStride, AutoStride, AutoStride)
	require.NoError(t, err)

	assert.Equal(t, int32(1), img.ChanStride())
	assert.True(t, img.Contiguous())
	assert.Equal(t, int32(0), img.PixelOffset(0, 0))
	assert.Equal(t, int32(4), img.PixelOffset(1, 0))
	assert.Equal(t, int32(12), img.PixelOffset(0, 1))
}

func TestNewPackedImageRowPadding(t *testing.T) {
	// 2x2 RGB rows padded to 8 floats each
	data := make([]float32, 2*8)
	img, err := NewPackedImage(data, 2, 2, 3, AutoStride, AutoStride, 8*4)
	require.NoError(t, err)

	assert.Equal(t, int32(8), img.PixelOffset(0, 1))
	assert.Equal(t, int32(11), img.PixelOffset(1, 1))
}

func TestNewPackedImageErrors(t *testing.T) {
	data := make([]float32, 16)

	_, err := NewPackedImage(data, 0, 2, 4, AutoStride, AutoStride, AutoStride)
	assert.Error(t, err)

	_, err = NewPackedImage(data, 2, 2, 5, AutoStride, AutoStride, AutoStride)
	assert.Error(t, err)

	_, err = NewPackedImage(data, 2, 2, 4, 3, AutoStride, AutoStride)
	assert.Error(t, err)

	_, err = NewPackedImage(data, 4, 4, 4, AutoStride, AutoStride, AutoStride)
	assert.Error(t, err)
}

func TestNewPackedImageRejectsNegativeStrides(t *testing.T) {
	// bottom-up row stride passes a naive size check but would index before
	// the slice start on the first access
	data := make([]float32, 8)
	_, err := NewPackedImage(data, 1, 2, 4, AutoStride, AutoStride, -16)
	assert.Error(t, err)

	_, err = NewPackedImage(data, 2, 1, 4, AutoStride, -16, AutoStride)
	assert.Error(t, err)

	_, err = NewPackedImage(data, 1, 1, 4, -4, AutoStride, AutoStride)
	assert.Error(t, err)
}

func TestPixel(t *testing.T) {
	data := make([]float32, 2*2*4)
	img, err := NewPackedImage(data, 2, 2, 4, AutoStride, AutoStride, AutoStride)
	require.NoError(t, err)

	px := img.Pixel(1, 1)
	px[0] = 0.5
	assert.Equal(t, float32(0.5), data[12])
}
