package transform

import (
	"errors"

	"github.com/kpfaulkner/ocio-go/image"
)

// Apply transforms every pixel of a packed buffer in place, honoring the
// buffer's strides. A failure part way leaves already processed pixels
// transformed; nothing is rolled back.
func (cp *CPUProcessor) Apply(img *image.PackedImage) error {
	if img == nil {
		return errors.New("nil image")
	}

	if img.Contiguous() {
		if img.NumChannels == 4 {
			for y := int32(0); y < img.Height; y++ {
				for x := int32(0); x < img.Width; x++ {
					cp.ApplyRGBA(img.Pixel(x, y))
				}
			}
		} else {
			for y := int32(0); y < img.Height; y++ {
				for x := int32(0); x < img.Width; x++ {
					cp.ApplyRGB(img.Pixel(x, y))
				}
			}
		}
		return nil
	}

	// Strided channels: gather, transform, scatter.
	var tmp [4]float32
	cs := img.ChanStride()
	for y := int32(0); y < img.Height; y++ {
		for x := int32(0); x < img.Width; x++ {
			off := img.PixelOffset(x, y)
			for c := int32(0); c < img.NumChannels; c++ {
				tmp[c] = img.Data[off+c*cs]
			}
			if img.NumChannels == 4 {
				cp.ApplyRGBA(tmp[:4])
			} else {
				cp.ApplyRGB(tmp[:3])
			}
			for c := int32(0); c < img.NumChannels; c++ {
				img.Data[off+c*cs] = tmp[c]
			}
		}
	}
	return nil
}

// ApplyPredivide is Apply with per-pixel alpha predivide handling for
// 4 channel buffers. Other channel counts fall back to a plain apply since
// there is no alpha to account for.
func (cp *CPUProcessor) ApplyPredivide(img *image.PackedImage) error {
	if img == nil {
		return errors.New("nil image")
	}
	if img.NumChannels != 4 {
		return cp.Apply(img)
	}

	if img.Contiguous() {
		for y := int32(0); y < img.Height; y++ {
			for x := int32(0); x < img.Width; x++ {
				cp.ApplyRGBAPredivide(img.Pixel(x, y))
			}
		}
		return nil
	}

	var tmp [4]float32
	cs := img.ChanStride()
	for y := int32(0); y < img.Height; y++ {
		for x := int32(0); x < img.Width; x++ {
			off := img.PixelOffset(x, y)
			for c := int32(0); c < 4; c++ {
				tmp[c] = img.Data[off+c*cs]
			}
			cp.ApplyRGBAPredivide(tmp[:4])
			for c := int32(0); c < 4; c++ {
				img.Data[off+c*cs] = tmp[c]
			}
		}
	}
	return nil
}
