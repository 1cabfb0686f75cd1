package config

import (
	"image"
	"image/color"
	"math"
)

const defaultImageSize = 256

// DefaultBackground is a dark vertical gradient.
func DefaultBackground() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, defaultImageSize, defaultImageSize))
	for y := range defaultImageSize {
		shade := uint8(16 + 48*y/defaultImageSize)
		for x := range defaultImageSize {
			img.SetRGBA(x, y, color.RGBA{R: shade / 2, G: shade / 2, B: shade, A: 255})
		}
	}
	return img
}

// DefaultHologram is a set of translucent diagonal stripes.
func DefaultHologram() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, defaultImageSize, defaultImageSize))
	for y := range defaultImageSize {
		for x := range defaultImageSize {
			a := uint8(0)
			if (x+y)/16%2 == 0 {
				a = 200
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 230, B: 255, A: a})
		}
	}
	return img
}

// DefaultHoloMap is a radial lookup: red carries the phase, alpha the
// strength, fading out towards the corners.
func DefaultHoloMap() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, defaultImageSize, defaultImageSize))
	c := float64(defaultImageSize) / 2
	for y := range defaultImageSize {
		for x := range defaultImageSize {
			d := math.Hypot(float64(x)-c, float64(y)-c) / (c * math.Sqrt2)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * d),
				A: uint8(255 * (1 - d)),
			})
		}
	}
	return img
}
