package models

import (
	"errors"
	"image"
)

// ImageSource yields a decoded image each time a texture is generated. Sources
// are asked again after every surface recreation, so they must not hand out
// an image they expect to keep mutating.
type ImageSource interface {
	Image() (image.Image, error)
}

// StaticImage serves an image already held in memory.
type StaticImage struct {
	Img image.Image
}

func (s StaticImage) Image() (image.Image, error) {
	if s.Img == nil {
		return nil, errors.New("static image is empty")
	}
	return s.Img, nil
}

// RenderConfig is everything the renderer needs from its host. It is read,
// never modified, for the lifetime of a Renderer.
type RenderConfig struct {
	VertexSource   string
	FragmentSource string

	Background ImageSource
	Hologram   ImageSource
	HoloMap    ImageSource
}

// Validate reports the first missing field.
func (c RenderConfig) Validate() error {
	switch {
	case c.VertexSource == "":
		return errors.New("render config: vertex shader source is empty")
	case c.FragmentSource == "":
		return errors.New("render config: fragment shader source is empty")
	case c.Background == nil:
		return errors.New("render config: background image missing")
	case c.Hologram == nil:
		return errors.New("render config: hologram image missing")
	case c.HoloMap == nil:
		return errors.New("render config: holo-map image missing")
	}
	return nil
}
