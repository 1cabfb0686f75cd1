package config

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/glimpseframework/holoview/internal/models"
	"github.com/glimpseframework/holoview/internal/shaders"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// FileImage decodes an image file each time it is asked for one.
type FileImage struct {
	Path string
}

func (f FileImage) Image() (image.Image, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.Path, err)
	}
	return img, nil
}

// Target selects which flavour of the default shaders is used.
type Target int

const (
	Desktop Target = iota
	Mobile
)

// RenderConfig reads shader sources and prepares image sources. Images are
// not decoded here; textures decode them when uploaded.
func (s *Settings) RenderConfig(target Target) (models.RenderConfig, error) {
	vertex, fragment := shaders.DefaultVertex, shaders.DefaultFragment
	if target == Mobile {
		vertex, fragment = shaders.DefaultVertexES, shaders.DefaultFragmentES
	}

	var err error
	if vertex, err = s.readSource(s.VertexShader, vertex); err != nil {
		return models.RenderConfig{}, err
	}
	if fragment, err = s.readSource(s.FragmentShader, fragment); err != nil {
		return models.RenderConfig{}, err
	}

	cfg := models.RenderConfig{
		VertexSource:   vertex,
		FragmentSource: fragment,
	}
	if cfg.Background, err = s.imageSource(s.Background, DefaultBackground); err != nil {
		return models.RenderConfig{}, err
	}
	if cfg.Hologram, err = s.imageSource(s.Hologram, DefaultHologram); err != nil {
		return models.RenderConfig{}, err
	}
	if cfg.HoloMap, err = s.imageSource(s.HoloMap, DefaultHoloMap); err != nil {
		return models.RenderConfig{}, err
	}
	return cfg, cfg.Validate()
}

func (s *Settings) readSource(path, fallback string) (string, error) {
	resolved, err := s.Resolve(path)
	if err != nil || resolved == "" {
		return fallback, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file %q: %w", resolved, err)
	}
	return string(data), nil
}

func (s *Settings) imageSource(path string, fallback func() image.Image) (models.ImageSource, error) {
	resolved, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	if resolved == "" {
		return models.StaticImage{Img: fallback()}, nil
	}
	if _, err := os.Stat(resolved); err != nil {
		return nil, fmt.Errorf("image %q: %w", resolved, err)
	}
	return FileImage{Path: resolved}, nil
}
