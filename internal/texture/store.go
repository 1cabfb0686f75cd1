package texture

import (
	"errors"
	"fmt"

	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/glimpseframework/holoview/internal/models"
)

// ErrMissingSlot is returned when a store is generated with a slot unset.
var ErrMissingSlot = errors.New("texture: slot has no image source")

// SamplerLocator resolves sampler uniform names, typically a linked program.
type SamplerLocator interface {
	UniformLocation(name string) (int32, error)
}

// Store owns the three hologram layers. Generation and binding always walk
// the slots in unit order, independent of the order sources were added.
type Store struct {
	sources    [SlotCount]models.ImageSource
	textures   [SlotCount]*Texture
	powerOfTwo bool
}

type Option func(*Store)

// PowerOfTwo scales images with non power-of-two sides before upload, which
// OpenGL ES 2.0 needs for mipmapping and repeat wrapping.
func PowerOfTwo(enabled bool) Option {
	return func(s *Store) { s.powerOfTwo = enabled }
}

func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig fills a store from the images of a render config.
func FromConfig(cfg models.RenderConfig, opts ...Option) *Store {
	s := NewStore(opts...)
	s.sources[Background] = cfg.Background
	s.sources[Hologram] = cfg.Hologram
	s.sources[HoloMap] = cfg.HoloMap
	return s
}

// Add sets the image source for slot, replacing any previous one.
func (s *Store) Add(slot Slot, src models.ImageSource) error {
	if !slot.valid() {
		return fmt.Errorf("texture: invalid slot %d", int(slot))
	}
	s.sources[slot] = src
	return nil
}

// Generate decodes and uploads every slot. On failure the textures created so
// far are deleted and the store is left empty.
func (s *Store) Generate(ctx gles.Context) error {
	s.Delete()

	for _, slot := range Slots {
		t, err := s.generate(ctx, slot)
		if err != nil {
			s.Delete()
			return err
		}
		s.textures[slot] = t
		logging.Logger().Debug("texture uploaded", "slot", slot, "width", t.size.X, "height", t.size.Y)
	}
	return nil
}

func (s *Store) generate(ctx gles.Context, slot Slot) (*Texture, error) {
	src := s.sources[slot]
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSlot, slot)
	}
	img, err := src.Image()
	if err != nil {
		return nil, fmt.Errorf("texture: loading %s image: %w", slot, err)
	}
	return Generate(ctx, slot, img, s.powerOfTwo)
}

// Attach looks up each slot's sampler uniform in the program.
func (s *Store) Attach(program SamplerLocator) error {
	for _, slot := range Slots {
		t := s.textures[slot]
		if t == nil {
			return fmt.Errorf("%w: %s not generated", ErrMissingSlot, slot)
		}
		loc, err := program.UniformLocation(slot.SamplerName())
		if err != nil {
			return err
		}
		if loc < 0 {
			logging.Logger().Warn("sampler uniform not active in program", "slot", slot, "uniform", slot.SamplerName())
		}
		t.SetSampler(loc)
	}
	return nil
}

// Bind binds every texture to its unit. Called once per frame.
func (s *Store) Bind() {
	for _, slot := range Slots {
		if t := s.textures[slot]; t != nil {
			t.Bind()
		}
	}
}

// Texture returns the generated texture for slot, or nil.
func (s *Store) Texture(slot Slot) *Texture {
	if !slot.valid() {
		return nil
	}
	return s.textures[slot]
}

// Delete releases every generated texture. Safe to repeat.
func (s *Store) Delete() {
	for i, t := range s.textures {
		t.Delete()
		s.textures[i] = nil
	}
}

// Forget drops texture handles without GL calls, for use after context loss.
func (s *Store) Forget() {
	for i := range s.textures {
		s.textures[i] = nil
	}
}
