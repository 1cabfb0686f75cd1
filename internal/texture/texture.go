// Package texture uploads the hologram layers and binds them to their fixed
// texture units.
package texture

import (
	"fmt"
	"image"
	"math/bits"

	"github.com/glimpseframework/holoview/internal/gles"
	"golang.org/x/image/draw"
)

// Texture is one uploaded 2D image.
type Texture struct {
	ctx     gles.Context
	slot    Slot
	handle  uint32
	sampler int32
	size    image.Point
}

// Generate allocates a texture, uploads img with linear / trilinear filtering
// and repeat wrapping, and builds the mipmap chain. The RGBA copy made for the
// upload is not retained.
func Generate(ctx gles.Context, slot Slot, img image.Image, powerOfTwo bool) (*Texture, error) {
	if !slot.valid() {
		return nil, fmt.Errorf("texture: invalid slot %d", int(slot))
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("texture: %s image is empty", slot)
	}

	handle := ctx.CreateTexture()
	if handle == 0 {
		return nil, &gles.AllocationError{Object: slot.String() + " texture"}
	}

	rgba := toRGBA(img, powerOfTwo)
	size := rgba.Bounds().Size()

	ctx.BindTexture(gles.Texture2D, handle)
	ctx.TexParameteri(gles.Texture2D, gles.TextureMinFilter, int32(gles.LinearMipmapLinear))
	ctx.TexParameteri(gles.Texture2D, gles.TextureMagFilter, int32(gles.Linear))
	ctx.TexParameteri(gles.Texture2D, gles.TextureWrapS, int32(gles.Repeat))
	ctx.TexParameteri(gles.Texture2D, gles.TextureWrapT, int32(gles.Repeat))
	ctx.TexImage2D(gles.Texture2D, size.X, size.Y, rgba.Pix)
	ctx.GenerateMipmap(gles.Texture2D)

	return &Texture{ctx: ctx, slot: slot, handle: handle, sampler: -1, size: size}, nil
}

// toRGBA returns tightly packed RGBA pixels with the origin at (0,0),
// optionally scaled up to power-of-two dimensions.
func toRGBA(img image.Image, powerOfTwo bool) *image.RGBA {
	b := img.Bounds()
	dst := image.Rect(0, 0, b.Dx(), b.Dy())
	if powerOfTwo {
		dst = image.Rect(0, 0, nextPowerOfTwo(b.Dx()), nextPowerOfTwo(b.Dy()))
	}

	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && dst.Eq(b) && rgba.Stride == 4*b.Dx() {
		return rgba
	}

	out := image.NewRGBA(dst)
	if dst.Size() == b.Size() {
		draw.Draw(out, dst, img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(out, dst, img, b, draw.Src, nil)
	}
	return out
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func (t *Texture) Slot() Slot { return t.slot }

func (t *Texture) Handle() uint32 { return t.handle }

// Size is the uploaded size, after any power-of-two scaling.
func (t *Texture) Size() image.Point { return t.size }

// SetSampler records the sampler uniform location used by Bind.
func (t *Texture) SetSampler(location int32) { t.sampler = location }

// Bind activates the slot's unit, binds the texture there and points the
// sampler uniform at the unit.
func (t *Texture) Bind() {
	t.ctx.ActiveTexture(t.slot.glUnit())
	t.ctx.BindTexture(gles.Texture2D, t.handle)
	t.ctx.Uniform1i(t.sampler, t.slot.Unit())
}

// Delete releases the GL texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t == nil || t.handle == 0 {
		return
	}
	t.ctx.DeleteTexture(t.handle)
	t.handle = 0
}
