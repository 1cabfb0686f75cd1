package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/gles/glestest"
	"github.com/glimpseframework/holoview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locator map[string]int32

func (l locator) UniformLocation(name string) (int32, error) {
	loc, ok := l[name]
	if !ok {
		return -1, nil
	}
	return loc, nil
}

type failingSource struct{}

func (failingSource) Image() (image.Image, error) { return nil, errors.New("no such resource") }

func solid(w, h int, c color.Color) models.StaticImage {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return models.StaticImage{Img: img}
}

func samplers() locator {
	return locator{
		"u_BackgroundTexture": 10,
		"u_HologramTexture":   11,
		"u_HoloMapTexture":    12,
	}
}

func TestBindOrderIndependentOfAddOrder(t *testing.T) {
	ctx := glestest.New()
	s := NewStore()
	require.NoError(t, s.Add(HoloMap, solid(4, 4, color.White)))
	require.NoError(t, s.Add(Hologram, solid(4, 4, color.Black)))
	require.NoError(t, s.Add(Background, solid(4, 4, color.Gray{Y: 128})))

	require.NoError(t, s.Generate(ctx))
	require.NoError(t, s.Attach(samplers()))

	ctx.Reset()
	s.Bind()

	active := ctx.Named("ActiveTexture")
	require.Len(t, active, 3)
	assert.Equal(t, gles.Texture0, active[0].Args[0])
	assert.Equal(t, gles.Texture0+1, active[1].Args[0])
	assert.Equal(t, gles.Texture0+2, active[2].Args[0])

	binds := ctx.Named("BindTexture")
	require.Len(t, binds, 3)
	assert.Equal(t, s.Texture(Background).Handle(), binds[0].Args[1])
	assert.Equal(t, s.Texture(Hologram).Handle(), binds[1].Args[1])
	assert.Equal(t, s.Texture(HoloMap).Handle(), binds[2].Args[1])

	uniforms := ctx.Named("Uniform1i")
	require.Len(t, uniforms, 3)
	assert.Equal(t, []any{int32(10), int32(0)}, uniforms[0].Args)
	assert.Equal(t, []any{int32(11), int32(1)}, uniforms[1].Args)
	assert.Equal(t, []any{int32(12), int32(2)}, uniforms[2].Args)
}

func TestGenerateSamplingParameters(t *testing.T) {
	ctx := glestest.New()
	_, err := Generate(ctx, Hologram, solid(3, 5, color.White).Img, false)
	require.NoError(t, err)

	params := ctx.Named("TexParameteri")
	require.Len(t, params, 4)
	assert.Equal(t, []any{gles.Texture2D, gles.TextureMinFilter, int32(gles.LinearMipmapLinear)}, params[0].Args)
	assert.Equal(t, []any{gles.Texture2D, gles.TextureMagFilter, int32(gles.Linear)}, params[1].Args)
	assert.Equal(t, []any{gles.Texture2D, gles.TextureWrapS, int32(gles.Repeat)}, params[2].Args)
	assert.Equal(t, []any{gles.Texture2D, gles.TextureWrapT, int32(gles.Repeat)}, params[3].Args)

	names := make([]string, 0, len(ctx.Calls))
	for _, c := range ctx.Calls {
		names = append(names, c.Name)
	}
	// Mipmaps are built after the level 0 upload.
	assert.Equal(t, "TexImage2D", names[len(names)-2])
	assert.Equal(t, "GenerateMipmap", names[len(names)-1])

	upload := ctx.Named("TexImage2D")[0]
	assert.Equal(t, []any{gles.Texture2D, 3, 5, 3 * 5 * 4}, upload.Args)
}

func TestGeneratePowerOfTwo(t *testing.T) {
	ctx := glestest.New()
	tex, err := Generate(ctx, Background, solid(3, 5, color.White).Img, true)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 8), tex.Size())

	tex, err = Generate(ctx, Background, solid(16, 1, color.White).Img, true)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 1), tex.Size())
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 4, 5))
	src.Set(2, 3, color.RGBA{R: 255, A: 255})

	out := toRGBA(src, false)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(0, 0))
}

func TestNextPowerOfTwo(t *testing.T) {
	for in, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 1000: 1024} {
		assert.Equal(t, want, nextPowerOfTwo(in), "n=%d", in)
	}
}

func TestGenerateNullHandle(t *testing.T) {
	ctx := glestest.New()
	ctx.NullTextures = true
	s := FromConfig(models.RenderConfig{
		Background: solid(2, 2, color.White),
		Hologram:   solid(2, 2, color.White),
		HoloMap:    solid(2, 2, color.White),
	})

	err := s.Generate(ctx)
	var allocErr *gles.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Contains(t, err.Error(), "background")
}

func TestGenerateFailureReleasesEarlierSlots(t *testing.T) {
	ctx := glestest.New()
	s := NewStore()
	require.NoError(t, s.Add(Background, solid(2, 2, color.White)))
	require.NoError(t, s.Add(Hologram, solid(2, 2, color.White)))
	require.NoError(t, s.Add(HoloMap, failingSource{}))

	err := s.Generate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holo-map")
	assert.Empty(t, ctx.Textures)
	for _, slot := range Slots {
		assert.Nil(t, s.Texture(slot))
	}
}

func TestGenerateMissingSlot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(Background, solid(2, 2, color.White)))
	assert.ErrorIs(t, s.Generate(glestest.New()), ErrMissingSlot)
	assert.Error(t, s.Add(SlotCount, solid(1, 1, color.White)))
}

func TestDeleteAndForget(t *testing.T) {
	ctx := glestest.New()
	s := FromConfig(models.RenderConfig{
		Background: solid(2, 2, color.White),
		Hologram:   solid(2, 2, color.White),
		HoloMap:    solid(2, 2, color.White),
	})
	require.NoError(t, s.Generate(ctx))
	assert.Len(t, ctx.Textures, 3)

	s.Delete()
	s.Delete()
	assert.Empty(t, ctx.Textures)
	assert.Len(t, ctx.Named("DeleteTexture"), 3)

	require.NoError(t, s.Generate(ctx))
	ctx.Reset()
	s.Forget()
	s.Bind()
	assert.Empty(t, ctx.Calls)
}
