package texture

import (
	"fmt"

	"github.com/glimpseframework/holoview/internal/gles"
)

// Slot names one of the three hologram layers. Its value is also the texture
// unit the layer is sampled from, which the shader relies on.
type Slot int

const (
	Background Slot = iota
	Hologram
	HoloMap
	SlotCount
)

// Slots lists every slot in unit order.
var Slots = [SlotCount]Slot{Background, Hologram, HoloMap}

var slotInfo = [SlotCount]struct {
	name    string
	sampler string
}{
	Background: {"background", "u_BackgroundTexture"},
	Hologram:   {"hologram", "u_HologramTexture"},
	HoloMap:    {"holo-map", "u_HoloMapTexture"},
}

func (s Slot) valid() bool { return s >= 0 && s < SlotCount }

func (s Slot) String() string {
	if !s.valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotInfo[s].name
}

// Unit is the texture unit index written into the sampler uniform.
func (s Slot) Unit() int32 { return int32(s) }

// SamplerName is the sampler2D uniform reading this slot.
func (s Slot) SamplerName() string { return slotInfo[s].sampler }

func (s Slot) glUnit() gles.Enum { return gles.Texture0 + gles.Enum(s) }
