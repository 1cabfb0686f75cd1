package renderer

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

const (
	bytesPerFloat = 4

	positionComponents = 3
	uvComponents       = 2
	quadVertexCount    = 6

	positionStride = positionComponents * bytesPerFloat
	uvStride       = uvComponents * bytesPerFloat
)

// Two triangles covering clip space.
var quadPositions = [quadVertexCount * positionComponents]float32{
	-1, -1, 0,
	1, -1, 0,
	-1, 1, 0,
	-1, 1, 0,
	1, -1, 0,
	1, 1, 0,
}

// Image rows are uploaded top first, so v runs opposite to position y.
var quadUVs = [quadVertexCount * uvComponents]float32{
	0, 1,
	1, 1,
	0, 0,
	0, 0,
	1, 1,
	1, 0,
}

var (
	quadPositionBytes = f32.Bytes(binary.LittleEndian, quadPositions[:]...)
	quadUVBytes       = f32.Bytes(binary.LittleEndian, quadUVs[:]...)
)
