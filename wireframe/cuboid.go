package wireframe

import "github.com/go-gl/mathgl/mgl32"

// Cuboid builds a box of the given half size, four vertices per face,
// faces wound counter-clockwise
func Cuboid(halfSize mgl32.Vec3) Mesh {
	lo := halfSize.Mul(-1)
	hi := halfSize

	positions := []mgl32.Vec3{
		// Front
		{lo[0], lo[1], hi[2]}, {hi[0], lo[1], hi[2]}, {hi[0], hi[1], hi[2]}, {lo[0], hi[1], hi[2]},
		// Back
		{lo[0], hi[1], lo[2]}, {hi[0], hi[1], lo[2]}, {hi[0], lo[1], lo[2]}, {lo[0], lo[1], lo[2]},
		// Right
		{hi[0], lo[1], lo[2]}, {hi[0], hi[1], lo[2]}, {hi[0], hi[1], hi[2]}, {hi[0], lo[1], hi[2]},
		// Left
		{lo[0], lo[1], hi[2]}, {lo[0], hi[1], hi[2]}, {lo[0], hi[1], lo[2]}, {lo[0], lo[1], lo[2]},
		// Top
		{hi[0], hi[1], lo[2]}, {lo[0], hi[1], lo[2]}, {lo[0], hi[1], hi[2]}, {hi[0], hi[1], hi[2]},
		// Bottom
		{hi[0], lo[1], hi[2]}, {lo[0], lo[1], hi[2]}, {lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]},
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return Mesh{Positions: positions, Indices: indices}
}
