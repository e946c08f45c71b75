package actor

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a position in 3D space.
// Rotation is carried for the renderer; bounding volumes stay axis aligned.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// At creates an unrotated transform at position
func At(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl32.QuatIdent(),
	}
}
