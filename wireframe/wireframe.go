// Package wireframe builds line lists outlining collision volumes, ready to
// upload to a line-list vertex buffer.
package wireframe

import (
	"errors"
	"fmt"

	"github.com/akmonengine/bounds/shape"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrResolution = errors.New("sphere resolution must be at least 3")
	ErrIndices    = errors.New("invalid triangle indices")
)

// Mesh is an indexed triangle list centered on the origin
type Mesh struct {
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Lines converts the triangle list into a line list: two vertices per edge,
// three edges per triangle. Shared edges are emitted once per triangle.
func (m Mesh) Lines() ([]mgl32.Vec3, error) {
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a triangle list", ErrIndices, len(m.Indices))
	}

	lines := make([]mgl32.Vec3, 0, len(m.Indices)*2)
	for t := 0; t < len(m.Indices); t += 3 {
		tri := m.Indices[t : t+3]
		for _, i := range tri {
			if int(i) >= len(m.Positions) {
				return nil, fmt.Errorf("%w: index %d with %d positions", ErrIndices, i, len(m.Positions))
			}
		}

		a, b, c := m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]]
		lines = append(lines, a, b, b, c, c, a)
	}

	return lines, nil
}

// Translate returns a copy of vertices moved by offset
func Translate(vertices []mgl32.Vec3, offset mgl32.Vec3) []mgl32.Vec3 {
	moved := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		moved[i] = v.Add(offset)
	}

	return moved
}

// ForShape builds the outline of s at its current position
func ForShape(s shape.Shape, resolution int) ([]mgl32.Vec3, error) {
	var mesh Mesh

	switch v := s.(type) {
	case *shape.AABB:
		mesh = Cuboid(v.HalfSize())
	case *shape.Sphere:
		var err error
		if mesh, err = UVSphere(v.Radius(), resolution); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("wireframe: unsupported shape %T", s)
	}

	lines, err := mesh.Lines()
	if err != nil {
		return nil, err
	}

	return Translate(lines, s.Center()), nil
}
