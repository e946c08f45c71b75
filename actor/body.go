package actor

import (
	"fmt"

	"github.com/akmonengine/bounds/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Extent is the fixed size of a body's bounding volume.
// HalfSize is read by boxes, Radius by spheres.
type Extent struct {
	HalfSize mgl32.Vec3
	Radius   float32
}

// CubeExtent returns an extent usable by both variants: a cube of half size
// h, or a sphere of radius h
func CubeExtent(h float32) Extent {
	return Extent{HalfSize: mgl32.Vec3{h, h, h}, Radius: h}
}

// Body is a tracked object whose bounding volume follows its transform
type Body struct {
	ID                string
	PreviousTransform Transform
	Transform         Transform
	Extent            Extent

	// Collision shape, centered on Transform.Position after each Sync
	Shape shape.Shape
}

// NewBody creates a body with a shape of the given kind, centered on the transform
func NewBody(id string, kind shape.Kind, extent Extent, transform Transform) *Body {
	b := &Body{
		ID:                id,
		PreviousTransform: transform,
		Transform:         transform,
		Extent:            extent,
		Shape:             NewShape(kind, extent, transform.Position),
	}

	return b
}

// NewShape builds a bounding volume of the given kind
func NewShape(kind shape.Kind, extent Extent, center mgl32.Vec3) shape.Shape {
	switch kind {
	case shape.KindAABB:
		aabb := shape.NewAABB(extent.HalfSize, center)
		return &aabb
	case shape.KindSphere:
		sphere := shape.NewSphere(extent.Radius, center)
		return &sphere
	default:
		panic(fmt.Sprintf("actor: unknown shape kind %v", kind))
	}
}

// UpdateShape recenters s on center, keeping the extent
func UpdateShape(s shape.Shape, extent Extent, center mgl32.Vec3) {
	switch v := s.(type) {
	case *shape.AABB:
		v.Update(extent.HalfSize, center)
	case *shape.Sphere:
		v.Update(extent.Radius, center)
	default:
		panic(fmt.Sprintf("actor: unknown shape %T", s))
	}
}

// MoveTo sets the body position; the shape follows on the next Sync
func (b *Body) MoveTo(position mgl32.Vec3) {
	b.PreviousTransform = b.Transform
	b.Transform.Position = position
}

// Translate moves the body by delta
func (b *Body) Translate(delta mgl32.Vec3) {
	b.MoveTo(b.Transform.Position.Add(delta))
}

// Sync recenters the shape on the current transform
func (b *Body) Sync() {
	UpdateShape(b.Shape, b.Extent, b.Transform.Position)
}
