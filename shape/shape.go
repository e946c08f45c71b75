package shape

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind represents the variant of a collision shape
type Kind int

const (
	KindAABB Kind = iota
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindAABB:
		return "aabb"
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the interface implemented by the bounding volumes of this package.
// The set of implementations is closed: only *AABB and *Sphere satisfy it.
type Shape interface {
	Kind() Kind
	// Center returns the point the shape is built around
	Center() mgl32.Vec3
	// Bounds returns the smallest AABB enclosing the shape
	Bounds() AABB

	ContainsPoint(point mgl32.Vec3) bool
	CollidesAABB(aabb *AABB) bool
	CollidesSphere(sphere *Sphere) bool
	CollidesWith(other Shape) bool

	sealed()
}

// collidesWith dispatches on the variant of other
func collidesWith(s Shape, other Shape) bool {
	switch o := other.(type) {
	case *AABB:
		return s.CollidesAABB(o)
	case *Sphere:
		return s.CollidesSphere(o)
	default:
		panic(fmt.Sprintf("shape: unknown shape %T", other))
	}
}

// Distance returns the euclidean distance between a and b.
// Every predicate goes through here so that boundary cases agree across call sites.
func Distance(a, b mgl32.Vec3) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ClosestPoint clamps point into the box, axis by axis
func ClosestPoint(aabb *AABB, point mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(point[0], aabb.Min[0], aabb.Max[0]),
		mgl32.Clamp(point[1], aabb.Min[1], aabb.Max[1]),
		mgl32.Clamp(point[2], aabb.Min[2], aabb.Max[2]),
	}
}

// boxSphereOverlap is shared by AABB.CollidesSphere and Sphere.CollidesAABB
func boxSphereOverlap(aabb *AABB, sphere *Sphere) bool {
	closest := ClosestPoint(aabb, sphere.center)

	return Distance(closest, sphere.center) < sphere.radius
}
