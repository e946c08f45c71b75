package shape

import "github.com/go-gl/mathgl/mgl32"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box of the given half size centered on center.
// halfSize is expected to be non-negative on every axis.
func NewAABB(halfSize, center mgl32.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfSize),
		Max: center.Add(halfSize),
	}
}

// NewAABBFromBounds creates a box from its corners, as is
func NewAABBFromBounds(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Update recenters the box; both corners are replaced together
func (a *AABB) Update(halfSize, center mgl32.Vec3) {
	*a = NewAABB(halfSize, center)
}

func (a *AABB) Kind() Kind {
	return KindAABB
}

func (a *AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a *AABB) HalfSize() mgl32.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

func (a *AABB) Bounds() AABB {
	return *a
}

// ContainsPoint checks if a point is inside the AABB, faces included
func (a *AABB) ContainsPoint(point mgl32.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// CollidesAABB checks if two AABBs overlap. Touching boxes collide.
func (a *AABB) CollidesAABB(other *AABB) bool {
	return other.Min.X() <= a.Max.X() && other.Max.X() >= a.Min.X() &&
		other.Min.Y() <= a.Max.Y() && other.Max.Y() >= a.Min.Y() &&
		other.Min.Z() <= a.Max.Z() && other.Max.Z() >= a.Min.Z()
}

func (a *AABB) CollidesSphere(sphere *Sphere) bool {
	return boxSphereOverlap(a, sphere)
}

func (a *AABB) CollidesWith(other Shape) bool {
	return collidesWith(a, other)
}

func (a *AABB) sealed() {}
