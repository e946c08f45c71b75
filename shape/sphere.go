package shape

import "github.com/go-gl/mathgl/mgl32"

// Sphere represents a spherical bounding volume.
// A negative radius is accepted; such a sphere never collides.
type Sphere struct {
	center mgl32.Vec3
	radius float32
}

func NewSphere(radius float32, center mgl32.Vec3) Sphere {
	return Sphere{center: center, radius: radius}
}

// Update replaces radius and center together
func (s *Sphere) Update(radius float32, center mgl32.Vec3) {
	s.radius = radius
	s.center = center
}

func (s *Sphere) Kind() Kind {
	return KindSphere
}

func (s *Sphere) Center() mgl32.Vec3 {
	return s.center
}

func (s *Sphere) Radius() float32 {
	return s.radius
}

// Bounds is not affected by rotation, only by position
func (s *Sphere) Bounds() AABB {
	r := mgl32.Vec3{s.radius, s.radius, s.radius}

	return AABB{
		Min: s.center.Sub(r),
		Max: s.center.Add(r),
	}
}

// ContainsPoint excludes the surface itself
func (s *Sphere) ContainsPoint(point mgl32.Vec3) bool {
	return Distance(point, s.center) < s.radius
}

func (s *Sphere) CollidesAABB(aabb *AABB) bool {
	return boxSphereOverlap(aabb, s)
}

// CollidesSphere is true when the centers are closer than the sum of the radii
func (s *Sphere) CollidesSphere(other *Sphere) bool {
	return Distance(s.center, other.center) < s.radius+other.radius
}

func (s *Sphere) CollidesWith(other Shape) bool {
	return collidesWith(s, other)
}

func (s *Sphere) sealed() {}
