package wireframe

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UVSphere builds a latitude/longitude sphere with resolution rings and
// resolution segments. Each ring repeats its first vertex at the seam.
func UVSphere(radius float32, resolution int) (Mesh, error) {
	if resolution < 3 {
		return Mesh{}, fmt.Errorf("%w, got %d", ErrResolution, resolution)
	}

	res := uint32(resolution)
	deltaLatitude := math32.Pi / float32(resolution)
	deltaLongitude := 2 * math32.Pi / float32(resolution)

	positions := make([]mgl32.Vec3, 0, (resolution+1)*(resolution+1))
	indices := make([]uint32, 0, 6*resolution*(resolution-1))

	for i := uint32(0); i <= res; i++ {
		latitude := math32.Pi/2 - float32(i)*deltaLatitude
		xz := radius * math32.Cos(latitude)
		y := radius * math32.Sin(latitude)

		for j := uint32(0); j <= res; j++ {
			longitude := float32(j) * deltaLongitude
			positions = append(positions, mgl32.Vec3{xz * math32.Cos(longitude), y, xz * math32.Sin(longitude)})
		}
	}

	//  k1--k1+1
	//  |  / |
	//  | /  |
	//  k2--k2+1
	for i := uint32(0); i < res; i++ {
		k1 := i * (res + 1)
		k2 := k1 + res + 1

		for j := uint32(0); j < res; j, k1, k2 = j+1, k1+1, k2+1 {
			// The poles collapse one triangle of each quad
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != res-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return Mesh{Positions: positions, Indices: indices}, nil
}
