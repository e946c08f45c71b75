package bounds

import (
	"fmt"

	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Set is an ordered collection of shapes, addressed by index.
// It belongs to the caller for the duration of a tick: update every shape
// first, then scan; scans only read the set and may run concurrently.
type Set []shape.Shape

// Pair holds the indices of two overlapping shapes, A < B
type Pair struct {
	A, B int
}

// Scan reports whether set[index] overlaps any other member of the set.
// An out of range index panics.
func Scan(index int, set Set) bool {
	focal := set[index]

	for i, other := range set {
		if i == index {
			continue
		}
		if other.CollidesWith(focal) {
			return true
		}
	}

	return false
}

// ScanAll runs Scan for every index of the set, split across workers
func ScanAll(set Set, workers int) []bool {
	results := make([]bool, len(set))
	indices := make([]int, len(set))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		results[i] = Scan(i, set)
	})

	return results
}

// Pairs returns every overlapping pair of the set, ordered by A then B.
// The grid only prunes candidates; a nil grid tests all pairs.
func Pairs(grid *SpatialGrid, set Set) []Pair {
	pairs := make([]Pair, 0, len(set)/2)

	if grid == nil {
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				if set[i].CollidesWith(set[j]) {
					pairs = append(pairs, Pair{A: i, B: j})
				}
			}
		}
		return pairs
	}

	grid.Clear()
	for i, s := range set {
		grid.Insert(i, s.Bounds())
	}
	grid.SortCells()

	for i, s := range set {
		for _, j := range grid.Candidates(i, s.Bounds(), len(set)) {
			if s.CollidesWith(set[j]) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}

	return pairs
}

// UpdateSet recenters every shape on the matching position, keeping the
// matching extent. The three slices are zipped by index and must have the
// same length.
func UpdateSet(set Set, positions []mgl32.Vec3, extents []actor.Extent) {
	if len(positions) != len(set) || len(extents) != len(set) {
		panic(fmt.Sprintf("bounds: UpdateSet with %d shapes, %d positions, %d extents", len(set), len(positions), len(extents)))
	}

	for i, s := range set {
		actor.UpdateShape(s, extents[i], positions[i])
	}
}
