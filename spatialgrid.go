package bounds

import (
	"fmt"
	"slices"

	"github.com/akmonengine/bounds/shape"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - indices of the shapes overlapping a cell
type Cell struct {
	shapeIndices []int
}

// SpatialGrid - uniform grid hashed into a fixed number of cells.
// Distinct cells may share a slot, so results are candidates only.
// Shapes covering more cells than there are slots are kept aside in
// oversized and paired with every other shape.
type SpatialGrid struct {
	cellSize  float32
	cells     []Cell
	cellMask  int
	oversized []int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - numCells is rounded up to a power of two.
// It panics when cellSize is not a positive number.
func NewSpatialGrid(cellSize float32, numCells int) *SpatialGrid {
	if !(cellSize > 0) {
		panic(fmt.Sprintf("bounds: spatial grid cell size %v", cellSize))
	}
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].shapeIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - adds a shape index to every cell its bounds touch, faces included.
// Indices must be inserted in increasing order.
func (sg *SpatialGrid) Insert(shapeIndex int, bounds shape.AABB) {
	minCell, maxCell := sg.cellRange(bounds)
	if sg.coveredCells(minCell, maxCell) > len(sg.cells) {
		sg.oversized = append(sg.oversized, shapeIndex)
		return
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cell := &sg.cells[sg.hashCell(CellKey{x, y, z})]

				// Several covered cells may hash to the same slot
				if n := len(cell.shapeIndices); n > 0 && cell.shapeIndices[n-1] == shapeIndex {
					continue
				}
				cell.shapeIndices = append(cell.shapeIndices, shapeIndex)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].shapeIndices = sg.cells[i].shapeIndices[:0]
	}
	sg.oversized = sg.oversized[:0]
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].shapeIndices) > 1 {
			slices.Sort(sg.cells[i].shapeIndices)
		}
	}
}

// Candidates - sorted, unique indices greater than shapeIndex sharing a cell with bounds.
// An oversized shape gets every index in [shapeIndex+1, count).
func (sg *SpatialGrid) Candidates(shapeIndex int, bounds shape.AABB, count int) []int {
	var candidates []int

	minCell, maxCell := sg.cellRange(bounds)
	if sg.coveredCells(minCell, maxCell) > len(sg.cells) {
		for i := shapeIndex + 1; i < count; i++ {
			candidates = append(candidates, i)
		}
		return candidates
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})

				for _, otherIdx := range sg.cells[cellIdx].shapeIndices {
					// Avoids (A,B) and (B,A)
					if otherIdx <= shapeIndex {
						continue
					}
					candidates = append(candidates, otherIdx)
				}
			}
		}
	}

	for _, otherIdx := range sg.oversized {
		if otherIdx > shapeIndex {
			candidates = append(candidates, otherIdx)
		}
	}

	slices.Sort(candidates)

	return slices.Compact(candidates)
}

// cellRange - lowest and highest cells covered by bounds, per axis.
// Inverted bounds (Min > Max) cover the same cells as their swapped corners.
func (sg *SpatialGrid) cellRange(bounds shape.AABB) (CellKey, CellKey) {
	a := sg.worldToCell(bounds.Min)
	b := sg.worldToCell(bounds.Max)

	return CellKey{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		CellKey{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// coveredCells - number of cells in the range, saturated just above the slot count
func (sg *SpatialGrid) coveredCells(minCell, maxCell CellKey) int {
	limit := len(sg.cells) + 1
	count := 1
	for _, span := range []int{maxCell.X - minCell.X, maxCell.Y - minCell.Y, maxCell.Z - minCell.Z} {
		if span < 0 || span >= limit {
			return limit
		}
		count *= span + 1
		if count >= limit {
			return limit
		}
	}

	return count
}

// worldToCell - world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl32.Vec3) CellKey {
	return CellKey{
		X: int(math32.Floor(pos.X() / sg.cellSize)),
		Y: int(math32.Floor(pos.Y() / sg.cellSize)),
		Z: int(math32.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - cell coordinates to a slot in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
