package bounds

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/akmonengine/bounds/shape"
	"github.com/go-gl/mathgl/mgl32"
)

func TestWorldToCell(t *testing.T) {
	tests := []struct {
		name     string
		cellSize float32
		position mgl32.Vec3
		expected CellKey
	}{
		{"on boundaries", 4, mgl32.Vec3{4, 8, -4}, CellKey{1, 2, -1}},
		{"below boundaries", 4, mgl32.Vec3{3.999, 7.999, -4.001}, CellKey{0, 1, -2}},
		{"just below zero", 4, mgl32.Vec3{-0.001, 0, 0.001}, CellKey{-1, 0, 0}},
		{"half unit cells", 0.5, mgl32.Vec3{0.75, -0.25, 1}, CellKey{1, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewSpatialGrid(tt.cellSize, 16)
			if result := grid.worldToCell(tt.position); result != tt.expected {
				t.Errorf("worldToCell(%v) = %v, want %v", tt.position, result, tt.expected)
			}
		})
	}
}

func TestHashCell_StaysInRange(t *testing.T) {
	grid := NewSpatialGrid(1.0, 64)
	slots := make(map[int]bool)

	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				key := CellKey{x, y, z}
				result := grid.hashCell(key)
				if result < 0 || result >= len(grid.cells) {
					t.Fatalf("hashCell(%v) = %d, out of range [0, %d)", key, result, len(grid.cells))
				}
				if grid.hashCell(key) != result {
					t.Fatalf("hashCell(%v) is not stable", key)
				}
				slots[result] = true
			}
		}
	}

	if len(slots) < len(grid.cells)/2 {
		t.Errorf("343 neighbouring cells only use %d of %d slots", len(slots), len(grid.cells))
	}
}

func TestNewSpatialGrid_InvalidCellSizePanics(t *testing.T) {
	for _, cellSize := range []float32{0, -1, float32(math.NaN())} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSpatialGrid(%v) should panic", cellSize)
				}
			}()
			NewSpatialGrid(cellSize, 16)
		}()
	}
}

func TestCellRange_InvertedBounds(t *testing.T) {
	grid := NewSpatialGrid(1.0, 16)
	inverted := shape.NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{0, 0, 0})

	minCell, maxCell := grid.cellRange(inverted)
	if minCell != (CellKey{-1, -1, -1}) || maxCell != (CellKey{1, 1, 1}) {
		t.Errorf("cellRange = %v..%v, want {-1 -1 -1}..{1 1 1}", minCell, maxCell)
	}
}

func TestCoveredCells(t *testing.T) {
	grid := NewSpatialGrid(1.0, 64)

	tests := []struct {
		name     string
		max      CellKey
		expected int
	}{
		{"single", CellKey{0, 0, 0}, 1},
		{"two by two", CellKey{1, 1, 1}, 8},
		{"as many as slots", CellKey{3, 3, 3}, 64},
		{"more than slots", CellKey{4, 3, 3}, 65},
		{"huge span", CellKey{1 << 20, 0, 0}, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.coveredCells(CellKey{0, 0, 0}, tt.max); got != tt.expected {
				t.Errorf("coveredCells(%v) = %d, want %d", tt.max, got, tt.expected)
			}
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {16, 16}, {17, 32}, {1000, 1024},
	}

	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func cellContains(grid *SpatialGrid, bounds shape.AABB, index int) bool {
	minCell, maxCell := grid.cellRange(bounds)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				if slices.Contains(grid.cells[grid.hashCell(CellKey{x, y, z})].shapeIndices, index) {
					return true
				}
			}
		}
	}
	return false
}

func TestInsertMultipleShapes(t *testing.T) {
	grid := NewSpatialGrid(1.0, 16)
	halfSize := mgl32.Vec3{0.4, 0.4, 0.4}
	bounds := []shape.AABB{
		shape.NewAABB(halfSize, mgl32.Vec3{1, 1, 1}),
		shape.NewAABB(halfSize, mgl32.Vec3{2, 2, 2}),
		shape.NewAABB(halfSize, mgl32.Vec3{3, 3, 3}),
	}

	for i, b := range bounds {
		grid.Insert(i, b)
	}

	for i, b := range bounds {
		if !cellContains(grid, b, i) {
			t.Errorf("Shape %d not found in any cell after insertion", i)
		}
	}
}

func TestInsert_SlotHoldsIndexOnce(t *testing.T) {
	grid := NewSpatialGrid(1.0, 4)
	// 2x2x1 cells hashed into 4 slots
	grid.Insert(0, shape.NewAABBFromBounds(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1.5, 1.5, 0.5}))

	for i, cell := range grid.cells {
		if len(slices.Compact(slices.Clone(cell.shapeIndices))) != len(cell.shapeIndices) {
			t.Errorf("slot %d holds %v", i, cell.shapeIndices)
		}
	}
}

func TestInsert_OversizedShape(t *testing.T) {
	grid := NewSpatialGrid(4.0, 64)
	grid.Insert(0, shape.NewAABB(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 0}))
	grid.Insert(1, shape.NewAABB(mgl32.Vec3{400, 400, 400}, mgl32.Vec3{0, 0, 0}))

	if !slices.Equal(grid.oversized, []int{1}) {
		t.Errorf("oversized = %v, want [1]", grid.oversized)
	}
	for _, cell := range grid.cells {
		if slices.Contains(cell.shapeIndices, 1) {
			t.Fatalf("an oversized shape should not be stored in the cells")
		}
	}

	grid.SortCells()
	if got := grid.Candidates(0, shape.NewAABB(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 0}), 2); !slices.Equal(got, []int{1}) {
		t.Errorf("Candidates(0) = %v, want [1]", got)
	}

	grid.Clear()
	if len(grid.oversized) != 0 {
		t.Errorf("Clear should empty the oversized shapes")
	}
}

func TestClear(t *testing.T) {
	grid := NewSpatialGrid(1.0, 16)
	grid.Insert(0, shape.NewAABB(mgl32.Vec3{0.4, 0.4, 0.4}, mgl32.Vec3{1, 1, 1}))
	grid.Insert(1, shape.NewAABB(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, 0}))

	grid.Clear()

	for _, cell := range grid.cells {
		if len(cell.shapeIndices) != 0 {
			t.Error("Cells should be empty after clear")
		}
	}
}

func TestSortCells(t *testing.T) {
	grid := NewSpatialGrid(1.0, 16)
	grid.cells[0].shapeIndices = append(grid.cells[0].shapeIndices, 5, 2, 8, 1, 9, 3)

	grid.SortCells()

	expected := []int{1, 2, 3, 5, 8, 9}
	if !slices.Equal(grid.cells[0].shapeIndices, expected) {
		t.Errorf("cell = %v, want %v", grid.cells[0].shapeIndices, expected)
	}
}

func TestCandidates(t *testing.T) {
	grid := NewSpatialGrid(1.0, 64)
	halfSize := mgl32.Vec3{1, 1, 1}
	bounds := []shape.AABB{
		shape.NewAABB(halfSize, mgl32.Vec3{0, 0, 0}),
		shape.NewAABB(halfSize, mgl32.Vec3{1, 0, 0}),
		shape.NewAABB(halfSize, mgl32.Vec3{2, 0, 0}),
	}
	for i, b := range bounds {
		grid.Insert(i, b)
	}
	grid.SortCells()

	candidates := grid.Candidates(0, bounds[0], len(bounds))
	if !slices.Contains(candidates, 1) || !slices.Contains(candidates, 2) {
		t.Errorf("Candidates(0) = %v, want 1 and 2", candidates)
	}
	if !slices.IsSorted(candidates) || len(slices.Compact(slices.Clone(candidates))) != len(candidates) {
		t.Errorf("Candidates(0) = %v, want sorted and unique", candidates)
	}

	// Lower or equal indices are never returned
	if got := grid.Candidates(2, bounds[2], len(bounds)); len(got) != 0 {
		t.Errorf("Candidates(2) = %v, want none", got)
	}
}

func TestCandidates_TouchingFacesShareCell(t *testing.T) {
	grid := NewSpatialGrid(1.0, 1024)
	halfSize := mgl32.Vec3{3, 3, 3}
	a := shape.NewAABB(halfSize, mgl32.Vec3{0, 0, 0})
	b := shape.NewAABB(halfSize, mgl32.Vec3{6, 0, 0})

	grid.Insert(0, a)
	grid.Insert(1, b)
	grid.SortCells()

	if !slices.Contains(grid.Candidates(0, a, 2), 1) {
		t.Errorf("touching boxes should be candidates of each other")
	}
}

func TestPairs_GridMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	set := make(Set, 0, 80)
	for i := 0; i < 80; i++ {
		center := mgl32.Vec3{r.Float32() * 30, r.Float32() * 30, r.Float32() * 30}
		if i%2 == 0 {
			h := r.Float32() * 3
			if i%6 == 0 {
				h = -h
			}
			aabb := shape.NewAABB(mgl32.Vec3{h, h, h}, center)
			set = append(set, &aabb)
		} else {
			sphere := shape.NewSphere(r.Float32()*3, center)
			set = append(set, &sphere)
		}
	}

	expected := Pairs(nil, set)
	for _, cellSize := range []float32{0.25, 0.5, 2, 10} {
		got := Pairs(NewSpatialGrid(cellSize, 128), set)
		if !slices.Equal(got, expected) {
			t.Errorf("cell size %v: grid pairs %v, brute force %v", cellSize, got, expected)
		}
	}
	if len(expected) == 0 {
		t.Fatalf("the random scene should contain overlapping pairs")
	}
}

func TestPairs_GridInvertedBox(t *testing.T) {
	inverted := shape.NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{0, 0, 0})
	box := shape.NewAABB(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0, 0, 0})
	sphere := shape.NewSphere(2, mgl32.Vec3{0, 0, 0})
	set := Set{&inverted, &box, &sphere}

	expected := []Pair{{0, 1}, {0, 2}, {1, 2}}
	if got := Pairs(nil, set); !slices.Equal(got, expected) {
		t.Fatalf("brute force pairs %v, want %v", got, expected)
	}

	for _, grid := range []*SpatialGrid{NewSpatialGrid(0.5, 1024), NewSpatialGrid(2, 64)} {
		if got := Pairs(grid, set); !slices.Equal(got, expected) {
			t.Errorf("cell size %v: grid pairs %v, want %v", grid.cellSize, got, expected)
		}
	}
}

func TestPairs_GridOversizedBox(t *testing.T) {
	large := shape.NewAABB(mgl32.Vec3{400, 400, 400}, mgl32.Vec3{0, 0, 0})
	set := Set{
		boxAt(1, mgl32.Vec3{-300, 0, 0}),
		&large,
		sphereAt(1, mgl32.Vec3{300, 300, 300}),
		boxAt(1, mgl32.Vec3{1000, 0, 0}),
		sphereAt(1, mgl32.Vec3{1001, 0, 0}),
	}
	grid := NewSpatialGrid(4, 64)

	expected := []Pair{{0, 1}, {1, 2}, {3, 4}}
	if got := Pairs(grid, set); !slices.Equal(got, expected) {
		t.Errorf("grid pairs %v, want %v", got, expected)
	}

	// Small shapes cover at most 8 cells each, the large box none
	entries := 0
	for _, cell := range grid.cells {
		entries += len(cell.shapeIndices)
	}
	if entries > 8*(len(set)-1) {
		t.Errorf("grid holds %d entries for %d small shapes", entries, len(set)-1)
	}
}
