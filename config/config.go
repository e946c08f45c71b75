// Package config loads collision scenes from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/akmonengine/bounds/shape"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrNoObjects   = errors.New("scene has no objects")
	ErrUnknownKind = errors.New("unknown shape kind")
	ErrMoving      = errors.New("moving object out of range")
	ErrWorkers     = errors.New("workers must be positive")
	ErrCellSize    = errors.New("cell size must be positive")
	ErrSpeed       = errors.New("speed must be positive")
)

// Object is one tracked body of the scene
type Object struct {
	Kind     string     `toml:"kind"`
	Position [3]float32 `toml:"position"`
}

// Scene describes the bodies of a world and how it is stepped
type Scene struct {
	// HalfSize is shared by every box, Radius by every sphere
	HalfSize [3]float32 `toml:"half_size"`
	Radius   float32    `toml:"radius"`
	Objects  []Object   `toml:"objects"`

	Moving  int `toml:"moving"`
	Workers int `toml:"workers"`

	// Spatial grid, disabled when CellSize is 0
	CellSize float32 `toml:"cell_size"`
	NumCells int     `toml:"num_cells"`

	// Path of the moving object, one tick per Speed units
	Target [3]float32 `toml:"target"`
	Speed  float32    `toml:"speed"`
}

// Default returns two boxes and two spheres of size 3 on a 10 unit grid,
// the first box moving toward the origin
func Default() Scene {
	return Scene{
		HalfSize: [3]float32{3, 3, 3},
		Radius:   3,
		Objects: []Object{
			{Kind: "aabb", Position: [3]float32{-5, 1, -5}},
			{Kind: "aabb", Position: [3]float32{-5, 1, 5}},
			{Kind: "sphere", Position: [3]float32{5, 1, -5}},
			{Kind: "sphere", Position: [3]float32{5, 1, 5}},
		},
		Moving:   0,
		Workers:  1,
		CellSize: 4,
		NumCells: 64,
		Target:   [3]float32{5, 1, 5},
		Speed:    0.5,
	}
}

// Load reads a scene file. Fields absent from the file keep their Default value.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}

	scene, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}

	return scene, nil
}

// Parse decodes and validates a TOML scene
func Parse(data []byte) (Scene, error) {
	scene := Default()
	// Decoded arrays of tables extend the target slice instead of replacing it
	scene.Objects = nil

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scene); err != nil {
		return Scene{}, fmt.Errorf("decode: %w", err)
	}
	if scene.Objects == nil {
		scene.Objects = Default().Objects
	}

	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}

	return scene, nil
}

// Validate checks the scene layout. Shape sizes are not checked: a negative
// radius or half size is accepted and simply never collides as expected.
func (s Scene) Validate() error {
	if len(s.Objects) == 0 {
		return ErrNoObjects
	}
	for i, o := range s.Objects {
		if _, err := ParseKind(o.Kind); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	if s.Moving < 0 || s.Moving >= len(s.Objects) {
		return fmt.Errorf("%w: %d of %d", ErrMoving, s.Moving, len(s.Objects))
	}
	if s.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrWorkers, s.Workers)
	}
	if s.CellSize < 0 {
		return fmt.Errorf("%w: %v", ErrCellSize, s.CellSize)
	}
	if !(s.Speed > 0) {
		return fmt.Errorf("%w: %v", ErrSpeed, s.Speed)
	}

	return nil
}

// Encode writes the scene back as TOML
func (s Scene) Encode() ([]byte, error) {
	return toml.Marshal(s)
}

// ParseKind maps a scene kind name to a shape kind
func ParseKind(name string) (shape.Kind, error) {
	switch name {
	case "aabb", "box":
		return shape.KindAABB, nil
	case "sphere":
		return shape.KindSphere, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
}

func Vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(v)
}
