package bounds

import (
	"errors"
	"fmt"

	"github.com/akmonengine/bounds/actor"
)

const DEFAULT_WORKERS = 1

// ErrBodyIndex is returned when a body index is outside the world
var ErrBodyIndex = errors.New("body index out of range")

// World owns the tracked bodies and runs one collision tick per Step.
// It is not safe for concurrent use.
type World struct {
	// Bodies in insertion order; their index is their address in the Set
	Bodies []*actor.Body
	// Index of the body whose collisions are reported
	Moving int
	// Colliding is the scan result of the moving body after the last Step
	Colliding bool

	// SpatialGrid prunes pair candidates, nil tests every pair
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events

	set Set
}

func NewWorld(grid *SpatialGrid, workers int) *World {
	return &World{
		SpatialGrid: grid,
		Workers:     workers,
		Events:      NewEvents(),
	}
}

// AddBody adds a body to the world
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world. The moving index keeps
// pointing at the same body, or at 0 when the moving body itself is removed.
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k == -1 {
		return
	}

	w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)

	switch {
	case k < w.Moving:
		w.Moving--
	case k == w.Moving:
		w.Moving = 0
		w.Colliding = false
	}

	w.Events.forget(body)
}

// SetMoving selects the body whose collisions are reported
func (w *World) SetMoving(index int) error {
	if index < 0 || index >= len(w.Bodies) {
		return fmt.Errorf("set moving body %d of %d: %w", index, len(w.Bodies), ErrBodyIndex)
	}
	if index == w.Moving {
		return nil
	}

	w.Moving = index
	Logger().Info("moving body switched", "index", index, "id", w.Bodies[index].ID)

	return nil
}

// MovingBody returns the body selected by SetMoving
func (w *World) MovingBody() *actor.Body {
	return w.Bodies[w.Moving]
}

// Set returns the shapes of the bodies, in body order.
// The slice is owned by the world and reused across steps.
func (w *World) Set() Set {
	w.set = w.set[:0]
	for _, body := range w.Bodies {
		w.set = append(w.set, body.Shape)
	}

	return w.set
}

// Step syncs every shape with its body, then scans.
// The two phases never overlap: scans only read shapes once all updates are done.
// Step panics when the world has no bodies.
func (w *World) Step() bool {
	w.sync()
	set := w.Set()

	colliding := Scan(w.Moving, set)
	if colliding != w.Colliding {
		Logger().Debug("moving body collision changed",
			"id", w.Bodies[w.Moving].ID,
			"colliding", colliding,
			"position", w.Bodies[w.Moving].Transform.Position)
		w.Events.emitMoving(w.Bodies[w.Moving], colliding)
	}
	w.Colliding = colliding

	w.Events.recordPairs(w.Bodies, Pairs(w.SpatialGrid, set))
	w.Events.flush()

	return colliding
}

// ScanAll reports, for every body, whether it overlaps another one.
// Shapes are read as of the last Step.
func (w *World) ScanAll() []bool {
	return ScanAll(w.Set(), w.Workers)
}

func (w *World) sync() {
	task(w.Workers, w.Bodies, func(body *actor.Body) {
		body.Sync()
	})
}
