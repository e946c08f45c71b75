package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/bounds"
	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/config"
	"github.com/akmonengine/bounds/wireframe"
)

// SetupWorld creates one body per scene object
func SetupWorld(scene config.Scene) (*bounds.World, error) {
	var grid *bounds.SpatialGrid
	if scene.CellSize > 0 {
		grid = bounds.NewSpatialGrid(scene.CellSize, scene.NumCells)
	}
	world := bounds.NewWorld(grid, scene.Workers)

	extent := actor.Extent{HalfSize: config.Vec3(scene.HalfSize), Radius: scene.Radius}
	for i, object := range scene.Objects {
		kind, err := config.ParseKind(object.Kind)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}

		id := fmt.Sprintf("%s-%d", kind, i)
		world.AddBody(actor.NewBody(id, kind, extent, actor.At(config.Vec3(object.Position))))
	}

	if err := world.SetMoving(scene.Moving); err != nil {
		return nil, err
	}

	return world, nil
}

// Run walks the moving body toward the scene target, one Speed step per tick
func Run(world *bounds.World, scene config.Scene, maxSteps int) {
	world.Events.Subscribe(bounds.COLLISION_ENTER, func(event bounds.Event) {
		e := event.(bounds.CollisionEnterEvent)
		slog.Info("collision enter", "a", e.BodyA.ID, "b", e.BodyB.ID)
	})
	world.Events.Subscribe(bounds.COLLISION_EXIT, func(event bounds.Event) {
		e := event.(bounds.CollisionExitEvent)
		slog.Info("collision exit", "a", e.BodyA.ID, "b", e.BodyB.ID)
	})

	target := config.Vec3(scene.Target)
	moving := world.MovingBody()

	for step := 0; step < maxSteps; step++ {
		toTarget := target.Sub(moving.Transform.Position)
		if toTarget.Len() <= scene.Speed {
			moving.MoveTo(target)
		} else {
			moving.Translate(toTarget.Normalize().Mul(scene.Speed))
		}

		colliding := world.Step()
		slog.Info("step",
			"step", step+1,
			"position", moving.Transform.Position,
			"colliding", colliding)

		if moving.Transform.Position.ApproxEqual(target) {
			break
		}
	}
}

// PrintWireframes reports the line list size of every body
func PrintWireframes(world *bounds.World, resolution int) error {
	states := world.ScanAll()
	for i, body := range world.Bodies {
		lines, err := wireframe.ForShape(body.Shape, resolution)
		if err != nil {
			return fmt.Errorf("wireframe %s: %w", body.ID, err)
		}

		fmt.Printf("%-10s %-6s center=%v vertices=%d colliding=%v\n",
			body.ID, body.Shape.Kind(), body.Shape.Center(), len(lines), states[i])
	}

	return nil
}

func main() {
	scenePath := flag.String("scene", "", "TOML scene file, built-in scene when empty")
	steps := flag.Int("steps", 100, "maximum number of ticks")
	resolution := flag.Int("resolution", 16, "sphere wireframe resolution")
	debug := flag.Bool("debug", false, "log world internals")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	bounds.SetLogger(logger)

	scene := config.Default()
	if *scenePath != "" {
		var err error
		if scene, err = config.Load(*scenePath); err != nil {
			slog.Error("load scene", "err", err)
			os.Exit(1)
		}
	}

	world, err := SetupWorld(scene)
	if err != nil {
		slog.Error("setup world", "err", err)
		os.Exit(1)
	}

	Run(world, scene, *steps)

	if err := PrintWireframes(world, *resolution); err != nil {
		slog.Error("wireframes", "err", err)
		os.Exit(1)
	}

	fmt.Printf("moving %s colliding=%v\n", world.MovingBody().ID, world.Colliding)
}
