// internal/state/solar_system.go
package state

import (
	"image/color"

	"go.uber.org/zap"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/event"
	"go-gravitar/internal/factory"
	"go-gravitar/internal/input"
	"go-gravitar/internal/system"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

var _ Scene = (*SolarSystem)(nil)

// SolarSystem is the navigation scene. Each planet is a portal to its own
// PlanetAssault; the game is won once every planet is destroyed.
type SolarSystem struct {
	world
	gameOver types.SceneID
	youWon   types.SceneID
}

func NewSolarSystem(ctx *Context, id, gameOver, youWon types.SceneID) *SolarSystem {
	s := &SolarSystem{
		world:    newWorld(ctx, id),
		gameOver: gameOver,
		youWon:   youWon,
	}
	s.runner = system.NewRunner(
		system.NewInputSystem(s.ecs, ctx.Player),
		system.NewMotionSystem(s.ecs),
		system.NewCollisionSystem(s.ecs, system.LeavePenalize),
		system.NewLivenessSystem(s.ecs, s.ecs.Planets, system.Won),
		system.NewReportSystem(s.ecs),
	)
	s.subscribe(
		event.Subscribe(ctx.Bus, s.onPlanetExited),
		event.Subscribe(ctx.Bus, s.onPlanetDestroyed),
	)
	return s
}

func (s *SolarSystem) SpawnPlayer(pos utils.Vec2) types.EntityID {
	return factory.NewPlayer(s.ecs, s.ctx.Sprites, pos, s.ctx.Player)
}

// AddPlanet places a portal to scene.
func (s *SolarSystem) AddPlanet(pos utils.Vec2, radius float64, fill color.RGBA, scene types.SceneID) types.EntityID {
	return factory.NewPlanet(s.ecs, pos, radius, fill, scene)
}

func (s *SolarSystem) Enter() {
	s.ctx.play(assets.TrackMainTheme)
}

func (s *SolarSystem) Update(in input.Snapshot, viewport utils.Rect, dt float64) types.SceneID {
	f := s.tick(in, viewport, dt)

	switch f.Transition.Kind {
	case system.Portal:
		event.Dispatch(s.ctx.Bus, event.PlanetEntered{
			Scene:    f.Transition.Scene,
			Source:   s.ecs,
			Viewport: viewport,
		})
		return f.Transition.Scene
	case system.GameOver:
		return s.gameOver
	case system.Won:
		return s.youWon
	}
	return s.id
}

func (s *SolarSystem) onPlanetExited(msg event.PlanetExited) {
	if msg.Scene != s.id {
		return
	}
	s.receivePlayer(msg.Source, msg.Viewport)
}

func (s *SolarSystem) onPlanetDestroyed(msg event.PlanetDestroyed) {
	var destroyed []types.EntityID
	for id := range s.ecs.View(s.ecs.Planets, s.ecs.SceneRefs).All() {
		if s.ecs.SceneRefs.MustGet(id).Scene == msg.Scene {
			destroyed = append(destroyed, id)
		}
	}
	s.ecs.Destroy(destroyed...)
	s.ctx.logger().Debug("planet destroyed",
		zap.Int("scene", int(msg.Scene)),
		zap.Int("planets", s.ecs.Planets.Len()))
}
