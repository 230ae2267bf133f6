// internal/state/planet_assault.go
package state

import (
	"go.uber.org/zap"

	"go-gravitar/internal/assets"
	"go-gravitar/internal/config"
	"go-gravitar/internal/event"
	"go-gravitar/internal/factory"
	"go-gravitar/internal/input"
	"go-gravitar/internal/system"
	"go-gravitar/internal/types"
	"go-gravitar/internal/utils"
)

var _ Scene = (*PlanetAssault)(nil)

// PlanetAssault is the combat scene behind one planet. Leaving the viewport
// or destroying every bunker hands the player back to the parent scene.
type PlanetAssault struct {
	world
	parent   types.SceneID
	gameOver types.SceneID
}

func NewPlanetAssault(ctx *Context, id, parent, gameOver types.SceneID, viewport utils.Rect) *PlanetAssault {
	s := &PlanetAssault{
		world:    newWorld(ctx, id),
		parent:   parent,
		gameOver: gameOver,
	}
	factory.NewGround(s.ecs, viewport, config.GroundHeight)

	s.runner = system.NewRunner(
		system.NewInputSystem(s.ecs, ctx.Player),
		system.NewMotionSystem(s.ecs),
		system.NewCollisionSystem(s.ecs, system.LeaveExit),
		system.NewLivenessSystem(s.ecs, s.ecs.Bunkers, system.Leave),
		system.NewReportSystem(s.ecs),
	)
	s.subscribe(event.Subscribe(ctx.Bus, s.onPlanetEntered))
	return s
}

func (s *PlanetAssault) Parent() types.SceneID { return s.parent }

func (s *PlanetAssault) AddBunker(pos utils.Vec2) types.EntityID {
	return factory.NewBunker(s.ecs, s.ctx.Sprites, pos, config.BunkerHealth)
}

func (s *PlanetAssault) AddTerrain(pos utils.Vec2, rotation float64) types.EntityID {
	return factory.NewTerrain(s.ecs, s.ctx.Sprites, pos, rotation)
}

func (s *PlanetAssault) Enter() {
	s.ctx.play(assets.TrackMainTheme)
}

func (s *PlanetAssault) Update(in input.Snapshot, viewport utils.Rect, dt float64) types.SceneID {
	f := s.tick(in, viewport, dt)

	switch f.Transition.Kind {
	case system.GameOver:
		return s.gameOver
	case system.Leave:
		event.Dispatch(s.ctx.Bus, event.PlanetExited{
			From:     s.id,
			Scene:    s.parent,
			Source:   s.ecs,
			Viewport: viewport,
		})
		if f.Cleared {
			s.ctx.logger().Info("planet cleared", zap.Int("scene", int(s.id)))
			event.Dispatch(s.ctx.Bus, event.PlanetDestroyed{Scene: s.id})
		}
		return s.parent
	}
	return s.id
}

func (s *PlanetAssault) onPlanetEntered(msg event.PlanetEntered) {
	if msg.Scene != s.id {
		return
	}
	s.receivePlayer(msg.Source, msg.Viewport)
}
